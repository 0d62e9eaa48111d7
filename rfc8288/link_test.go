package rfc8288

import (
	"testing"
)

func TestParseLinkSingle(t *testing.T) {
	links := ParseLink(`<https://example.org/foo.acl>; rel="acl"`)
	if len(links) != 1 {
		t.Fatalf("Parsed %d links", len(links))
	}
	if links[0].Target != "https://example.org/foo.acl" {
		t.Fatalf("Target is %s", links[0].Target)
	}
	if links[0].Rel() != "acl" {
		t.Fatalf("Rel is %s", links[0].Rel())
	}
}

func TestParseLinkList(t *testing.T) {
	links := ParseLink(`<a>; rel="acl", <b>; rel="describedBy", <c>; rel="type"`)
	if len(links) != 3 {
		t.Fatalf("Parsed %d links", len(links))
	}
	if links[1].Target != "b" || links[1].Rel() != "describedBy" {
		t.Fatalf("Second link is %+v", links[1])
	}
}

func TestParseLinkCommaInTarget(t *testing.T) {
	links := ParseLink(`<https://example.org/a,b>; rel="acl"`)
	if len(links) != 1 {
		t.Fatalf("Parsed %d links", len(links))
	}
	if links[0].Target != "https://example.org/a,b" {
		t.Fatalf("Target is %s", links[0].Target)
	}
}

func TestParseLinkCommaInQuotedParam(t *testing.T) {
	links := ParseLink(`<a>; rel="acl"; title="one, two", <b>; rel="type"`)
	if len(links) != 2 {
		t.Fatalf("Parsed %d links", len(links))
	}
	if links[0].Params["title"] != "one, two" {
		t.Fatalf("Title is %s", links[0].Params["title"])
	}
}

func TestParseLinkUnquotedParam(t *testing.T) {
	links := ParseLink(`<a>; rel=meta`)
	if len(links) != 1 || links[0].Rel() != "meta" {
		t.Fatalf("Links are %+v", links)
	}
}

func TestParseLinkParamNameCase(t *testing.T) {
	links := ParseLink(`<a>; REL="describedBy"`)
	if len(links) != 1 {
		t.Fatalf("Parsed %d links", len(links))
	}
	// param names are case-insensitive, values keep their case
	if links[0].Rel() != "describedBy" {
		t.Fatalf("Rel is %s", links[0].Rel())
	}
}

func TestParseLinkMissingTarget(t *testing.T) {
	links := ParseLink(`rel="acl", <b>; rel="type"`)
	if len(links) != 1 || links[0].Target != "b" {
		t.Fatalf("Links are %+v", links)
	}
}

func TestParseLinkEmpty(t *testing.T) {
	if links := ParseLink(""); len(links) != 0 {
		t.Fatalf("Parsed %d links", len(links))
	}
}
