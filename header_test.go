package ldpclient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLinkHeader(t *testing.T) {
	testCases := map[string]struct {
		given  string
		expect LinkHeaders
	}{
		"empty": {
			given:  "",
			expect: LinkHeaders{},
		},
		"acl": {
			given:  `<https://example.org/foo.acl>; rel="acl"`,
			expect: LinkHeaders{"acl": "https://example.org/foo.acl"},
		},
		"multiple relations": {
			given: `<foo.acl>; rel="acl", <foo.meta>; rel="describedBy", <http://www.w3.org/ns/ldp#Resource>; rel="type"`,
			expect: LinkHeaders{
				"acl":         "foo.acl",
				"describedBy": "foo.meta",
				"type":        "http://www.w3.org/ns/ldp#Resource",
			},
		},
		"comma inside target": {
			given:  `<https://example.org/a,b>; rel="acl"`,
			expect: LinkHeaders{"acl": "https://example.org/a,b"},
		},
		"relation case preserved": {
			given:  `<a>; rel="describedBy"`,
			expect: LinkHeaders{"describedBy": "a"},
		},
		"missing rel skipped": {
			given:  `<a>; title="no relation"`,
			expect: LinkHeaders{},
		},
		"missing target skipped": {
			given:  `rel="acl", <b>; rel="type"`,
			expect: LinkHeaders{"type": "b"},
		},
		"repeated relation last wins": {
			given:  `<a>; rel="type", <b>; rel="type"`,
			expect: LinkHeaders{"type": "b"},
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, test.expect, ParseLinkHeader(test.given))
		})
	}
}

func TestParseAllowedMethods(t *testing.T) {
	testCases := map[string]struct {
		allow       string
		acceptPatch string
		expect      AllowedMethods
	}{
		"empty": {
			expect: AllowedMethods{},
		},
		"allow only": {
			allow:  "GET, PUT",
			expect: AllowedMethods{"get": true, "put": true},
		},
		"allow with accept-patch": {
			allow:       "GET, PUT",
			acceptPatch: "application/sparql-update",
			expect:      AllowedMethods{"get": true, "put": true, "patch": true},
		},
		"accept-patch only": {
			acceptPatch: "application/sparql-update",
			expect:      AllowedMethods{"patch": true},
		},
		"space separated": {
			allow:  "GET PUT POST",
			expect: AllowedMethods{"get": true, "put": true, "post": true},
		},
		"patch listed once": {
			allow:       "PATCH",
			acceptPatch: "text/n3",
			expect:      AllowedMethods{"patch": true},
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, test.expect, ParseAllowedMethods(test.allow, test.acceptPatch))
		})
	}
}
