package rfc8288

import "strings"

// §  Internet Engineering Task Force (IETF)                     M. Nottingham
// §  Request for Comments: 8288                                 October 2017
// §  Obsoletes: 5988
// §  Category: Standards Track
// §
// §                                Web Linking
// §
// §  Abstract
// §
// §     This specification defines a model for the relationships between
// §     resources on the Web ("links") and the type of those relationships
// §     ("link relation types").  It also defines the serialisation of such
// §     links in HTTP headers with the Link header field.

// §  3.  Link Serialisation in HTTP Headers
// §
// §     The Link header field provides a means for serialising one or more
// §     links into HTTP headers.
// §
// §     The ABNF for the field value is:
// §
// §       Link       = #link-value
// §       link-value = "<" URI-Reference ">" *( OWS ";" OWS link-param )
// §       link-param = token BWS [ "=" BWS ( token / quoted-string ) ]

// Link is one link-value of a Link header field.
type Link struct {
	// Target is the URI-Reference between the angle brackets.
	Target string
	// Params holds the link-params, names lower-cased, quoted-string
	// values unquoted.
	Params map[string]string
}

// §  2.1.  Link Relation Types
// §
// §     In the simplest case, a link relation type identifies the semantics
// §     of a link.  ...  Relation types are not to be confused with media
// §     types; they do not identify the format of the representation that
// §     results when the link is followed.

// Rel returns the link's relation type, or "" when no rel param was sent.
// The value is returned as sent; relation names are matched exactly by
// callers.
func (l Link) Rel() string {
	return l.Params["rel"]
}

// ParseLink parses a Link header field value into its link-values.
// Parsing never fails: link-values without a bracketed target are dropped,
// and whatever else can be salvaged is returned as-is. An empty or absent
// field value yields an empty slice.
func ParseLink(header string) []Link {
	links := make([]Link, 0)
	for _, entry := range splitList(header) {
		if link, ok := parseLinkValue(entry); ok {
			links = append(links, link)
		}
	}
	return links
}

// splitList splits a field value on top-level commas.
// A comma inside the <> target or inside a quoted parameter value is part
// of the link-value, not a list separator.
func splitList(header string) []string {
	parts := make([]string, 0)
	start := 0
	inTarget := false
	inQuotes := false
	for i := 0; i < len(header); i++ {
		switch header[i] {
		case '<':
			if !inQuotes {
				inTarget = true
			}
		case '>':
			if !inQuotes {
				inTarget = false
			}
		case '"':
			if !inTarget {
				inQuotes = !inQuotes
			}
		case ',':
			if !inTarget && !inQuotes {
				parts = append(parts, header[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, header[start:])
}

func parseLinkValue(entry string) (Link, bool) {
	entry = strings.TrimSpace(entry)
	if !strings.HasPrefix(entry, "<") {
		return Link{}, false
	}
	end := strings.Index(entry, ">")
	if end < 0 {
		return Link{}, false
	}
	link := Link{
		Target: entry[1:end],
		Params: make(map[string]string),
	}
	for _, param := range strings.Split(entry[end+1:], ";") {
		param = strings.TrimSpace(param)
		if param == "" {
			continue
		}
		nameValue := strings.SplitN(param, "=", 2)
		name := strings.ToLower(strings.TrimSpace(nameValue[0]))
		if name == "" {
			continue
		}
		value := ""
		if len(nameValue) > 1 {
			value = unquote(strings.TrimSpace(nameValue[1]))
		}
		link.Params[name] = value
	}
	return link, true
}

// §     ... quoted-string = <quoted-string, see [RFC7230], Section 3.2.6>
func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
