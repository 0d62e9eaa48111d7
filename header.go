package ldpclient

import (
	"strings"

	"github.com/ldp-client/ldp-client/rfc8288"
)

// LinkHeaders maps a link relation name to its target URI, as advertised
// by the server in the Link response header. Relation names are kept as
// sent; recognized relations (acl, describedBy, meta, type) are matched
// exactly.
type LinkHeaders map[string]string

// ParseLinkHeader parses the raw Link header value into a relation map.
// A missing or empty header yields an empty map. Entries without a rel
// param are skipped. When the server repeats a relation, the last entry
// wins.
func ParseLinkHeader(header string) LinkHeaders {
	m := make(LinkHeaders)
	for _, link := range rfc8288.ParseLink(header) {
		if rel := link.Rel(); rel != "" {
			m[rel] = link.Target
		}
	}
	return m
}

// AllowedMethods maps a lower-cased HTTP method to the server's assertion
// that the method is allowed. A method missing from the map is unknown,
// not denied.
type AllowedMethods map[string]bool

// ParseAllowedMethods folds the Allow and Accept-Patch headers into an
// AllowedMethods map. A non-empty Accept-Patch asserts patch support even
// when Allow does not list it. Both headers absent yields an empty map.
func ParseAllowedMethods(allow, acceptPatch string) AllowedMethods {
	m := make(AllowedMethods)
	for _, method := range strings.FieldsFunc(allow, isListSeparator) {
		m[strings.ToLower(method)] = true
	}
	if acceptPatch != "" {
		m["patch"] = true
	}
	return m
}

func isListSeparator(r rune) bool {
	return r == ',' || r == ' '
}
