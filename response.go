package ldpclient

import (
	"io"
	"net/http"
	"strings"
)

// Response is the interpreted view over one completed HTTP exchange with
// an LDP server: the link relations, capability advertisements and
// identity facts derived from the response headers, plus passthroughs to
// the raw response. It is built once and never mutated afterwards.
type Response struct {
	// Method is the lower-cased method of the original request, or ""
	// when no response was received.
	Method string
	// LinkHeaders holds the parsed Link header relations.
	LinkHeaders LinkHeaders
	// ACL is the target of the acl link relation.
	ACL string
	// Meta is the target of the meta link relation, falling back to
	// describedBy.
	Meta string
	// Type is the target of the type link relation.
	Type string
	// AllowedMethods holds the capabilities advertised via Allow and
	// Accept-Patch. It is always empty for GET requests: a plain read
	// is not a capability probe.
	AllowedMethods AllowedMethods
	// URL is the Location header when present, otherwise the effective
	// request URL.
	URL string
	// User is the authenticated user reported by the User header.
	User string
	// Websocket is the live-update endpoint from the Updates-Via header.
	Websocket string

	res  *http.Response
	body []byte
}

// NewResponse builds the interpreted view for res, the response to a
// request issued with the given method. It never fails: a nil response
// (e.g. after a transport error) yields a degraded view with neutral
// defaults, and missing or malformed headers degrade to empty values.
// The response body, if any, is drained and closed here, so the view is
// self-contained and every query on it is repeatable.
func NewResponse(res *http.Response, method string) *Response {
	if res == nil {
		return &Response{LinkHeaders: LinkHeaders{}, AllowedMethods: AllowedMethods{}}
	}

	r := &Response{
		Method:      strings.ToLower(method),
		LinkHeaders: ParseLinkHeader(res.Header.Get("Link")),
		User:        res.Header.Get("User"),
		Websocket:   res.Header.Get("Updates-Via"),
		res:         res,
	}

	r.ACL = r.LinkHeaders["acl"]
	r.Meta = r.LinkHeaders["meta"]
	if r.Meta == "" {
		r.Meta = r.LinkHeaders["describedBy"]
	}
	r.Type = r.LinkHeaders["type"]

	if r.Method == "get" {
		r.AllowedMethods = AllowedMethods{}
	} else {
		r.AllowedMethods = ParseAllowedMethods(
			res.Header.Get("Allow"), res.Header.Get("Accept-Patch"))
	}

	r.URL = res.Header.Get("Location")
	if r.URL == "" && res.Request != nil && res.Request.URL != nil {
		r.URL = res.Request.URL.String()
	}

	if res.Body != nil {
		if body, err := io.ReadAll(res.Body); err == nil {
			r.body = body
		}
		res.Body.Close()
	}

	return r
}

// ContentType returns the Content-Type header of the underlying response,
// or "" when no response was received.
func (r *Response) ContentType() string {
	if r.res == nil {
		return ""
	}
	return r.res.Header.Get("Content-Type")
}

// Exists reports whether the resource exists. Any status below 400,
// redirects included, counts as existing; 4xx, 5xx and the no-response
// case do not.
func (r *Response) Exists() bool {
	return r.res != nil && r.res.StatusCode >= 200 && r.res.StatusCode < 400
}

// IsLoggedIn reports whether the server identified an authenticated user.
// The User header value is not validated beyond being non-empty.
func (r *Response) IsLoggedIn() bool {
	return r.User != ""
}

// Raw returns the buffered response body, or nil when no response was
// received.
func (r *Response) Raw() []byte {
	return r.body
}
