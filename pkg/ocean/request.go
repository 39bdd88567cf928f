package ocean

import (
	"fmt"
	"net/url"
	"strings"
)

// RootURL is the fixed base every request is built against. It is parsed
// once at package init; WithEndpoint on a Client rebases executed requests
// onto a different host without changing how requests are constructed.
const RootURL = "https://api.digitalocean.com/v2"

// apiRoot is the parsed root. The root is a trusted constant, so a parse
// failure is a defect in the library rather than caller input and panics at
// init.
var apiRoot = func() url.URL {
	parsed, err := url.Parse(RootURL)
	if err != nil {
		panic("ocean: malformed root URL: " + err.Error())
	}

	return *parsed
}()

// ResponseValue is implemented by every type that can appear as the decoded
// result of an executed Request. responseKey names the JSON envelope field
// the API wraps the value in; an empty key means success carries no payload.
type ResponseValue interface {
	responseKey() string
}

// Empty is the response value of requests whose success has no payload,
// such as deletes.
type Empty struct{}

func (Empty) responseKey() string { return "" }

// Request is a buildable API request. The M and V type parameters exist
// only at compile time: M selects the HTTP verb at the execution boundary
// and V selects the response shape to decode. Neither is stored or
// inspected at runtime.
//
// A Request is produced by a resource constructor, optionally narrowed by
// typestate transitions, and consumed exactly once by Execute. Transitions
// copy the request they start from, so several can branch off one
// identified-resource state without affecting each other.
type Request[M Method, V ResponseValue] struct {
	target url.URL
	body   interface{}
}

func newRequest[M Method, V ResponseValue](segments ...string) *Request[M, V] {
	req := &Request[M, V]{target: apiRoot}
	req.push(segments...)

	return req
}

// URL returns the request's target URL as a string.
func (r *Request[M, V]) URL() string {
	return r.target.String()
}

// Body returns the request body payload, or nil if none has been set.
func (r *Request[M, V]) Body() interface{} {
	return r.body
}

// SetBody replaces any previously set body with payload. The last write
// wins; bodies are never merged.
func (r *Request[M, V]) SetBody(payload interface{}) {
	r.body = payload
}

// push appends literal path segments to the target URL. Segments are static
// strings or formatted ids owned by the library, so a malformed segment is
// a configuration fault: it panics at construction instead of surfacing as
// a per-call error.
func (r *Request[M, V]) push(segments ...string) {
	for _, segment := range segments {
		if segment == "" || strings.ContainsAny(segment, "/?#") {
			panic(fmt.Sprintf("ocean: invalid path segment %q", segment))
		}
	}

	r.target.Path = strings.TrimSuffix(r.target.Path, "/") + "/" + strings.Join(segments, "/")
}

// transmute reinterprets a Request as carrying a different method/value
// pair. The stored URL and body are carried over untouched into a fresh
// Request; only what the compiler, and therefore the executor, believes
// about the request changes. The source is left intact, which is what lets
// transitions branch from a shared state.
func transmute[M2 Method, V2 ResponseValue, M Method, V ResponseValue](r *Request[M, V]) *Request[M2, V2] {
	return &Request[M2, V2]{target: r.target, body: r.body}
}
