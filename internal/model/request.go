package model

import (
	"net/http"
	"strings"

	"github.com/frankli0324/go-httpmsg/internal/errors"
	"github.com/frankli0324/go-httpmsg/internal/obs"
	"github.com/frankli0324/go-httpmsg/internal/uri"
)

var validMethods = map[string]struct{}{
	http.MethodConnect: {},
	http.MethodDelete:  {},
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodPatch:   {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodTrace:   {},
}

func validateMethod(method string) error {
	if _, ok := validMethods[strings.ToUpper(method)]; ok {
		return nil
	}
	obs.Logf(obs.Debug, "request: rejected method %q", method)
	return errors.InvalidArgument("%q is not a valid HTTP Method", method)
}

type Request struct {
	Message

	method    string
	target    string
	hasTarget bool
	uri       *uri.Uri
}

// NewRequest builds a request. An empty method is left unset, a nil u is the
// empty URI and a nil body is an empty memory stream.
func NewRequest(method string, u *uri.Uri, headers http.Header, body interface{}) (*Request, error) {
	if method != "" {
		if err := validateMethod(method); err != nil {
			return nil, err
		}
	}
	if u == nil {
		u = uri.New()
	}
	b, err := bodyOrMemory(body)
	if err != nil {
		return nil, err
	}
	return &Request{
		Message: newMessage(headers, b),
		method:  method,
		uri:     u,
	}, nil
}

// RequestTarget returns the explicit target when one was set, otherwise the
// origin form derived from the URI: its path and query, or "/".
func (r *Request) RequestTarget() string {
	if r.hasTarget {
		return r.target
	}
	u := r.Uri()
	path := u.Path()
	if path == "" {
		return "/"
	}
	if q := u.Query(); q != "" {
		return path + "?" + q
	}
	return path
}

// WithRequestTarget stores target verbatim, so the asterisk, authority and
// absolute forms are all accepted.
func (r *Request) WithRequestTarget(target string) *Request {
	n := *r
	n.target, n.hasTarget = target, true
	return &n
}

// Method returns the method exactly as given, "" when unset.
func (r *Request) Method() string { return r.method }

// WithMethod checks method case-insensitively against the known HTTP methods
// and keeps the caller's casing.
func (r *Request) WithMethod(method string) (*Request, error) {
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	n := *r
	n.method = method
	return &n, nil
}

// Uri returns the request URI; a zero Request has the empty URI.
func (r *Request) Uri() *uri.Uri {
	if r.uri == nil {
		return uri.New()
	}
	return r.uri
}

// WithUri replaces the URI and drops any explicit request target.
func (r *Request) WithUri(u *uri.Uri) *Request {
	if u == nil {
		u = uri.New()
	}
	n := *r
	n.uri = u
	n.target, n.hasTarget = "", false
	return &n
}

func (r *Request) with(m Message) *Request {
	n := *r
	n.Message = m
	return &n
}

func (r *Request) WithProtocolVersion(version string) *Request {
	return r.with(r.Message.WithProtocolVersion(version))
}

func (r *Request) WithAddedHeader(name, value string) *Request {
	return r.with(r.Message.WithAddedHeader(name, value))
}

func (r *Request) WithAddedHeaderLines(name string, lines []string) *Request {
	return r.with(r.Message.WithAddedHeaderLines(name, lines))
}

func (r *Request) WithHeader(name, value string) *Request {
	return r.with(r.Message.WithHeader(name, value))
}

func (r *Request) WithHeaderLines(name string, lines []string) *Request {
	return r.with(r.Message.WithHeaderLines(name, lines))
}

func (r *Request) WithoutHeader(name string) *Request {
	return r.with(r.Message.WithoutHeader(name))
}

func (r *Request) WithBody(body interface{}) (*Request, error) {
	m, err := r.Message.WithBody(body)
	if err != nil {
		return nil, err
	}
	return r.with(m), nil
}
