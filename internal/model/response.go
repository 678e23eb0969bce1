package model

import (
	"net/http"

	"github.com/frankli0324/go-httpmsg/internal/errors"
	"github.com/frankli0324/go-httpmsg/internal/obs"
)

const DefaultStatus = http.StatusOK

func validateStatus(code int) error {
	if code < 0 || code > 999 {
		obs.Logf(obs.Debug, "response: rejected status %d", code)
		return errors.InvalidArgument("%d is out of range 0-999", code)
	}
	return nil
}

type Response struct {
	Message

	status    int
	reason    string
	hasReason bool
}

// NewResponse builds a response with status and no explicit reason phrase.
// A nil body is an empty memory stream.
func NewResponse(status int, headers http.Header, body interface{}) (*Response, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}
	b, err := bodyOrMemory(body)
	if err != nil {
		return nil, err
	}
	return &Response{
		Message: newMessage(headers, b),
		status:  status,
	}, nil
}

func (r *Response) StatusCode() int { return r.status }

// WithStatus sets code and the optional reason phrase. Without one, any
// earlier explicit phrase is dropped and ReasonPhrase falls back to the
// standard text for code.
func (r *Response) WithStatus(code int, reason ...string) (*Response, error) {
	if err := validateStatus(code); err != nil {
		return nil, err
	}
	n := *r
	n.status = code
	n.reason, n.hasReason = "", false
	if len(reason) > 0 {
		n.reason, n.hasReason = reason[0], true
	}
	return &n, nil
}

// ReasonPhrase returns the explicit phrase, else the standard one for the
// status code, else "".
func (r *Response) ReasonPhrase() string {
	if r.hasReason {
		return r.reason
	}
	return http.StatusText(r.status)
}

func (r *Response) with(m Message) *Response {
	n := *r
	n.Message = m
	return &n
}

func (r *Response) WithProtocolVersion(version string) *Response {
	return r.with(r.Message.WithProtocolVersion(version))
}

func (r *Response) WithAddedHeader(name, value string) *Response {
	return r.with(r.Message.WithAddedHeader(name, value))
}

func (r *Response) WithAddedHeaderLines(name string, lines []string) *Response {
	return r.with(r.Message.WithAddedHeaderLines(name, lines))
}

func (r *Response) WithHeader(name, value string) *Response {
	return r.with(r.Message.WithHeader(name, value))
}

func (r *Response) WithHeaderLines(name string, lines []string) *Response {
	return r.with(r.Message.WithHeaderLines(name, lines))
}

func (r *Response) WithoutHeader(name string) *Response {
	return r.with(r.Message.WithoutHeader(name))
}

func (r *Response) WithBody(body interface{}) (*Response, error) {
	m, err := r.Message.WithBody(body)
	if err != nil {
		return nil, err
	}
	return r.with(m), nil
}
