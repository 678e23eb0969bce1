package model

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/net/http/httpguts"
)

// PreparedRequest is a flattened view of a Request for code that puts it on
// the wire. Host and Content-Length are lifted out of Header.
type PreparedRequest struct {
	*Request

	Method     string
	Target     string
	Header     http.Header
	HeaderHost string
	GetBody    func() (io.ReadCloser, error)

	ContentLength int64 // -1 when unknown
}

// Prepare resolves the values a transport needs. A valid Host header wins
// over the URI authority, and an explicit Content-Length must agree with the
// body size when both are known.
func (r *Request) Prepare() (*PreparedRequest, error) {
	headers := r.Headers()
	u := r.Uri()
	host := u.Host()
	if p, ok := u.Port(); ok && host != "" {
		host += ":" + strconv.Itoa(p)
	}
	cl := int64(-1)
	// user defined headers has higher priority
	for k, v := range headers {
		switch strings.ToLower(k) {
		case "host":
			if len(v) != 0 && httpguts.ValidHostHeader(v[0]) {
				host = v[0]
			}
			delete(headers, k)
		case "content-length":
			if len(v) != 0 {
				if v, err := strconv.ParseInt(v[0], 10, 64); err == nil && v >= 0 {
					cl = v
				}
			}
			delete(headers, k)
		}
	}
	if host == "" {
		return nil, url.InvalidHostError("empty host")
	}

	method := r.method
	if method == "" {
		method = http.MethodGet
	}
	pr := &PreparedRequest{
		Request: r,

		Method:        method,
		Target:        r.RequestTarget(),
		Header:        headers,
		HeaderHost:    host,
		ContentLength: cl,
	}
	if err := pr.updateBody(); err != nil {
		return nil, err
	}
	return pr, nil
}

// should only be called once at [Prepare]
func (r *PreparedRequest) updateBody() error {
	body := r.Body()
	size, known := int64(0), false
	if body != nil {
		size, known = body.Size()
	}
	if known && r.ContentLength != -1 && r.ContentLength != size {
		return errors.New("conflicting value between body size and content-length request header")
	}
	if body == nil || known && size == 0 {
		if known {
			r.ContentLength = 0
		}
		r.GetBody = func() (io.ReadCloser, error) {
			return http.NoBody, nil
		}
		return nil
	}
	if known {
		r.ContentLength = size
	}
	if body.Seekable() {
		r.GetBody = func() (io.ReadCloser, error) {
			if err := body.Rewind(); err != nil {
				return nil, err
			}
			return io.NopCloser(body), nil
		}
		return nil
	}
	once := uint32(0)
	r.GetBody = func() (io.ReadCloser, error) {
		if atomic.CompareAndSwapUint32(&once, 0, 1) {
			return io.NopCloser(body), nil
		}
		return nil, http.ErrBodyReadAfterClose
	}
	return nil
}
