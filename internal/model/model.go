package model

import (
	"net/http"

	"github.com/frankli0324/go-httpmsg/internal/header"
	"github.com/frankli0324/go-httpmsg/internal/obs"
	"github.com/frankli0324/go-httpmsg/internal/stream"
)

const DefaultProtocolVersion = "1.1"

// Message holds what requests and responses share. It is a value: every
// With* method returns a copy differing in one field, and the header store
// and body handle are shared between copies rather than duplicated.
type Message struct {
	protocol string
	headers  *header.Store
	body     stream.Body
}

func newMessage(headers http.Header, body stream.Body) Message {
	return Message{
		protocol: DefaultProtocolVersion,
		headers:  header.New(headers),
		body:     body,
	}
}

// ProtocolVersion returns the HTTP version number, such as "1.1".
func (m Message) ProtocolVersion() string {
	if m.protocol == "" {
		return DefaultProtocolVersion
	}
	return m.protocol
}

func (m Message) WithProtocolVersion(version string) Message {
	m.protocol = version
	return m
}

// Headers returns a copy of every header, keyed in the casing each name was
// first declared with.
func (m Message) Headers() http.Header { return m.headers.All() }

func (m Message) HeaderNames() []string { return m.headers.Names() }

func (m Message) HasHeader(name string) bool { return m.headers.Has(name) }

// Header returns the values of name joined with ", ".
func (m Message) Header(name string) string { return m.headers.Get(name) }

func (m Message) HeaderLines(name string) []string { return m.headers.Lines(name) }

// WithAddedHeader appends value to name. value is split on ", " first; use
// WithAddedHeaderLines to keep a value containing ", " whole.
func (m Message) WithAddedHeader(name, value string) Message {
	m.headers = m.headers.WithAdded(name, value)
	return m
}

func (m Message) WithAddedHeaderLines(name string, lines []string) Message {
	m.headers = m.headers.WithAddedLines(name, lines)
	return m
}

// WithHeader replaces every value of name.
func (m Message) WithHeader(name, value string) Message {
	m.headers = m.headers.WithReplaced(name, value)
	return m
}

func (m Message) WithHeaderLines(name string, lines []string) Message {
	m.headers = m.headers.WithReplacedLines(name, lines)
	return m
}

func (m Message) WithoutHeader(name string) Message {
	m.headers = m.headers.WithRemoved(name)
	return m
}

func (m Message) Body() stream.Body { return m.body }

// WithBody accepts a stream.Body, or one of the values stream.FromValue
// wraps into one.
func (m Message) WithBody(body interface{}) (Message, error) {
	b, err := stream.FromValue(body)
	if err != nil {
		obs.Logf(obs.Debug, "message: rejected body: %v", err)
		return m, err
	}
	m.body = b
	return m, nil
}

// bodyOrMemory is the constructor default: nil becomes an empty memory stream.
func bodyOrMemory(body interface{}) (stream.Body, error) {
	if body == nil {
		return stream.NewMemory(), nil
	}
	return stream.FromValue(body)
}
