// Package httpmsg is an immutable model of HTTP requests, responses and
// URIs.
//
// Headers are case-insensitive but keep the casing they were declared with.
// Every With* method returns a new value and leaves its receiver untouched,
// so messages can be shared across goroutines without copying. Bodies are
// the exception: a Body is a stateful stream.
//
//	u, _ := httpmsg.ParseUri("http://www.example.com/test?foo=bar")
//	req, _ := httpmsg.NewRequest("GET", u, nil, nil)
//	req = req.WithHeader("Accept", "text/html")
//	req.RequestTarget() // "/test?foo=bar"
//
// The package only re-exports what lives under internal/, like the standard
// library aliases below, to avoid annoying imports.
package httpmsg

import (
	"net/http"

	"github.com/frankli0324/go-httpmsg/internal/errors"
	"github.com/frankli0324/go-httpmsg/internal/model"
	"github.com/frankli0324/go-httpmsg/internal/obs"
	"github.com/frankli0324/go-httpmsg/internal/stream"
	"github.com/frankli0324/go-httpmsg/internal/uri"
)

type Header = http.Header

type Message = model.Message
type Request = model.Request
type Response = model.Response
type PreparedRequest = model.PreparedRequest
type Uri = uri.Uri

type Body = stream.Body
type Stream = stream.Stream

type Logger = obs.Logger
type LogLevel = obs.Level
type StdLogger = obs.StdLogger

const (
	DefaultProtocolVersion = model.DefaultProtocolVersion
	DefaultStatus          = model.DefaultStatus
	DefaultMode            = stream.DefaultMode
	MemoryURI              = stream.MemoryURI

	LogDebug = obs.Debug
	LogInfo  = obs.Info
	LogWarn  = obs.Warn
	LogError = obs.Error
)

var (
	NewRequest  = model.NewRequest
	NewResponse = model.NewResponse

	NewUri       = uri.New
	ParseUri     = uri.Parse
	StandardPort = uri.StandardPort

	NewStream       = stream.New
	NewMemoryStream = stream.NewMemory
	BodyFromValue   = stream.FromValue

	// SetLogger installs the process-wide logger. Rejected arguments and
	// stream I/O failures are logged at Debug.
	SetLogger = obs.SetLogger
)

var (
	// ErrInvalidArgument matches, through errors.Is, every error returned for
	// a malformed URI, an unsupported method, body type or stream resource,
	// and an out of range status or port.
	ErrInvalidArgument error = errors.ErrInvalidArgument

	ErrDetached    = stream.ErrDetached
	ErrNotReadable = stream.ErrNotReadable
	ErrNotWritable = stream.ErrNotWritable
	ErrNotSeekable = stream.ErrNotSeekable
)
