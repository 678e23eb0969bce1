// Package stream provides the byte-stream capability carried as a message
// body, along with a default implementation over memory, files and plain
// readers or writers.
//
// Unlike messages, a stream is stateful: it has a position and moves through
// unattached, open and closed states. Failures are returned as errors from
// the call that hit them and never panic.
package stream

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrDetached    = errors.New("stream: no resource attached")
	ErrNotReadable = errors.New("stream: not readable")
	ErrNotWritable = errors.New("stream: not writable")
	ErrNotSeekable = errors.New("stream: not seekable")
)

// Body is what a message requires of its body.
//
// Read returns io.EOF once the end is reached, after which EOF reports true.
// Once closed or detached, Read, Write, Seek and Tell return ErrDetached and
// the Readable, Writable and Seekable probes report false.
type Body interface {
	io.ReadWriteSeeker
	io.Closer
	fmt.Stringer

	// Attach binds resource, opened with an fopen-style mode when relevant.
	Attach(resource interface{}, mode string) error
	// Detach releases the resource without closing it and returns it.
	Detach() interface{}

	Size() (int64, bool)
	Tell() (int64, error)
	EOF() bool
	Rewind() error

	Readable() bool
	Writable() bool
	Seekable() bool

	// Contents rewinds when possible and reads everything that remains.
	Contents() ([]byte, error)
	Metadata(key string) (interface{}, bool)
}
