package stream

import (
	"io"
	"os"

	"github.com/frankli0324/go-httpmsg/internal/errors"
	"github.com/frankli0324/go-httpmsg/internal/obs"
)

// Stream is the default Body. The zero value is unattached.
type Stream struct {
	res      interface{}
	mode     string
	uri      string
	kind     string
	seekable bool
	eof      bool
	pos      int64 // tracked for resources that cannot Seek
}

// New attaches resource to a fresh Stream, see Attach.
func New(resource interface{}, mode string) (*Stream, error) {
	s := &Stream{}
	if err := s.Attach(resource, mode); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemory returns an empty readable, writable and seekable stream.
func NewMemory() *Stream {
	s := &Stream{}
	s.attach(&buffer{}, DefaultMode, MemoryURI, "MEMORY")
	return s
}

// Attach binds resource, which may be MemoryURI, a file path opened with
// mode, an *os.File, or any io.Reader or io.Writer. An empty mode is derived
// from the resource. A previously attached resource is detached, not closed.
func (s *Stream) Attach(resource interface{}, mode string) error {
	switch r := resource.(type) {
	case string:
		if r == MemoryURI {
			if mode == "" {
				mode = DefaultMode
			}
			s.attach(&buffer{}, mode, MemoryURI, "MEMORY")
			return nil
		}
		if mode == "" {
			mode = DefaultMode
		}
		flag, ok := openFlags(mode)
		if !ok {
			return errors.InvalidArgument("invalid stream mode %q", mode)
		}
		f, err := os.OpenFile(r, flag, 0o666)
		if err != nil {
			return errors.InvalidArgument("invalid stream provided: %s", r).Wrap(err)
		}
		s.attach(f, mode, r, "STDIO")
	case *os.File:
		if r == nil {
			return errors.InvalidArgument("invalid stream provided: nil file")
		}
		if mode == "" {
			mode = fileMode(r)
		}
		if mode == "" {
			mode = interfaceMode(r)
		}
		s.attach(r, mode, r.Name(), "STDIO")
	case io.Reader, io.Writer:
		if mode == "" {
			mode = interfaceMode(r)
		}
		s.attach(r, mode, "", "GENERIC")
	default:
		return errors.InvalidArgument("invalid stream provided: %T", resource)
	}
	return nil
}

func (s *Stream) attach(res interface{}, mode, uri, kind string) {
	*s = Stream{res: res, mode: mode, uri: uri, kind: kind}
	if sk, ok := res.(io.Seeker); ok {
		// pipes and sockets behind *os.File fail here
		if pos, err := sk.Seek(0, io.SeekCurrent); err == nil {
			s.seekable, s.pos = true, pos
		}
	}
}

func interfaceMode(r interface{}) string {
	_, reads := r.(io.Reader)
	_, writes := r.(io.Writer)
	switch {
	case reads && writes:
		return "r+"
	case writes:
		return "w"
	default:
		return "r"
	}
}

func (s *Stream) Detach() interface{} {
	res := s.res
	*s = Stream{}
	return res
}

// Close detaches the resource and closes it. Closing an unattached stream
// does nothing.
func (s *Stream) Close() error {
	res := s.Detach()
	if c, ok := res.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Stream) Readable() bool {
	if s.res == nil || !modeReadable(s.mode) {
		return false
	}
	_, ok := s.res.(io.Reader)
	return ok
}

func (s *Stream) Writable() bool {
	if s.res == nil || !modeWritable(s.mode) {
		return false
	}
	_, ok := s.res.(io.Writer)
	return ok
}

func (s *Stream) Seekable() bool {
	return s.res != nil && s.seekable
}

func (s *Stream) EOF() bool {
	return s.res == nil || s.eof
}

func (s *Stream) fail(op string, err error) error {
	obs.Logf(obs.Debug, "stream %s on %q failed: %v", op, s.uri, err)
	return err
}

func (s *Stream) Read(p []byte) (int, error) {
	if s.res == nil {
		return 0, s.fail("read", ErrDetached)
	}
	if !s.Readable() {
		return 0, s.fail("read", ErrNotReadable)
	}
	if s.eof {
		return 0, io.EOF
	}
	n, err := s.res.(io.Reader).Read(p)
	s.pos += int64(n)
	if err == io.EOF {
		s.eof = true
	} else if err != nil {
		return n, s.fail("read", err)
	}
	return n, err
}

func (s *Stream) Write(p []byte) (int, error) {
	if s.res == nil {
		return 0, s.fail("write", ErrDetached)
	}
	if !s.Writable() {
		return 0, s.fail("write", ErrNotWritable)
	}
	n, err := s.res.(io.Writer).Write(p)
	s.pos += int64(n)
	s.eof = false
	if err != nil {
		return n, s.fail("write", err)
	}
	return n, nil
}

func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.res == nil {
		return 0, s.fail("seek", ErrDetached)
	}
	if !s.seekable {
		return 0, s.fail("seek", ErrNotSeekable)
	}
	pos, err := s.res.(io.Seeker).Seek(offset, whence)
	if err != nil {
		return 0, s.fail("seek", err)
	}
	s.pos, s.eof = pos, false
	return pos, nil
}

func (s *Stream) Rewind() error {
	_, err := s.Seek(0, io.SeekStart)
	return err
}

// Tell returns the current position. For resources that cannot seek it is
// the number of bytes read and written since attaching.
func (s *Stream) Tell() (int64, error) {
	if s.res == nil {
		return 0, s.fail("tell", ErrDetached)
	}
	if s.seekable {
		return s.res.(io.Seeker).Seek(0, io.SeekCurrent)
	}
	return s.pos, nil
}

// Size reports the length of the resource when it is known.
func (s *Stream) Size() (int64, bool) {
	switch r := s.res.(type) {
	case *os.File:
		fi, err := r.Stat()
		if err != nil || !fi.Mode().IsRegular() {
			return 0, false
		}
		return fi.Size(), true
	case interface{ Size() int64 }:
		return r.Size(), true
	case interface{ Len() int }:
		return int64(r.Len()), true
	}
	return 0, false
}

func (s *Stream) Contents() ([]byte, error) {
	if !s.Readable() {
		if s.res == nil {
			return nil, ErrDetached
		}
		return nil, ErrNotReadable
	}
	if s.seekable {
		if err := s.Rewind(); err != nil {
			return nil, err
		}
	}
	return io.ReadAll(s)
}

// String returns the full contents, or "" when they cannot be read.
func (s *Stream) String() string {
	b, err := s.Contents()
	if err != nil {
		return ""
	}
	return string(b)
}

// Metadata looks up one of "mode", "seekable", "uri", "eof" or
// "stream_type". Nothing is found on an unattached stream.
func (s *Stream) Metadata(key string) (interface{}, bool) {
	if s.res == nil {
		return nil, false
	}
	switch key {
	case "mode":
		return s.mode, true
	case "seekable":
		return s.seekable, true
	case "uri":
		return s.uri, true
	case "eof":
		return s.eof, true
	case "stream_type":
		return s.kind, true
	}
	return nil, false
}

var _ Body = (*Stream)(nil)
