package stream

import (
	"errors"
	"io"
)

// MemoryURI attaches an in-process buffer instead of a file.
const MemoryURI = "memory:"

// buffer is a growable in-memory file.
type buffer struct {
	b   []byte
	off int64
}

func (m *buffer) Read(p []byte) (int, error) {
	if m.off >= int64(len(m.b)) {
		return 0, io.EOF
	}
	n := copy(p, m.b[m.off:])
	m.off += int64(n)
	return n, nil
}

func (m *buffer) Write(p []byte) (int, error) {
	end := m.off + int64(len(p))
	if end > int64(len(m.b)) {
		if end > int64(cap(m.b)) {
			nb := make([]byte, len(m.b), end*2)
			copy(nb, m.b)
			m.b = nb
		}
		m.b = m.b[:end]
	}
	n := copy(m.b[m.off:], p)
	m.off += int64(n)
	return n, nil
}

func (m *buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.off + offset
	case io.SeekEnd:
		abs = int64(len(m.b)) + offset
	default:
		return 0, errors.New("stream: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("stream: negative position")
	}
	m.off = abs
	return abs, nil
}

func (m *buffer) Size() int64 { return int64(len(m.b)) }

func (m *buffer) Close() error { return nil }
