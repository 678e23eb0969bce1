package stream

import (
	"bytes"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/frankli0324/go-httpmsg/internal/errors"
)

// FromValue turns the usual Go body values into a Body. Strings, byte slices,
// buffers and in-memory readers are copied into memory from their current
// offset, like http.NewRequest; other readers are attached as they are.
func FromValue(v interface{}) (Body, error) {
	if isNilPointer(v) {
		return nil, errors.InvalidArgument("nil %T body", v)
	}
	switch b := v.(type) {
	case Body:
		return b, nil
	case string:
		return fromBytes([]byte(b)), nil
	case []byte:
		return fromBytes(append([]byte(nil), b...)), nil
	case *bytes.Buffer: // unread portion only
		return fromBytes(append([]byte(nil), b.Bytes()...)), nil
	case *bytes.Reader:
		snapshot := *b
		return unread(&snapshot, b.Len()), nil
	case *strings.Reader:
		snapshot := *b
		return unread(&snapshot, b.Len()), nil
	case *os.File:
		return New(b, "")
	case io.Reader:
		return New(b, "")
	}
	return nil, errors.InvalidArgument("unsupported body type: %T", v)
}

func isNilPointer(v interface{}) bool {
	if v == nil {
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// unread copies the n bytes left in r into a memory stream.
func unread(r io.Reader, n int) *Stream {
	b := make([]byte, n)
	n, _ = io.ReadFull(r, b)
	return fromBytes(b[:n])
}

func fromBytes(b []byte) *Stream {
	s := &Stream{}
	s.attach(&buffer{b: b}, DefaultMode, MemoryURI, "MEMORY")
	return s
}
