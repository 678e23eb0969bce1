package errors

import "fmt"

// ArgumentError is returned synchronously by constructors and With* methods
// when a caller supplied value is malformed, out of range or unsupported.
type ArgumentError struct {
	msg    string
	detail string
	error
}

func (e ArgumentError) Error() string {
	msg := e.msg
	if e.detail != "" {
		msg += ": " + e.detail
	}
	if e.error != nil {
		msg += ", error: " + e.error.Error()
	}
	return msg
}

func (e ArgumentError) Wrap(err error) ArgumentError {
	if err == nil {
		return e
	}
	return ArgumentError{e.msg, e.detail, err}
}

func (e ArgumentError) Unwrap() error {
	return e.error
}

// Is reports whether err is an ArgumentError, so that every argument error
// matches ErrInvalidArgument regardless of its detail.
func (e ArgumentError) Is(err error) bool {
	_, ok := err.(ArgumentError)
	return ok
}

var ErrInvalidArgument = ArgumentError{msg: "invalid argument"}

// InvalidArgument builds an ArgumentError with a formatted detail.
func InvalidArgument(format string, args ...interface{}) ArgumentError {
	return ArgumentError{msg: ErrInvalidArgument.msg, detail: fmt.Sprintf(format, args...)}
}
