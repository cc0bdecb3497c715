package store

import "fmt"

// Kind classifies store failures. The value is used as the message prefix.
type Kind string

const (
	KindIO   Kind = "IO error"
	KindJSON Kind = "JSON error"
	KindUTF8 Kind = "UTF8 error"
)

// Error is returned for any failure reading or writing the store file.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
