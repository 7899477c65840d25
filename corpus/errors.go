package corpus

import (
	"errors"
	"fmt"
)

var (
	// ErrTooLarge is returned when a decoded corpus exceeds the configured size limit.
	ErrTooLarge = errors.New("corpus exceeds size limit")
	// ErrInvalidUTF8 is returned when UTF-8 is required and the corpus is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("corpus is not valid UTF-8")
	// ErrEmpty is returned when a corpus holds no bytes.
	ErrEmpty = errors.New("corpus is empty")
)

// ErrDecode indicates that a compressed corpus could not be decoded.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrDecode struct {
	Name   string
	Format Format
	cause  error
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("decode %s corpus %q: %v", e.Format, e.Name, e.cause)
}

func (e *ErrDecode) Unwrap() error { return e.cause }
