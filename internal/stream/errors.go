package stream

import "fmt"

// ParseError is the single error kind raised by every assertion in the
// decoder. It always carries the byte offset where the failing read or
// check started, so callers can report both decimal and hex positions.
type ParseError struct {
	Offset  int64
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d (0x%x): %s", e.Offset, e.Offset, e.Message)
}

func newParseError(offset int64, format string, args ...any) error {
	return &ParseError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}
