package qualname

import (
	"errors"
	"strconv"
)

// ErrInvalidFormat is matched (via errors.Is) by every error returned when a dotted identifier is malformed.
var ErrInvalidFormat = errors.New("qualname: invalid identifier format")

// FormatError describes why a dotted identifier could not be split into segments.
type FormatError struct {
	Input   string // The string that was being parsed.
	Offset  int    // Byte offset of the error within Input, or -1 if no specific position applies.
	Message string // Human-readable description of the failure.
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Offset >= 0 {
		return "qualname: " + e.Message + " at position " + strconv.Itoa(e.Offset) + " in " + strconv.Quote(e.Input)
	}
	return "qualname: " + e.Message + " in " + strconv.Quote(e.Input)
}

// Is reports whether target is ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
