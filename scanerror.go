package textscan

import "fmt"

// ErrKind classifies the ways a scan can fail.
type ErrKind int

const (
	// LiteralMismatch means an expected literal was not found at the offset.
	LiteralMismatch ErrKind = iota
	// Malformed means a token was present but did not satisfy the target
	// type's grammar.
	Malformed
	// Overflow means a well-formed numeral exceeded the target type's range.
	Overflow
	// UnexpectedEnd means the input ran out where a token or literal was
	// required.
	UnexpectedEnd
	// OutOfBounds means a strategy requested consumption past the end of
	// the input. It indicates a bug in a policy or tokenizer, not bad input.
	OutOfBounds
)

func (k ErrKind) String() string {
	switch k {
	case LiteralMismatch:
		return "literal mismatch"
	case Malformed:
		return "malformed"
	case Overflow:
		return "overflow"
	case UnexpectedEnd:
		return "unexpected end of input"
	case OutOfBounds:
		return "out of bounds"
	default:
		panic("unexpected error kind")
	}
}

// ScanError reports why and where a scan failed.
type ScanError struct {
	Kind ErrKind
	// Offset is the byte offset into the input at which the failure
	// occurred.
	Offset int
	// Expected names the literal or kind of value that was wanted, if any.
	Expected string

	msg string
}

func scanErrorf(kind ErrKind, offset int, expected string, format string, args ...any) *ScanError {
	return &ScanError{
		Kind:     kind,
		Offset:   offset,
		Expected: expected,
		msg:      fmt.Sprintf(format, args...),
	}
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.msg)
}

// Or returns the more interesting of two errors: the one whose offset is
// further along the input, which is usually the most relevant failure when
// several alternatives were tried. Ties go to e.
func (e *ScanError) Or(other *ScanError) *ScanError {
	if other != nil && (e == nil || other.Offset > e.Offset) {
		return other
	}
	return e
}
