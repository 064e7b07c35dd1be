// Package textscan is the runtime for pattern-driven extraction of typed
// values from text. Code generators emit sequences of primitive calls
// against a Session — skip whitespace, match a literal, scan a value —
// rather than implementing parsing themselves. Tokenization, whitespace
// handling, and literal comparison are pluggable strategies chosen when
// the session is built.
package textscan

import "errors"

// Session drives a single scan over one input string with a fixed set of
// strategies. It is single-use: after the first failing primitive every
// later primitive is a no-op and the first error is retained verbatim. A
// session must not be shared between goroutines; independent sessions may
// scan the same input concurrently.
type Session struct {
	cur  Cursor
	err  *ScanError
	vals []any
}

// NewSession returns a session over input with the default strategies:
// whitespace-delimited word tokens, skip-all whitespace, exact literal
// comparison.
func NewSession(input string) *Session {
	return NewSessionWith(input, Word{}, SkipAll{}, Exact{})
}

// NewSessionWith returns a session over input using the given strategies.
// Strategies are observed, never mutated, for the life of the session.
func NewSessionWith(input string, tok Tokenizer, ws Whitespace, cs CompareStrs) *Session {
	return &Session{cur: newCursor(input, tok, ws, cs)}
}

// SkipWhitespace advances past leading whitespace per the session's
// policy. It always succeeds; skipping twice in a row is the same as
// skipping once.
func (s *Session) SkipWhitespace() {
	if s.err != nil {
		return
	}
	s.cur = s.cur.PopWhitespace()
}

// MatchLiteral consumes text at the cursor if it matches under the
// session's comparison policy, reporting whether it did. On a mismatch the
// session fails with LiteralMismatch and the cursor does not move; at end
// of input it fails with UnexpectedEnd.
func (s *Session) MatchLiteral(text string) bool {
	if s.err != nil {
		return false
	}
	if n, ok := s.cur.cs.Prefix(s.cur.Tail(), text); ok {
		s.cur = s.cur.sliceFrom(n)
		return true
	}
	if s.cur.AtEnd() {
		s.fail(scanErrorf(UnexpectedEnd, s.cur.offset, text, "expected %q, got end of input", text))
	} else {
		s.fail(scanErrorf(LiteralMismatch, s.cur.offset, text, "expected %q", text))
	}
	return false
}

// Scan extracts one value with sc, records it, and commits the cursor past
// the consumed text. Bounded scanners get the next token from the
// tokenizer; greedy scanners get the raw tail and pick their own length.
// On failure the session fails with the scanner's error rebased to an
// absolute input offset, and the cursor stays put.
func (s *Session) Scan(sc Scanner) (any, bool) {
	if s.err != nil {
		return nil, false
	}

	if sc.Mode() == Bounded {
		tok, start, next, ok := s.cur.popToken()
		if !ok {
			s.fail(scanErrorf(UnexpectedEnd, s.cur.offset, "", "expected a token, got end of input"))
			return nil, false
		}
		v, _, err := sc.Scan(tok)
		if err != nil {
			s.fail(rebase(err, start))
			return nil, false
		}
		s.cur = next
		s.vals = append(s.vals, v)
		return v, true
	}

	tail := s.cur.Tail()
	v, n, err := sc.Scan(tail)
	if err != nil {
		s.fail(rebase(err, s.cur.offset))
		return nil, false
	}
	if n > len(tail) {
		// a scanner bug, not an input problem
		s.fail(scanErrorf(OutOfBounds, s.cur.offset, "", "scanner consumed %d bytes of a %d byte tail", n, len(tail)))
		return nil, false
	}
	s.cur = s.cur.sliceFrom(n)
	s.vals = append(s.vals, v)
	return v, true
}

// ExpectEnd asserts that no tokens remain in the input; like every other
// assertion it is an instruction, so a leftover token fails the session.
func (s *Session) ExpectEnd() bool {
	if s.err != nil {
		return false
	}
	if _, _, ok := s.cur.PopToken(); ok {
		s.fail(s.cur.ExpectedEnd())
		return false
	}
	return true
}

// IsSuccess reports whether no instruction has failed so far.
func (s *Session) IsSuccess() bool { return s.err == nil }

// Err returns the first failure, or nil. The concrete type is *ScanError.
func (s *Session) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// Values returns the values scanned so far, in order. Values scanned
// before a failing instruction are retained for diagnostics.
func (s *Session) Values() []any { return s.vals }

// Remainder returns the unconsumed tail of the input.
func (s *Session) Remainder() string { return s.cur.Tail() }

// Offset returns the byte offset of the cursor into the input.
func (s *Session) Offset() int { return s.cur.Offset() }

// Cursor returns a copy of the session's cursor, for custom scanning logic
// that wants direct access to the primitives.
func (s *Session) Cursor() Cursor { return s.cur }

func (s *Session) fail(err *ScanError) {
	if s.err == nil {
		s.err = err
	}
}

// rebase shifts a scanner-relative error offset onto the input. Non-scan
// errors from custom scanners are wrapped as Malformed at the base offset.
func rebase(err error, base int) *ScanError {
	var se *ScanError
	if errors.As(err, &se) {
		shifted := *se
		shifted.Offset += base
		return &shifted
	}
	return scanErrorf(Malformed, base, "", "%v", err)
}

// ScanAs extracts one value with sc and asserts its static type. The
// scanner must produce values of type T; a mismatch is a programming
// error and panics.
func ScanAs[T any](s *Session, sc Scanner) (T, bool) {
	v, ok := s.Scan(sc)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}
