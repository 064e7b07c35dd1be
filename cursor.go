package textscan

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Cursor tracks progress through an input string during a scan. The offset
// is a byte offset and always sits on a rune boundary. Cursors are small
// values copied freely for speculative lookahead; a scan only moves forward
// when a caller adopts an advanced copy, so failed probes cost nothing to
// roll back.
type Cursor struct {
	src    string
	offset int

	tok Tokenizer
	ws  Whitespace
	cs  CompareStrs
}

func newCursor(src string, tok Tokenizer, ws Whitespace, cs CompareStrs) Cursor {
	return Cursor{src: src, tok: tok, ws: ws, cs: cs}
}

// Offset returns the number of bytes consumed so far, relative to the start
// of the input.
func (c Cursor) Offset() int { return c.offset }

// Tail returns the input from the current offset to the end.
func (c Cursor) Tail() string { return c.src[c.offset:] }

// AtEnd reports whether there is no input remaining. Depending on the
// tokenizer and whitespace policy, this is not necessarily the same as
// "there are no tokens left".
func (c Cursor) AtEnd() bool { return c.offset == len(c.src) }

// Remaining returns the number of runes between the current offset and the
// end of the input.
func (c Cursor) Remaining() int { return utf8.RuneCountInString(c.Tail()) }

// Peek returns up to n runes starting at the current offset without
// advancing. Fewer runes are returned at end of input.
func (c Cursor) Peek(n int) string {
	tail := c.Tail()
	for i := range tail {
		if n == 0 {
			return tail[:i]
		}
		n--
	}
	return tail
}

// Advance moves the offset forward by n runes. It fails with an OutOfBounds
// error, leaving the offset unchanged, if n exceeds the remaining length.
func (c *Cursor) Advance(n int) error {
	tail := c.Tail()
	for ; n > 0; n-- {
		if len(tail) == 0 {
			return scanErrorf(OutOfBounds, c.offset, "", "advance past end of input")
		}
		_, size := utf8.DecodeRuneInString(tail)
		tail = tail[size:]
	}
	c.offset = len(c.src) - len(tail)
	return nil
}

// sliceFrom returns a cursor n bytes further along, clamped to the end of
// the input.
func (c Cursor) sliceFrom(n int) Cursor {
	c.offset += n
	if c.offset > len(c.src) {
		c.offset = len(c.src)
	}
	return c
}

// PopWhitespace returns a cursor with leading skippable whitespace removed,
// per the whitespace policy. It always succeeds.
func (c Cursor) PopWhitespace() Cursor {
	return c.sliceFrom(c.ws.Skip(c.Tail()))
}

// PopToken returns the next token and a cursor advanced past it. Leading
// skippable whitespace is stripped first. Then the whitespace policy gets a
// chance to produce an explicit whitespace token, then the tokenizer; if
// the tokenizer declines and input remains, the next single rune becomes
// the token. ok is false only when no input remains after the whitespace
// strip.
func (c Cursor) PopToken() (tok string, next Cursor, ok bool) {
	tok, _, next, ok = c.popToken()
	return tok, next, ok
}

func (c Cursor) popToken() (tok string, start int, next Cursor, ok bool) {
	cur := c.PopWhitespace()
	start = cur.offset

	// The whitespace policy goes first so that it can turn whitespace it
	// chose not to strip into explicit tokens, e.g. mapping a run of blanks
	// to a single " ". Note the policy supplies the token contents itself.
	if n, ws, ok := cur.ws.Token(cur.Tail()); ok {
		return ws, start, cur.sliceFrom(n), true
	}

	tail := cur.Tail()
	if n, ok := cur.tok.TokenLen(tail); ok {
		return tail[:n], start, cur.sliceFrom(n), true
	}
	if cur.AtEnd() {
		return "", start, cur, false
	}
	_, size := utf8.DecodeRuneInString(tail)
	return tail[:size], start, cur.sliceFrom(size), true
}

// ExpectTok returns a cursor past the next token if that token equals s
// under the cursor's string comparison policy. On a mismatch the original
// cursor position is preserved.
func (c Cursor) ExpectTok(s string) (Cursor, error) {
	if tok, next, ok := c.PopToken(); ok && c.Compare(s, tok) {
		return next, nil
	}
	return c, c.ExpectedOneOf(s)
}

// Compare reports whether a and b are equal under the cursor's string
// comparison policy.
func (c Cursor) Compare(a, b string) bool { return c.cs.Compare(a, b) }

// Expected builds a failure of the given kind at the cursor position,
// naming what was wanted. The message includes the next token, which
// presumably was not what the caller expected.
func (c Cursor) Expected(kind ErrKind, desc string) *ScanError {
	if tok, _, ok := c.PopToken(); ok {
		return scanErrorf(kind, c.offset, desc, "expected %s, got %q", desc, tok)
	}
	return scanErrorf(UnexpectedEnd, c.offset, desc, "expected %s, got end of input", desc)
}

// ExpectedOneOf builds the failure for a position where one of a specific
// set of literal tokens was wanted. With no tokens given, it reports that
// end of input was expected.
func (c Cursor) ExpectedOneOf(toks ...string) *ScanError {
	var list strings.Builder
	for i, t := range toks {
		if i > 0 {
			list.WriteString(", ")
		}
		fmt.Fprintf(&list, "%q", t)
	}
	exp := strings.Join(toks, ", ")

	tok, _, ok := c.PopToken()
	switch {
	case len(toks) > 0 && ok:
		return scanErrorf(LiteralMismatch, c.offset, exp, "expected %s, got %q", list.String(), tok)
	case len(toks) > 0:
		return scanErrorf(UnexpectedEnd, c.offset, exp, "expected %s, got end of input", list.String())
	case ok:
		return scanErrorf(Malformed, c.offset, "end of input", "expected end of input, got %q", tok)
	default:
		return scanErrorf(Malformed, c.offset, "end of input", "expected end of input")
	}
}

// ExpectedEnd builds the failure for a token found where the end of the
// input was required.
func (c Cursor) ExpectedEnd() *ScanError { return c.ExpectedOneOf() }

// ExpectedMinRepeats builds the failure for a repetition construct that
// matched fewer times than its required minimum. It exists for the
// convenience of generated code.
func (c Cursor) ExpectedMinRepeats(min, got int) *ScanError {
	return scanErrorf(Malformed, c.offset, "", "expected at least %d repeats, got %d", min, got)
}
