package textscan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Whitespace decides how much leading whitespace to skip before the next
// token, and optionally turns whitespace into explicit tokens instead.
type Whitespace interface {
	// Skip returns the number of bytes of skippable whitespace at the start
	// of s. Skipping is idempotent: once a policy has skipped, skipping
	// again without consuming anything returns 0.
	Skip(s string) int

	// Token returns the length and contents of an explicit whitespace token
	// at the start of s, if the policy produces one there. The returned
	// contents need not be a slice of s; a policy may collapse a run of
	// blanks to a single " ". Most policies return ok == false for every
	// input.
	Token(s string) (n int, tok string, ok bool)
}

// lenWhile returns the length in bytes of the leading run of runes in s
// satisfying pred.
func lenWhile(s string, pred func(rune) bool) int {
	for i, r := range s {
		if !pred(r) {
			return i
		}
	}
	return len(s)
}

func isSpaceNotNewline(r rune) bool {
	return unicode.IsSpace(r) && r != '\r' && r != '\n'
}

// newlineToken maps a leading newline sequence to a single "\n" token.
// "\r\n" counts as one sequence.
func newlineToken(s string) (int, string, bool) {
	switch {
	case strings.HasPrefix(s, "\r\n"):
		return 2, "\n", true
	case strings.HasPrefix(s, "\r"), strings.HasPrefix(s, "\n"):
		return 1, "\n", true
	}
	return 0, "", false
}

// SkipAll skips every rune with the Unicode White_Space property.
type SkipAll struct{}

func (SkipAll) Skip(s string) int                { return lenWhile(s, unicode.IsSpace) }
func (SkipAll) Token(string) (int, string, bool) { return 0, "", false }

// SkipNone never skips anything; useful for fixed-column formats where
// whitespace is significant.
type SkipNone struct{}

func (SkipNone) Skip(string) int                  { return 0 }
func (SkipNone) Token(string) (int, string, bool) { return 0, "", false }

// SkipRunes skips the maximal leading run of runes satisfying Pred.
type SkipRunes struct {
	Pred func(rune) bool
}

func (p SkipRunes) Skip(s string) int                { return lenWhile(s, p.Pred) }
func (p SkipRunes) Token(string) (int, string, bool) { return 0, "", false }

// ExplicitNewline skips whitespace except line terminators, which become
// explicit "\n" tokens. "\r\n", "\r", and "\n" all produce "\n", so callers
// see one token per line break regardless of the input's convention.
type ExplicitNewline struct{}

func (ExplicitNewline) Skip(s string) int {
	return lenWhile(s, isSpaceNotNewline)
}

func (ExplicitNewline) Token(s string) (int, string, bool) {
	return newlineToken(s)
}

// ExplicitSpace skips nothing. Newline sequences become single "\n" tokens
// and runs of all other whitespace collapse to a single " " token.
type ExplicitSpace struct{}

func (ExplicitSpace) Skip(string) int { return 0 }

func (ExplicitSpace) Token(s string) (int, string, bool) {
	if n, tok, ok := newlineToken(s); ok {
		return n, tok, ok
	}
	if n := lenWhile(s, isSpaceNotNewline); n > 0 {
		return n, " ", true
	}
	return 0, "", false
}

// ExplicitAny skips nothing and collapses every run of whitespace,
// newlines included, to a single " " token.
type ExplicitAny struct{}

func (ExplicitAny) Skip(string) int { return 0 }

func (ExplicitAny) Token(s string) (int, string, bool) {
	if n := lenWhile(s, unicode.IsSpace); n > 0 {
		return n, " ", true
	}
	return 0, "", false
}

// ExactSpace skips nothing and turns each whitespace rune into its own
// verbatim token, so tab and space produce different tokens. The sole
// exception is "\r\n", which is one token.
type ExactSpace struct{}

func (ExactSpace) Skip(string) int { return 0 }

func (ExactSpace) Token(s string) (int, string, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsSpace(r) {
		return 0, "", false
	}
	if strings.HasPrefix(s, "\r\n") {
		return 2, "\r\n", true
	}
	return size, s[:size], true
}
