package textscan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer determines the boundary of the next token without consuming
// any input; advancing past a token is always the caller's move.
type Tokenizer interface {
	// TokenLen returns the length in bytes of a token at the start of s.
	// ok is false when no token of the tokenizer's class starts s; the
	// cursor then falls back to taking the next single rune as the token,
	// and implementations may rely on that behavior.
	TokenLen(s string) (n int, ok bool)
}

// Word tokenizes runs of one or more non-whitespace runes.
type Word struct{}

func (Word) TokenLen(s string) (int, bool) {
	if n := lenWhile(s, func(r rune) bool { return !unicode.IsSpace(r) }); n > 0 {
		return n, true
	}
	return 0, false
}

// WordsAndInts tokenizes a run of alphabetic runes or a run of digit
// runes. A token never mixes the two: "abc123" is two tokens.
type WordsAndInts struct{}

func (WordsAndInts) TokenLen(s string) (int, bool) {
	r, _ := utf8.DecodeRuneInString(s)
	switch {
	case unicode.IsLetter(r):
		return lenWhile(s, unicode.IsLetter), true
	case unicode.IsDigit(r):
		return lenWhile(s, unicode.IsDigit), true
	}
	return 0, false
}

// IdentsAndInts tokenizes identifiers and runs of digits. An identifier is
// an underscore or letter followed by letters, digits, and underscores.
type IdentsAndInts struct{}

func (IdentsAndInts) TokenLen(s string) (int, bool) {
	r, _ := utf8.DecodeRuneInString(s)
	switch {
	case r == '_' || unicode.IsLetter(r):
		return lenWhile(s, func(r rune) bool {
			return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
		}), true
	case unicode.IsDigit(r):
		return lenWhile(s, unicode.IsDigit), true
	}
	return 0, false
}

// Fixed tokenizes exactly N runes. When fewer than N runes remain, the
// short token is returned as-is; whether that is acceptable is the
// caller's decision, not the tokenizer's.
type Fixed struct {
	N int
}

func (t Fixed) TokenLen(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := t.N
	for i := range s {
		if n == 0 {
			return i, true
		}
		n--
	}
	return len(s), true
}

// UntilAny tokenizes the run up to, and not including, the first rune in
// Delims, or to the end of the input. The token is empty if a delimiter is
// already at the cursor.
type UntilAny struct {
	Delims string
}

func (t UntilAny) TokenLen(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if i := strings.IndexAny(s, t.Delims); i >= 0 {
		return i, true
	}
	return len(s), true
}

// WholeInput treats the entire remaining input as a single token.
type WholeInput struct{}

func (WholeInput) TokenLen(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	return len(s), true
}
