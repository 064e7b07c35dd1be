package textscan

import (
	"strings"

	"golang.org/x/text/cases"
)

// CompareStrs defines the equivalence relation used when matching literal
// text during a scan. It is used when matching literal tokens (is "BaNaNa"
// a suitable match for "banana"?) and is available to scanners through the
// cursor, though they are free to ignore it.
type CompareStrs interface {
	// Compare reports whether a and b are equal under the policy.
	Compare(a, b string) bool

	// Prefix reports whether literal matches a prefix of s under the
	// policy, returning the number of bytes of s it covers. On a mismatch
	// ok is false and nothing is consumed; callers rely on this to fail
	// cleanly without rolling anything back.
	Prefix(s, literal string) (n int, ok bool)
}

// Exact matches strings byte for byte. Unicode normalization is not
// considered.
type Exact struct{}

func (Exact) Compare(a, b string) bool { return a == b }

func (Exact) Prefix(s, literal string) (int, bool) {
	if strings.HasPrefix(s, literal) {
		return len(literal), true
	}
	return 0, false
}

// FoldASCII matches strings ignoring the case of letters in the ASCII
// range only. A (possibly faster) alternative to Fold when the literals
// involved are plain ASCII.
type FoldASCII struct{}

func (FoldASCII) Compare(a, b string) bool { return asciiEqualFold(a, b) }

func (FoldASCII) Prefix(s, literal string) (int, bool) {
	if len(s) >= len(literal) && asciiEqualFold(s[:len(literal)], literal) {
		return len(literal), true
	}
	return 0, false
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// Fold matches strings under full Unicode case folding, so uneven-length
// foldings like "ß" and "SS" are equivalent. The consumed input length
// reported by Prefix can therefore differ from the literal's length.
// Unicode normalization is not considered.
type Fold struct{}

func (Fold) Compare(a, b string) bool {
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}

func (Fold) Prefix(s, literal string) (int, bool) {
	folder := cases.Fold()
	want := folder.String(literal)
	if want == "" {
		return 0, true
	}
	// Fold input runes one at a time; the match is decided as soon as the
	// folded output covers the folded literal, which keeps consumption to
	// whole runes.
	var folded strings.Builder
	for i, r := range s {
		if folded.Len() >= len(want) {
			if folded.String() == want {
				return i, true
			}
			return 0, false
		}
		folded.WriteString(folder.String(string(r)))
	}
	if folded.String() == want {
		return len(s), true
	}
	return 0, false
}
