package textscan

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

// ScanMode selects how the session invokes a Scanner.
type ScanMode int

const (
	// Bounded scanners receive a pre-tokenized span and must consume it
	// entirely; leftovers are a Malformed failure. Right for
	// whitespace-delimited values.
	Bounded ScanMode = iota
	// Greedy scanners receive the unconsumed tail of the input and
	// determine their own consumption length. Right for values whose
	// grammar crosses token boundaries, like "-3.14e+10" under a word
	// tokenizer.
	Greedy
)

// Scanner extracts a typed value from text. In Bounded mode s is the next
// token; in Greedy mode s is everything from the cursor to the end of the
// input. Scan returns the value, the number of bytes of s consumed, and on
// failure a ScanError whose offset is relative to the start of s (the
// session rebases it onto the input).
type Scanner interface {
	Mode() ScanMode
	Scan(s string) (any, int, error)
}

// AsBounded wraps a greedy scanner so it runs in bounded mode: it is handed
// a whole token and fails with Malformed unless the value's grammar
// consumes that token exactly.
func AsBounded(inner Scanner) Scanner { return boundedScanner{inner} }

type boundedScanner struct {
	inner Scanner
}

func (b boundedScanner) Mode() ScanMode { return Bounded }

func (b boundedScanner) Scan(s string) (any, int, error) {
	v, n, err := b.inner.Scan(s)
	if err != nil {
		return nil, 0, err
	}
	if n != len(s) {
		return nil, 0, scanErrorf(Malformed, n, "", "trailing characters %q after value", s[n:])
	}
	return v, n, nil
}

// integers

type intScanner struct {
	bits   int
	signed bool
	name   string
	conv   func(v int64, u uint64) any
}

// Int returns a greedy scanner for a signed integer sized to the platform
// int. The accepted grammar is an optional minus sign, an optional
// 0x/0o/0b radix prefix, and a run of digits in that radix.
func Int() Scanner {
	return intScanner{strconv.IntSize, true, "integer", func(v int64, _ uint64) any { return int(v) }}
}

// Int8 returns a greedy scanner for an 8-bit signed integer.
func Int8() Scanner {
	return intScanner{8, true, "8-bit integer", func(v int64, _ uint64) any { return int8(v) }}
}

// Int16 returns a greedy scanner for a 16-bit signed integer.
func Int16() Scanner {
	return intScanner{16, true, "16-bit integer", func(v int64, _ uint64) any { return int16(v) }}
}

// Int32 returns a greedy scanner for a 32-bit signed integer.
func Int32() Scanner {
	return intScanner{32, true, "32-bit integer", func(v int64, _ uint64) any { return int32(v) }}
}

// Int64 returns a greedy scanner for a 64-bit signed integer.
func Int64() Scanner {
	return intScanner{64, true, "64-bit integer", func(v int64, _ uint64) any { return v }}
}

// Uint returns a greedy scanner for an unsigned integer sized to the
// platform uint. Unsigned scanners accept no sign.
func Uint() Scanner {
	return intScanner{strconv.IntSize, false, "unsigned integer", func(_ int64, u uint64) any { return uint(u) }}
}

// Uint8 returns a greedy scanner for an 8-bit unsigned integer.
func Uint8() Scanner {
	return intScanner{8, false, "8-bit unsigned integer", func(_ int64, u uint64) any { return uint8(u) }}
}

// Uint16 returns a greedy scanner for a 16-bit unsigned integer.
func Uint16() Scanner {
	return intScanner{16, false, "16-bit unsigned integer", func(_ int64, u uint64) any { return uint16(u) }}
}

// Uint32 returns a greedy scanner for a 32-bit unsigned integer.
func Uint32() Scanner {
	return intScanner{32, false, "32-bit unsigned integer", func(_ int64, u uint64) any { return uint32(u) }}
}

// Uint64 returns a greedy scanner for a 64-bit unsigned integer.
func Uint64() Scanner {
	return intScanner{64, false, "64-bit unsigned integer", func(_ int64, u uint64) any { return u }}
}

func (sc intScanner) Mode() ScanMode { return Greedy }

func (sc intScanner) Scan(s string) (any, int, error) {
	n := intLen(s, sc.signed)
	if n == 0 {
		if s == "" {
			return nil, 0, scanErrorf(UnexpectedEnd, 0, sc.name, "expected %s, got end of input", sc.name)
		}
		return nil, 0, scanErrorf(Malformed, 0, sc.name, "expected %s", sc.name)
	}
	lit := s[:n]
	// base 0 so strconv honors the radix prefix, but only when one is
	// present: base 0 would also treat a leading zero as octal, and "042"
	// must scan as decimal 42
	base := 10
	if hasRadixPrefix(lit) {
		base = 0
	}
	if sc.signed {
		v, err := strconv.ParseInt(lit, base, sc.bits)
		if err != nil {
			return nil, 0, sc.convErr(lit, err)
		}
		return sc.conv(v, 0), n, nil
	}
	u, err := strconv.ParseUint(lit, base, sc.bits)
	if err != nil {
		return nil, 0, sc.convErr(lit, err)
	}
	return sc.conv(0, u), n, nil
}

func hasRadixPrefix(lit string) bool {
	if len(lit) > 0 && lit[0] == '-' {
		lit = lit[1:]
	}
	if len(lit) < 2 || lit[0] != '0' {
		return false
	}
	switch lit[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func (sc intScanner) convErr(lit string, err error) *ScanError {
	if errors.Is(err, strconv.ErrRange) {
		return scanErrorf(Overflow, 0, sc.name, "%s out of range for %s", lit, sc.name)
	}
	return scanErrorf(Malformed, 0, sc.name, "malformed %s %q", sc.name, lit)
}

func byteLenWhile(s string, pred func(byte) bool) int {
	i := 0
	for i < len(s) && pred(s[i]) {
		i++
	}
	return i
}

func decDigit(c byte) bool { return '0' <= c && c <= '9' }
func hexDigit(c byte) bool {
	return decDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
func octDigit(c byte) bool { return '0' <= c && c <= '7' }
func binDigit(c byte) bool { return c == '0' || c == '1' }

// intLen returns the length in bytes of an integer literal at the start of
// s: an optional minus sign (signed only), an optional 0x/0o/0b radix
// prefix, and a run of digits in that radix. A radix prefix with no digits
// after it scans as just the leading zero, so "0x" yields "0" and leaves
// "x" unconsumed. Zero means no integer literal is present; a bare sign
// does not count.
func intLen(s string, signed bool) int {
	i := 0
	if signed && len(s) > 0 && s[0] == '-' {
		i = 1
	}
	rest := s[i:]
	if len(rest) >= 2 && rest[0] == '0' {
		var digits func(byte) bool
		switch rest[1] {
		case 'x', 'X':
			digits = hexDigit
		case 'o', 'O':
			digits = octDigit
		case 'b', 'B':
			digits = binDigit
		}
		if digits != nil {
			if n := byteLenWhile(rest[2:], digits); n > 0 {
				return i + 2 + n
			}
			return i + 1
		}
	}
	n := byteLenWhile(rest, decDigit)
	if n == 0 {
		return 0
	}
	return i + n
}

// floats

type floatScanner struct {
	bits int
	name string
}

// Float32 returns a greedy scanner for a 32-bit real number.
func Float32() Scanner { return floatScanner{32, "real number"} }

// Float64 returns a greedy scanner for a 64-bit real number.
func Float64() Scanner { return floatScanner{64, "real number"} }

func (sc floatScanner) Mode() ScanMode { return Greedy }

func (sc floatScanner) Scan(s string) (any, int, error) {
	n := floatLen(s)
	if n == 0 {
		if s == "" {
			return nil, 0, scanErrorf(UnexpectedEnd, 0, sc.name, "expected %s, got end of input", sc.name)
		}
		return nil, 0, scanErrorf(Malformed, 0, sc.name, "expected %s", sc.name)
	}
	lit := s[:n]
	v, err := strconv.ParseFloat(lit, sc.bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, 0, scanErrorf(Overflow, 0, sc.name, "%s out of range for %s", lit, sc.name)
		}
		return nil, 0, scanErrorf(Malformed, 0, sc.name, "malformed %s %q", sc.name, lit)
	}
	if sc.bits == 32 {
		return float32(v), n, nil
	}
	return v, n, nil
}

// floatLen returns the length in bytes of a real-number literal at the
// start of s: optional minus sign, integer digits, optional fraction,
// optional exponent with optional sign. No hex floats, no embedded
// underscores.
func floatLen(s string) int {
	const (
		stStart = iota
		stWhole
		stFrac
		stExpStart
		stExp
	)
	state := stStart
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case stStart:
			if c != '-' && !decDigit(c) {
				return 0
			}
			state = stWhole
		case stWhole:
			switch {
			case decDigit(c):
			case c == '.':
				state = stFrac
			case c == 'e' || c == 'E':
				state = stExpStart
			default:
				return i
			}
		case stFrac:
			switch {
			case decDigit(c):
			case c == 'e' || c == 'E':
				state = stExpStart
			default:
				return i
			}
		case stExpStart:
			if c != '+' && c != '-' && !decDigit(c) {
				return i
			}
			state = stExp
		case stExp:
			if !decDigit(c) {
				return i
			}
		}
	}
	return len(s)
}

// strings, runes, bools

type strScanner struct{}

// Str returns a bounded scanner that yields the next token verbatim as a
// string.
func Str() Scanner { return strScanner{} }

func (strScanner) Mode() ScanMode { return Bounded }

func (strScanner) Scan(s string) (any, int, error) {
	if s == "" {
		return nil, 0, scanErrorf(UnexpectedEnd, 0, "any token", "expected a token, got end of input")
	}
	return s, len(s), nil
}

type runeScanner struct{}

// Rune returns a greedy scanner that yields the next single rune,
// whitespace included.
func Rune() Scanner { return runeScanner{} }

func (runeScanner) Mode() ScanMode { return Greedy }

func (runeScanner) Scan(s string) (any, int, error) {
	if s == "" {
		return nil, 0, scanErrorf(UnexpectedEnd, 0, "character", "expected a character, got end of input")
	}
	r, size := utf8.DecodeRuneInString(s)
	return r, size, nil
}

type boolScanner struct{}

// Bool returns a bounded scanner accepting the tokens "true" and "false".
func Bool() Scanner { return boolScanner{} }

func (boolScanner) Mode() ScanMode { return Bounded }

func (boolScanner) Scan(s string) (any, int, error) {
	switch s {
	case "true":
		return true, len(s), nil
	case "false":
		return false, len(s), nil
	case "":
		return nil, 0, scanErrorf(UnexpectedEnd, 0, "`true` or `false`", "expected `true` or `false`, got end of input")
	}
	return nil, 0, scanErrorf(Malformed, 0, "`true` or `false`", "expected `true` or `false`, got %q", s)
}
