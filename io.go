package textscan

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ReadRune decodes a single UTF-8 code point from r, returning the rune
// and the number of bytes read. It validates continuation bytes and
// rejects code points outside the valid Unicode range.
func ReadRune(r io.ByteReader) (rune, int, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, 0, err
	}

	var cp rune
	var cont int
	switch {
	case b < 0x80:
		return rune(b), 1, nil
	case b&0xe0 == 0xc0:
		cp, cont = rune(b&0x1f), 1
	case b&0xf0 == 0xe0:
		cp, cont = rune(b&0x0f), 2
	case b&0xf8 == 0xf0:
		cp, cont = rune(b&0x07), 3
	default:
		return 0, 0, fmt.Errorf("invalid utf-8 initial byte %#02x", b)
	}

	size := cont + 1
	for ; cont > 0; cont-- {
		b, err = r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, 0, io.ErrUnexpectedEOF
			}
			return 0, 0, err
		}
		if b&0xc0 != 0x80 {
			return 0, 0, fmt.Errorf("invalid utf-8 continuation byte %#02x", b)
		}
		cp = cp<<6 | rune(b&0x3f)
	}

	if !utf8.ValidRune(cp) {
		return 0, 0, fmt.Errorf("invalid code point %#08x", cp)
	}
	return cp, size, nil
}

// ReadLine reads one line from r, including the terminating newline,
// without needing a push-back buffer. A carriage return not followed by a
// line feed is kept as part of the line. io.EOF after partial content
// returns that content without error.
func ReadLine(r io.ByteReader) (string, error) {
	var line strings.Builder
	for {
		c, _, err := ReadRune(r)
		if err != nil {
			if err == io.EOF && line.Len() > 0 {
				return line.String(), nil
			}
			return "", err
		}
		line.WriteRune(c)
		if c == '\n' {
			return line.String(), nil
		}
	}
}
