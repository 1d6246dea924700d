package adttext

import (
	"bytes"
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/joshuapare/adtkit/pkg/ast"
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isIdentStart(c byte) bool { return isLetter(c) || c == '_' }

func isWordByte(c byte) bool { return isLetter(c) || isDigit(c) || c == '_' }

// scanWord returns the end of the run of word bytes starting at i.
func scanWord(data []byte, i int) int {
	for i < len(data) && isWordByte(data[i]) {
		i++
	}
	return i
}

// digitVal returns the value of a hex digit, or 16 for anything else.
func digitVal(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10
	}
	return 16
}

// parseInt decodes an integer literal. A "0x" prefix selects base 16,
// otherwise hexDefault picks between 16 and 10. One trailing 'L' marker
// is ignored. Literals wider than 64 bits fall back to big.Int.
func parseInt(word []byte, hexDefault bool) (ast.Int, bool) {
	word = bytes.TrimSuffix(word, []byte{longSuffix})
	base := uint64(10)
	if hexDefault {
		base = 16
	}
	if bytes.HasPrefix(word, []byte(hexPrefixLower)) || bytes.HasPrefix(word, []byte(hexPrefixUpper)) {
		base = 16
		word = word[len(hexPrefixLower):]
	}
	if len(word) == 0 {
		return ast.Int{}, false
	}

	var u uint64
	for _, c := range word {
		d := digitVal(c)
		if d >= base {
			return ast.Int{}, false
		}
		if u > (math.MaxUint64-d)/base {
			b, ok := new(big.Int).SetString(string(word), int(base))
			if !ok {
				return ast.Int{}, false
			}
			return ast.BigIntOf(b), true
		}
		u = u*base + d
	}
	return ast.IntOf(u), true
}

// findClosingQuote returns the index of the quote that ends the string
// opened at data[open], or -1. A quote preceded by an odd number of
// backslashes is escaped.
func findClosingQuote(data []byte, open int) int {
	for i := open + 1; i < len(data); i++ {
		j := bytes.IndexByte(data[i:], quote)
		if j < 0 {
			return -1
		}
		i += j
		n := 0
		for k := i - 1; k > open && data[k] == backslash; k-- {
			n++
		}
		if n%2 == 0 {
			return i
		}
	}
	return -1
}

type escapeError struct {
	at  int // offset of the backslash within the literal body
	msg string
}

var simpleEscapes = [256]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'v':  '\v',
}

// unescape decodes the body of a string literal. \xHH and octal escapes
// produce raw bytes, \u and \U produce UTF-8. Unknown escapes are kept as
// written and an escaped newline is dropped.
func unescape(raw []byte) (string, *escapeError) {
	i := bytes.IndexByte(raw, backslash)
	if i < 0 {
		return string(raw), nil
	}
	buf := make([]byte, 0, len(raw))
	buf = append(buf, raw[:i]...)
	for i < len(raw) {
		c := raw[i]
		if c != backslash {
			buf = append(buf, c)
			i++
			continue
		}
		if i+1 >= len(raw) {
			return "", &escapeError{i, "dangling backslash"}
		}
		e := raw[i+1]
		switch {
		case simpleEscapes[e] != 0:
			buf = append(buf, simpleEscapes[e])
			i += 2
		case e == '\n':
			i += 2
		case e == 'x':
			v, ok := hexRun(raw, i+2, 2)
			if !ok {
				return "", &escapeError{i, `truncated \xXX escape`}
			}
			buf = append(buf, byte(v))
			i += 4
		case e == 'u' || e == 'U':
			width := 4
			if e == 'U' {
				width = 8
			}
			v, ok := hexRun(raw, i+2, width)
			if !ok {
				return "", &escapeError{i, "truncated \\" + string(e) + " escape"}
			}
			if v > utf8.MaxRune {
				return "", &escapeError{i, "\\U escape out of range"}
			}
			buf = utf8.AppendRune(buf, rune(v))
			i += 2 + width
		case e >= '0' && e <= '7':
			v, j := uint64(0), i+1
			for j < len(raw) && j < i+4 && raw[j] >= '0' && raw[j] <= '7' {
				v = v*8 + uint64(raw[j]-'0')
				j++
			}
			if v < 256 {
				buf = append(buf, byte(v))
			} else {
				buf = utf8.AppendRune(buf, rune(v))
			}
			i = j
		default:
			buf = append(buf, backslash, e)
			i += 2
		}
	}
	return string(buf), nil
}

// hexRun reads exactly n hex digits starting at raw[at].
func hexRun(raw []byte, at, n int) (uint64, bool) {
	if at+n > len(raw) {
		return 0, false
	}
	var v uint64
	for _, c := range raw[at : at+n] {
		d := digitVal(c)
		if d > 15 {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}
