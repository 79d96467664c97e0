package bitstore

import (
	"strings"
)

// tidyLiteral lowercases a literal and strips whitespace and
// underscores, which are allowed anywhere as digit separators.
func tidyLiteral(s string) string {
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, "_", "")
	return strings.ToLower(s)
}

// FromBin builds a store from a binary literal such as "0b1010" or
// "1010_0011". Case, whitespace and underscores are ignored; the
// prefix is optional.
func FromBin(lit string) (*Store, error) {
	t := strings.TrimPrefix(tidyLiteral(lit), "0b")
	s := New()
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '0':
			s.appendBit(false)
		case '1':
			s.appendBit(true)
		default:
			return nil, creationErrf("invalid character %q in bin initialiser %q", t[i], lit)
		}
	}
	return s, nil
}

// FromHex builds a store from a hex literal, 4 bits per digit.
func FromHex(lit string) (*Store, error) {
	t := strings.TrimPrefix(tidyLiteral(lit), "0x")
	s := New()
	for i := 0; i < len(t); i++ {
		v, ok := hexDigit(t[i])
		if !ok {
			return nil, creationErrf("invalid character %q in hex initialiser %q", t[i], lit)
		}
		for k := 3; k >= 0; k-- {
			s.appendBit(v>>uint(k)&1 == 1)
		}
	}
	return s, nil
}

// FromOct builds a store from an octal literal, 3 bits per digit.
func FromOct(lit string) (*Store, error) {
	t := strings.TrimPrefix(tidyLiteral(lit), "0o")
	s := New()
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c < '0' || c > '7' {
			return nil, creationErrf("invalid character %q in oct initialiser %q", c, lit)
		}
		v := c - '0'
		for k := 2; k >= 0; k-- {
			s.appendBit(v>>uint(k)&1 == 1)
		}
	}
	return s, nil
}

// literalFuncs dispatches on the conventional prefix. The prefix is
// matched case-sensitively; the digits after it are not.
var literalFuncs = map[string]func(string) (*Store, error){
	"0x": FromHex,
	"0X": FromHex,
	"0b": FromBin,
	"0B": FromBin,
	"0o": FromOct,
	"0O": FromOct,
}

// FromLiteral builds a frozen store from a prefixed literal such as
// "0x_fF" or "0B1010". Results are cached: identical literal strings
// share one immutable store.
func FromLiteral(lit string) (*Store, error) {
	if s, ok := literals.get(lit); ok {
		return s, nil
	}
	stripped := strings.Join(strings.Fields(lit), "")
	stripped = strings.ReplaceAll(stripped, "_", "")
	if len(stripped) < 2 {
		return nil, creationErrf("literal %q has no 0x/0b/0o prefix", lit)
	}
	f := literalFuncs[stripped[:2]]
	if f == nil {
		return nil, creationErrf("literal %q has no 0x/0b/0o prefix", lit)
	}
	s, err := f(stripped)
	if err != nil {
		return nil, err
	}
	s.Freeze()
	literals.put(lit, s)
	return s, nil
}

// Bin renders the bits as a string of '0' and '1'.
func (s *Store) Bin() string {
	var b strings.Builder
	b.Grow(s.length)
	for i := 0; i < s.length; i++ {
		if s.bit(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Hex renders the bits as lowercase hex digits. The length must be a
// multiple of 4 bits.
func (s *Store) Hex() (string, error) {
	if s.length%4 != 0 {
		return "", interpretErrf("cannot convert %d bits to hex unambiguously; not a multiple of 4", s.length)
	}
	const digits = "0123456789abcdef"
	var b strings.Builder
	b.Grow(s.length / 4)
	for i := 0; i < s.length; i += 4 {
		v := 0
		for k := 0; k < 4; k++ {
			v <<= 1
			if s.bit(i + k) {
				v |= 1
			}
		}
		b.WriteByte(digits[v])
	}
	return b.String(), nil
}

// Oct renders the bits as octal digits. The length must be a multiple
// of 3 bits.
func (s *Store) Oct() (string, error) {
	if s.length%3 != 0 {
		return "", interpretErrf("cannot convert %d bits to octal unambiguously; not a multiple of 3", s.length)
	}
	var b strings.Builder
	b.Grow(s.length / 3)
	for i := 0; i < s.length; i += 3 {
		v := byte(0)
		for k := 0; k < 3; k++ {
			v <<= 1
			if s.bit(i + k) {
				v |= 1
			}
		}
		b.WriteByte('0' + v)
	}
	return b.String(), nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
