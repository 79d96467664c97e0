package bitstore

import (
	"math"
	mathbits "math/bits"
)

// FromUE encodes a non-negative integer as an unsigned
// exponential-Golomb code: floor(log2(i+1)) zero bits, a one bit, then
// the same number of bits holding i+1-2^leadingZeros.
func FromUE(i int64) (*Store, error) {
	if i < 0 {
		return nil, domainErrf("cannot use negative value %d for unsigned exponential-Golomb", i)
	}
	s := New()
	appendUE(s, uint64(i))
	return s, nil
}

// FromSE encodes a signed integer as a signed exponential-Golomb code:
// i maps to 2i-1 when positive and to -2i otherwise, then ue applies.
func FromSE(i int64) (*Store, error) {
	var u uint64
	if i > 0 {
		if i > 1<<62 {
			return nil, rangeErrf("%d is too large for signed exponential-Golomb; the allowed range is [%d, %d]", i, -(int64(1)<<62)+1, int64(1)<<62)
		}
		u = uint64(i)*2 - 1
	} else {
		if i <= -(1 << 62) {
			return nil, rangeErrf("%d is too small for signed exponential-Golomb; the allowed range is [%d, %d]", i, -(int64(1)<<62)+1, int64(1)<<62)
		}
		u = uint64(-i) * 2
	}
	s := New()
	appendUE(s, u)
	return s, nil
}

// FromUIE encodes a non-negative integer as an unsigned interleaved
// exponential-Golomb code: zero encodes as a lone one bit; otherwise
// each binary digit of i+1 below the leading one is preceded by a zero
// bit, and a final one bit terminates the code.
func FromUIE(i int64) (*Store, error) {
	if i < 0 {
		return nil, domainErrf("cannot use negative value %d for unsigned interleaved exponential-Golomb", i)
	}
	s := New()
	appendUIE(s, uint64(i))
	return s, nil
}

// FromSIE encodes a signed integer as a signed interleaved
// exponential-Golomb code: zero encodes as a lone one bit; otherwise
// the uie code of the magnitude is followed by a sign bit, one for
// negative.
func FromSIE(i int64) (*Store, error) {
	if i == 0 {
		return mustFromBits("1"), nil
	}
	if i == math.MinInt64 {
		return nil, rangeErrf("%d is too small for signed interleaved exponential-Golomb", i)
	}
	var m uint64
	if i < 0 {
		m = uint64(-i)
	} else {
		m = uint64(i)
	}
	s := New()
	appendUIE(s, m)
	s.appendBit(i < 0)
	return s, nil
}

func appendUE(s *Store, u uint64) {
	if u == 0 {
		s.appendBit(true)
		return
	}
	lz := mathbits.Len64(u+1) - 1
	rem := u + 1 - 1<<uint(lz)
	for k := 0; k < lz; k++ {
		s.appendBit(false)
	}
	s.appendBit(true)
	for k := lz - 1; k >= 0; k-- {
		s.appendBit(rem>>uint(k)&1 == 1)
	}
}

func appendUIE(s *Store, u uint64) {
	if u == 0 {
		s.appendBit(true)
		return
	}
	d := u + 1
	for k := mathbits.Len64(d) - 2; k >= 0; k-- {
		s.appendBit(false)
		s.appendBit(d>>uint(k)&1 == 1)
	}
	s.appendBit(true)
}

// ReadUE decodes one unsigned exponential-Golomb code starting at bit
// pos, returning the value and the position just past the code.
// Running out of bits before the code completes is ErrParse.
func ReadUE(s *Store, pos int) (int64, int, error) {
	lz := 0
	p := pos
	for {
		if p >= s.length {
			return 0, 0, parseErrf("ran out of bits reading an exponential-Golomb code")
		}
		if s.bit(p) {
			p++
			break
		}
		lz++
		p++
	}
	if lz > 63 {
		return 0, 0, parseErrf("exponential-Golomb code does not fit a 64-bit signed integer")
	}
	if p+lz > s.length {
		return 0, 0, parseErrf("ran out of bits reading an exponential-Golomb code")
	}
	var rem uint64
	for k := 0; k < lz; k++ {
		rem <<= 1
		if s.bit(p + k) {
			rem |= 1
		}
	}
	v := uint64(1)<<uint(lz) - 1 + rem
	if v > math.MaxInt64 {
		return 0, 0, parseErrf("exponential-Golomb code does not fit a 64-bit signed integer")
	}
	return int64(v), p + lz, nil
}

// ReadSE decodes one signed exponential-Golomb code starting at pos.
func ReadSE(s *Store, pos int) (int64, int, error) {
	u, np, err := ReadUE(s, pos)
	if err != nil {
		return 0, 0, err
	}
	if u&1 == 1 {
		return (u + 1) / 2, np, nil
	}
	return -(u / 2), np, nil
}

// ReadUIE decodes one unsigned interleaved exponential-Golomb code
// starting at pos.
func ReadUIE(s *Store, pos int) (int64, int, error) {
	v := uint64(1)
	p := pos
	for {
		if p >= s.length {
			return 0, 0, parseErrf("ran out of bits reading an interleaved exponential-Golomb code")
		}
		if s.bit(p) {
			p++
			break
		}
		p++
		if p >= s.length {
			return 0, 0, parseErrf("ran out of bits reading an interleaved exponential-Golomb code")
		}
		if v > 1<<62 {
			return 0, 0, parseErrf("interleaved exponential-Golomb code does not fit a 64-bit signed integer")
		}
		v <<= 1
		if s.bit(p) {
			v |= 1
		}
		p++
	}
	if v-1 > math.MaxInt64 {
		return 0, 0, parseErrf("interleaved exponential-Golomb code does not fit a 64-bit signed integer")
	}
	return int64(v - 1), p, nil
}

// ReadSIE decodes one signed interleaved exponential-Golomb code
// starting at pos. A missing sign bit after a nonzero magnitude is
// ErrParse.
func ReadSIE(s *Store, pos int) (int64, int, error) {
	m, p, err := ReadUIE(s, pos)
	if err != nil {
		return 0, 0, err
	}
	if m == 0 {
		return 0, p, nil
	}
	if p >= s.length {
		return 0, 0, parseErrf("ran out of bits reading the sign of an interleaved exponential-Golomb code")
	}
	neg := s.bit(p)
	p++
	if neg {
		return -m, p, nil
	}
	return m, p, nil
}

// UE interprets the whole store as a single unsigned
// exponential-Golomb code.
func (s *Store) UE() (int64, error) {
	return s.wholeCode(ReadUE)
}

// SE interprets the whole store as a single signed exponential-Golomb
// code.
func (s *Store) SE() (int64, error) {
	return s.wholeCode(ReadSE)
}

// UIE interprets the whole store as a single unsigned interleaved
// exponential-Golomb code.
func (s *Store) UIE() (int64, error) {
	return s.wholeCode(ReadUIE)
}

// SIE interprets the whole store as a single signed interleaved
// exponential-Golomb code.
func (s *Store) SIE() (int64, error) {
	return s.wholeCode(ReadSIE)
}

func (s *Store) wholeCode(read func(*Store, int) (int64, int, error)) (int64, error) {
	v, np, err := read(s, 0)
	if err != nil {
		return 0, err
	}
	if np != s.length {
		return 0, interpretErrf("bitstring is not a single exponential-Golomb code: %d of %d bits used", np, s.length)
	}
	return v, nil
}
