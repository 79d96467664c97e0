package bitstore

import (
	"math"
	"sync"

	"github.com/x448/float16"
)

// Float8 describes an 8-bit minifloat format with a sign bit, expBits
// exponent bits and 7-expBits mantissa bits. There are no infinities
// and a single NaN at code 0x80, so the negative-zero slot is not
// wasted.
//
// Decoding goes through a 256-entry table built at startup. Encoding
// goes through a 65536-entry table keyed by the IEEE half-precision
// encoding of the value, built lazily on first use.
type Float8 struct {
	name    string
	expBits int
	bias    int

	toFloat [256]float64

	halfOnce sync.Once
	fromHalf []uint8
}

// The two supported formats. E4M3 trades range for precision; E5M2
// keeps the half-precision exponent range at 2-bit precision.
var (
	E4M3 = newFloat8("e4m3float", 4, 8)
	E5M2 = newFloat8("e5m2float", 5, 16)
)

func newFloat8(name string, expBits, bias int) *Float8 {
	f := &Float8{name: name, expBits: expBits, bias: bias}
	mantBits := 7 - expBits
	for i := 0; i < 256; i++ {
		exp := i >> mantBits & (1<<expBits - 1)
		mant := i & (1<<mantBits - 1)
		var v float64
		if exp == 0 {
			// Subnormal, no implicit leading one.
			v = math.Ldexp(float64(mant), 1-bias-mantBits)
		} else {
			v = math.Ldexp(float64(mant|1<<mantBits), exp-bias-mantBits)
		}
		if i>>7 == 1 {
			v = -v
		}
		f.toFloat[i] = v
	}
	f.toFloat[0x80] = math.NaN()
	return f
}

// Name returns the conventional dtype name of the format.
func (f *Float8) Name() string { return f.name }

// Decode returns the value of an 8-bit code.
func (f *Float8) Decode(code uint8) float64 {
	return f.toFloat[code]
}

// Encode returns the code for v, rounding towards zero. Values beyond
// the format's range clamp to the largest-magnitude finite code, NaN
// encodes as 0x80, and negative values closer to zero than the
// smallest negative subnormal round up to positive zero.
func (f *Float8) Encode(v float64) uint8 {
	return f.EncodeHalf(float16.Fromfloat32(float32(v)).Bits())
}

// EncodeHalf returns the code for an IEEE half-precision bit pattern,
// a single table lookup.
func (f *Float8) EncodeHalf(bits uint16) uint8 {
	f.halfOnce.Do(f.buildHalfTable)
	return f.fromHalf[bits]
}

// slowEncode is the scan the fast table is built from. toFloat is
// monotonically increasing over 0x00..0x7f and decreasing over
// 0x81..0xff, so the first crossing pins the truncated code.
func (f *Float8) slowEncode(v float64) uint8 {
	if v >= 0 {
		for i := 1; i < 0x80; i++ {
			if v < f.toFloat[i] {
				return uint8(i - 1)
			}
		}
		return 0x7f
	}
	if v < 0 {
		if v > f.toFloat[0x81] {
			// No negative zero to truncate to.
			return 0x00
		}
		for i := 0x82; i < 0xff; i++ {
			if v > f.toFloat[i] {
				return uint8(i - 1)
			}
		}
		return 0xff
	}
	return 0x80
}

func (f *Float8) buildHalfTable() {
	t := make([]uint8, 1<<16)
	for i := range t {
		t[i] = f.slowEncode(float64(float16.Frombits(uint16(i)).Float32()))
	}
	f.fromHalf = t
}

// FromFloat8 encodes v as the 8-bit code of the given format.
func FromFloat8(v float64, format *Float8) *Store {
	return NewFromBytes([]byte{format.Encode(v)})
}

// Float8 interprets the whole 8-bit store as a minifloat of the given
// format.
func (s *Store) Float8(format *Float8) (float64, error) {
	if s.length != 8 {
		return 0, interpretErrf("%s values must be 8 bits long, not %d bits", format.name, s.length)
	}
	return format.Decode(s.ToBytes()[0]), nil
}
