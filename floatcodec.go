package bitstore

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

// FromFloat encodes an IEEE binary float of 16, 32 or 64 bits. A value
// too large in magnitude for the requested width becomes the infinity
// of matching sign, mirroring how native 64-bit overflow behaves; this
// is deliberate and not an error.
func FromFloat(f float64, length int, bigEndian bool) (*Store, error) {
	var b []byte
	switch length {
	case 16:
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], float16.Fromfloat32(float32(f)).Bits())
		b = buf[:]
	case 32:
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], math.Float32bits(float32(f)))
		b = buf[:]
	case 64:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(f))
		b = buf[:]
	default:
		return nil, creationErrf("floats can be 16, 32 or 64 bits long, not %d", length)
	}
	if !bigEndian {
		reverseBytes(b)
	}
	return NewFromBytes(b), nil
}

// Float interprets the whole store as an IEEE binary float of 16, 32
// or 64 bits.
func (s *Store) Float(bigEndian bool) (float64, error) {
	b := s.ToBytes()
	if !bigEndian {
		reverseBytes(b)
	}
	switch s.length {
	case 16:
		return float64(float16.Frombits(binary.BigEndian.Uint16(b)).Float32()), nil
	case 32:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(b))), nil
	case 64:
		return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
	default:
		return 0, interpretErrf("floats can be 16, 32 or 64 bits long, not %d", s.length)
	}
}

// FromBFloat encodes the top 16 bits of the 32-bit IEEE encoding of f
// (the bfloat16 format). Overflow saturates to infinity.
func FromBFloat(f float64, bigEndian bool) *Store {
	bits := math.Float32bits(float32(f))
	var b [2]byte
	if bigEndian {
		b[0] = byte(bits >> 24)
		b[1] = byte(bits >> 16)
	} else {
		// The two interesting bytes of the little-endian float32
		// packing, in its byte order.
		b[0] = byte(bits >> 16)
		b[1] = byte(bits >> 24)
	}
	return NewFromBytes(b[:])
}

// BFloat interprets the whole 16-bit store as a bfloat16: the bits are
// zero-extended to a 32-bit IEEE float.
func (s *Store) BFloat(bigEndian bool) (float64, error) {
	if s.length != 16 {
		return 0, interpretErrf("bfloats must be 16 bits long, not %d bits", s.length)
	}
	b := s.ToBytes()
	var bits uint32
	if bigEndian {
		bits = uint32(b[0])<<24 | uint32(b[1])<<16
	} else {
		bits = uint32(b[1])<<24 | uint32(b[0])<<16
	}
	return float64(math.Float32frombits(bits)), nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
