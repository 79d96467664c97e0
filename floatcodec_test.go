package bitstore

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestFloatRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1.5, 0.1, 3.14159e10, -2.5e-10, math.Inf(1)} {
		for _, length := range []int{32, 64} {
			for _, be := range []bool{true, false} {
				s := must(FromFloat(v, length, be))
				if s.Len() != length {
					t.Fatalf("Len = %v, wanted %v", s.Len(), length)
				}
				got := must(s.Float(be))
				want := v
				if length == 32 {
					want = float64(float32(v))
				}
				if got != want {
					t.Fatalf("Float(%v, %d bits, be=%v) = %v, wanted %v", v, length, be, got, want)
				}
			}
		}
	}
}

func TestFloat16(t *testing.T) {
	s := must(FromFloat(1.5, 16, true))
	if got := s.ToBytes(); !bytes.Equal(got, []byte{0x3E, 0x00}) {
		t.Fatalf("ToBytes = %x, wanted 3e00", got)
	}
	if got := must(s.Float(true)); got != 1.5 {
		t.Fatalf("Float = %v, wanted 1.5", got)
	}

	le := must(FromFloat(1.5, 16, false))
	if got := le.ToBytes(); !bytes.Equal(got, []byte{0x00, 0x3E}) {
		t.Fatalf("ToBytes = %x, wanted 003e", got)
	}
	if got := must(le.Float(false)); got != 1.5 {
		t.Fatalf("Float = %v, wanted 1.5", got)
	}
}

func TestFloatOverflowSaturatesToInf(t *testing.T) {
	s := must(FromFloat(1e40, 32, true))
	if got := must(s.Float(true)); !math.IsInf(got, 1) {
		t.Fatalf("Float = %v, wanted +Inf", got)
	}
	s = must(FromFloat(-1e10, 16, true))
	if got := must(s.Float(true)); !math.IsInf(got, -1) {
		t.Fatalf("Float = %v, wanted -Inf", got)
	}
}

func TestFloatNaN(t *testing.T) {
	s := must(FromFloat(math.NaN(), 64, true))
	if got := must(s.Float(true)); !math.IsNaN(got) {
		t.Fatalf("Float = %v, wanted NaN", got)
	}
}

func TestFloatLengthErrors(t *testing.T) {
	if _, err := FromFloat(1, 8, true); !errors.Is(err, ErrCreation) {
		t.Fatalf("FromFloat length 8 = %v, wanted ErrCreation", err)
	}
	s := must(FromUint(0, 24))
	if _, err := s.Float(true); !errors.Is(err, ErrInterpret) {
		t.Fatalf("24-bit Float = %v, wanted ErrInterpret", err)
	}
}

func TestBFloat(t *testing.T) {
	s := FromBFloat(1.0, true)
	if got := s.ToBytes(); !bytes.Equal(got, []byte{0x3F, 0x80}) {
		t.Fatalf("ToBytes = %x, wanted 3f80", got)
	}
	if got := must(s.BFloat(true)); got != 1.0 {
		t.Fatalf("BFloat = %v, wanted 1", got)
	}

	le := FromBFloat(1.0, false)
	if got := le.ToBytes(); !bytes.Equal(got, []byte{0x80, 0x3F}) {
		t.Fatalf("ToBytes = %x, wanted 803f", got)
	}
	if got := must(le.BFloat(false)); got != 1.0 {
		t.Fatalf("BFloat = %v, wanted 1", got)
	}

	if got := must(FromBFloat(-2.5, true).BFloat(true)); got != -2.5 {
		t.Fatalf("BFloat = %v, wanted -2.5", got)
	}
}

func TestBFloatLength(t *testing.T) {
	s := must(FromUint(0, 8))
	if _, err := s.BFloat(true); !errors.Is(err, ErrInterpret) {
		t.Fatalf("8-bit BFloat = %v, wanted ErrInterpret", err)
	}
}
