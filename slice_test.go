package bitstore

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func TestGetSlice(t *testing.T) {
	s := mustFromBits("00011011")
	tests := []struct {
		sl   Slice
		want string
	}{
		{All(), "00011011"},
		{Range(2, 6), "0110"},
		{From(5), "011"},
		{Upto(3), "000"},
		{Range(-3, Open), "011"},
		{Range(Open, -6), "00"},
		{RangeStep(0, 8, 2), "0011"},
		{RangeStep(1, 8, 3), "011"},
		{RangeStep(Open, Open, -1), "11011000"},
		{RangeStep(6, 1, -2), "110"},
		{Range(5, 2), ""},
		{Range(100, 200), ""},
	}
	for _, tt := range tests {
		if got := s.GetSlice(tt.sl).Bin(); got != tt.want {
			t.Fatalf("GetSlice(%+v) = %q, wanted %q", tt.sl, got, tt.want)
		}
	}
}

func TestGetSliceLSB0(t *testing.T) {
	s := mustFromBits("00011011")
	tests := []struct {
		sl   Slice
		want string
	}{
		{Range(0, 4), "1011"},
		{Range(4, 8), "0001"},
		{From(6), "00"},
		{Upto(2), "11"},
		{All(), "00011011"},
	}
	for _, tt := range tests {
		if got := s.GetSliceLSB0(tt.sl).Bin(); got != tt.want {
			t.Fatalf("GetSliceLSB0(%+v) = %q, wanted %q", tt.sl, got, tt.want)
		}
	}
}

// For step 1 an LSB0 slice must select exactly the mirrored storage
// positions, presented in storage order. Checks the coordinate flip
// against a position-set reference on random inputs.
func TestGetSliceLSB0MirrorsStorage(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 1000; trial++ {
		length := rnd.Intn(40)
		s := New()
		for i := 0; i < length; i++ {
			s.appendBit(rnd.Intn(2) == 1)
		}
		sl := Slice{randBound(rnd, length), randBound(rnd, length), 1}

		a, b, _ := sl.indices(length)
		var ps []int
		for j := a; j < b; j++ {
			ps = append(ps, length-1-j)
		}
		sort.Ints(ps)
		var want strings.Builder
		for _, p := range ps {
			if s.Bit(p) {
				want.WriteByte('1')
			} else {
				want.WriteByte('0')
			}
		}

		if got := s.GetSliceLSB0(sl).Bin(); got != want.String() {
			t.Fatalf("length %d, slice %+v: GetSliceLSB0 = %q, wanted %q",
				length, sl, got, want.String())
		}
	}
}

// The flip must commute with GetSlice for every step, including the
// quirky negative ones.
func TestFlipComposition(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for trial := 0; trial < 1000; trial++ {
		length := rnd.Intn(30)
		s := New()
		for i := 0; i < length; i++ {
			s.appendBit(rnd.Intn(2) == 1)
		}
		step := rnd.Intn(7) - 3
		sl := Slice{randBound(rnd, length), randBound(rnd, length), step}
		got := s.GetSliceLSB0(sl).Bin()
		want := s.GetSlice(sl.flipLSB0(length)).Bin()
		if got != want {
			t.Fatalf("length %d, slice %+v: %q != %q", length, sl, got, want)
		}
	}
}

func randBound(rnd *rand.Rand, length int) int {
	if rnd.Intn(4) == 0 {
		return Open
	}
	return rnd.Intn(2*length+3) - length - 1
}

func TestSetSliceReplaces(t *testing.T) {
	s := mustFromBits("00000000")
	if err := s.SetSlice(Range(2, 4), mustFromBits("1111")); err != nil {
		t.Fatal(err)
	}
	if got := s.Bin(); got != "0011110000" {
		t.Fatalf("Bin = %v, wanted 0011110000", got)
	}
	if err := s.SetSlice(Range(0, 6), New()); err != nil {
		t.Fatal(err)
	}
	if got := s.Bin(); got != "0000" {
		t.Fatalf("Bin = %v, wanted 0000", got)
	}
}

func TestSetSliceExtended(t *testing.T) {
	s := mustFromBits("00000000")
	if err := s.SetSlice(RangeStep(0, 8, 2), mustFromBits("1111")); err != nil {
		t.Fatal(err)
	}
	if got := s.Bin(); got != "10101010" {
		t.Fatalf("Bin = %v, wanted 10101010", got)
	}
	err := s.SetSlice(RangeStep(0, 8, 2), mustFromBits("111"))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("short extended assignment = %v, wanted ErrLengthMismatch", err)
	}
}

func TestSetSliceAll(t *testing.T) {
	s := mustFromBits("00000000")
	if err := s.SetSliceAll(RangeStep(1, Open, 2), true); err != nil {
		t.Fatal(err)
	}
	if got := s.Bin(); got != "01010101" {
		t.Fatalf("Bin = %v, wanted 01010101", got)
	}
}

func TestSetSliceLSB0(t *testing.T) {
	s := mustFromBits("00000000")
	if err := s.SetSliceLSB0(Range(0, 4), mustFromBits("1011")); err != nil {
		t.Fatal(err)
	}
	if got := s.Bin(); got != "00001011" {
		t.Fatalf("Bin = %v, wanted 00001011", got)
	}
}

func TestDeleteSlice(t *testing.T) {
	s := mustFromBits("00011011")
	if err := s.DeleteSlice(Range(2, 5)); err != nil {
		t.Fatal(err)
	}
	if got := s.Bin(); got != "00011" {
		t.Fatalf("Bin = %v, wanted 00011", got)
	}

	s = mustFromBits("01010101")
	if err := s.DeleteSlice(RangeStep(0, 8, 2)); err != nil {
		t.Fatal(err)
	}
	if got := s.Bin(); got != "1111" {
		t.Fatalf("Bin = %v, wanted 1111", got)
	}

	s = mustFromBits("111")
	if err := s.DeleteSlice(Range(5, 9)); err != nil {
		t.Fatal(err)
	}
	if got := s.Bin(); got != "111" {
		t.Fatalf("out-of-range delete changed the store to %v", got)
	}
}

func TestDeleteSliceLSB0(t *testing.T) {
	s := mustFromBits("00011011")
	if err := s.DeleteSliceLSB0(Range(0, 3)); err != nil {
		t.Fatal(err)
	}
	if got := s.Bin(); got != "00011" {
		t.Fatalf("Bin = %v, wanted 00011", got)
	}
}

func TestSliceMutationsRejectImmutable(t *testing.T) {
	s := mustFromBits("1010").Freeze()
	if err := s.SetSlice(Range(0, 2), mustFromBits("11")); !errors.Is(err, ErrImmutable) {
		t.Fatalf("SetSlice = %v, wanted ErrImmutable", err)
	}
	if err := s.DeleteSlice(Range(0, 2)); !errors.Is(err, ErrImmutable) {
		t.Fatalf("DeleteSlice = %v, wanted ErrImmutable", err)
	}
	if err := s.SetSliceAll(All(), true); !errors.Is(err, ErrImmutable) {
		t.Fatalf("SetSliceAll = %v, wanted ErrImmutable", err)
	}
}
