package bitstore

import "math"

// Open marks an absent slice bound.
const Open = math.MaxInt

// Slice selects bits the way Python slices do: negative Start/Stop
// count from the end, Step may be negative for reverse traversal, and
// Open stands for an absent bound. A zero Step is treated as 1.
//
// Prefer the constructors below; the zero value of Slice selects
// nothing (start 0, stop 0).
type Slice struct {
	Start, Stop, Step int
}

// All selects every bit.
func All() Slice {
	return Slice{Open, Open, 1}
}

// Range selects bits [start, stop) with step 1.
func Range(start, stop int) Slice {
	return Slice{start, stop, 1}
}

// RangeStep selects every step-th bit of [start, stop).
func RangeStep(start, stop, step int) Slice {
	return Slice{start, stop, step}
}

// From selects bits [start, end-of-store).
func From(start int) Slice {
	return Slice{start, Open, 1}
}

// Upto selects bits [0, stop).
func Upto(stop int) Slice {
	return Slice{Open, stop, 1}
}

// indices normalizes the slice against a store of the given length,
// following Python slice.indices semantics exactly: after this, for a
// positive step start/stop are within [0, length], and for a negative
// step within [-1, length-1], with stop exclusive in both cases.
func (sl Slice) indices(length int) (start, stop, step int) {
	step = sl.Step
	if step == 0 {
		step = 1
	}
	var lower, upper int
	if step < 0 {
		lower, upper = -1, length-1
	} else {
		lower, upper = 0, length
	}

	if sl.Start == Open {
		if step < 0 {
			start = upper
		} else {
			start = lower
		}
	} else {
		start = sl.Start
		if start < 0 {
			start += length
			if start < lower {
				start = lower
			}
		} else if start > upper {
			start = upper
		}
	}

	if sl.Stop == Open {
		if step < 0 {
			stop = lower
		} else {
			stop = upper
		}
	} else {
		stop = sl.Stop
		if stop < 0 {
			stop += length
			if stop < lower {
				stop = lower
			}
		} else if stop > upper {
			stop = upper
		}
	}
	return
}

// sliceCount returns the number of bits a normalized slice selects.
func sliceCount(start, stop, step int) int {
	if step > 0 {
		if stop > start {
			return (stop - start + step - 1) / step
		}
		return 0
	}
	if start > stop {
		return (start - stop - step - 1) / -step
	}
	return 0
}

// flipLSB0 translates an LSB0 slice into the equivalent MSB0 slice:
// (start, stop, step) normalized against length becomes
// (length-stop, length-start, step). A negative flipped stop denotes
// "to the beginning" after the coordinate flip and becomes Open.
func (sl Slice) flipLSB0(length int) Slice {
	start, stop, step := sl.indices(length)
	newStart := length - stop
	newStop := length - start
	if newStop < 0 {
		return Slice{newStart, Open, step}
	}
	return Slice{newStart, newStop, step}
}

// GetSlice returns a new mutable store holding the selected bits in
// traversal order (a negative step yields them reversed).
func (s *Store) GetSlice(sl Slice) *Store {
	start, stop, step := sl.indices(s.length)
	n := sliceCount(start, stop, step)
	out := New()
	if step == 1 {
		out.appendRange(s, start, stop)
		return out
	}
	i := start
	for k := 0; k < n; k++ {
		out.appendBit(s.bit(i))
		i += step
	}
	return out
}

// GetSliceLSB0 returns the bits selected by an LSB0 slice, routed
// through the coordinate flip before touching storage.
func (s *Store) GetSliceLSB0(sl Slice) *Store {
	return s.GetSlice(sl.flipLSB0(s.length))
}

// SetSlice assigns bits to a slice. With step 1 (or 0) the selected
// range is replaced by v, resizing the store as needed; with any other
// step, v must have exactly as many bits as the slice selects.
func (s *Store) SetSlice(sl Slice, v *Store) error {
	if err := s.checkMutable("assign to a slice of an immutable store"); err != nil {
		return err
	}
	start, stop, step := sl.indices(s.length)
	if step == 1 {
		if stop < start {
			stop = start
		}
		ns := New()
		ns.appendRange(s, 0, start)
		ns.appendRange(v, 0, v.length)
		ns.appendRange(s, stop, s.length)
		s.adopt(ns)
		return nil
	}
	n := sliceCount(start, stop, step)
	if v.length != n {
		return lengthMismatchErrf("cannot assign %d bits to an extended slice of %d bits", v.length, n)
	}
	i := start
	for k := 0; k < n; k++ {
		s.setBit(i, v.bit(k))
		i += step
	}
	return nil
}

// SetSliceAll sets every selected bit to b, keeping the length.
func (s *Store) SetSliceAll(sl Slice, b bool) error {
	if err := s.checkMutable("assign to a slice of an immutable store"); err != nil {
		return err
	}
	start, stop, step := sl.indices(s.length)
	n := sliceCount(start, stop, step)
	i := start
	for k := 0; k < n; k++ {
		s.setBit(i, b)
		i += step
	}
	return nil
}

// SetSliceLSB0 is SetSlice in LSB0 coordinates.
func (s *Store) SetSliceLSB0(sl Slice, v *Store) error {
	return s.SetSlice(sl.flipLSB0(s.length), v)
}

// SetSliceAllLSB0 is SetSliceAll in LSB0 coordinates.
func (s *Store) SetSliceAllLSB0(sl Slice, b bool) error {
	return s.SetSliceAll(sl.flipLSB0(s.length), b)
}

// DeleteSlice removes the selected bits, shortening the store.
func (s *Store) DeleteSlice(sl Slice) error {
	if err := s.checkMutable("delete a slice of an immutable store"); err != nil {
		return err
	}
	start, stop, step := sl.indices(s.length)
	n := sliceCount(start, stop, step)
	if n == 0 {
		return nil
	}
	if step == 1 {
		ns := New()
		ns.appendRange(s, 0, start)
		ns.appendRange(s, stop, s.length)
		s.adopt(ns)
		return nil
	}
	doomed := make([]bool, s.length)
	i := start
	for k := 0; k < n; k++ {
		doomed[i] = true
		i += step
	}
	ns := New()
	for i := 0; i < s.length; i++ {
		if !doomed[i] {
			ns.appendBit(s.bit(i))
		}
	}
	s.adopt(ns)
	return nil
}

// DeleteSliceLSB0 is DeleteSlice in LSB0 coordinates.
func (s *Store) DeleteSliceLSB0(sl Slice) error {
	return s.DeleteSlice(sl.flipLSB0(s.length))
}
