package bitstore

// Concat returns a new mutable store holding the bits of s followed by
// the bits of other. Lengths always add up; nothing is truncated.
func (s *Store) Concat(other *Store) *Store {
	out := New()
	out.appendRange(s, 0, s.length)
	out.appendRange(other, 0, other.length)
	return out
}

// Append extends s in place with the bits of other.
func (s *Store) Append(other *Store) error {
	if err := s.checkMutable("append to an immutable store"); err != nil {
		return err
	}
	if other == s {
		other = s.MutableCopy()
	}
	s.appendRange(other, 0, other.length)
	return nil
}

// And returns the bitwise AND of two stores of equal length.
func (s *Store) And(other *Store) (*Store, error) {
	return s.combine(other, func(a, b byte) byte { return a & b })
}

// Or returns the bitwise OR of two stores of equal length.
func (s *Store) Or(other *Store) (*Store, error) {
	return s.combine(other, func(a, b byte) byte { return a | b })
}

// Xor returns the bitwise XOR of two stores of equal length.
func (s *Store) Xor(other *Store) (*Store, error) {
	return s.combine(other, func(a, b byte) byte { return a ^ b })
}

// AndInPlace replaces s with s AND other.
func (s *Store) AndInPlace(other *Store) error {
	return s.combineInPlace(other, func(a, b byte) byte { return a & b })
}

// OrInPlace replaces s with s OR other.
func (s *Store) OrInPlace(other *Store) error {
	return s.combineInPlace(other, func(a, b byte) byte { return a | b })
}

// XorInPlace replaces s with s XOR other.
func (s *Store) XorInPlace(other *Store) error {
	return s.combineInPlace(other, func(a, b byte) byte { return a ^ b })
}

func (s *Store) combine(other *Store, op func(a, b byte) byte) (*Store, error) {
	if s.length != other.length {
		return nil, lengthMismatchErrf("cannot combine stores of %d and %d bits", s.length, other.length)
	}
	a := s.ToBytes()
	b := other.ToBytes()
	for i := range a {
		a[i] = op(a[i], b[i])
	}
	return &Store{data: a, length: s.length}, nil
}

func (s *Store) combineInPlace(other *Store, op func(a, b byte) byte) error {
	if err := s.checkMutable("combine into an immutable store"); err != nil {
		return err
	}
	if s.length != other.length {
		return lengthMismatchErrf("cannot combine stores of %d and %d bits", s.length, other.length)
	}
	b := other.ToBytes()
	for i := range s.data {
		s.data[i] = op(s.data[i], b[i])
	}
	s.maskTail()
	return nil
}
