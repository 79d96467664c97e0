package bitstore

// FromUint encodes an unsigned integer into length bits, big-endian.
// Lengths beyond 64 bits are zero-extended on the left.
func FromUint(v uint64, length int) (*Store, error) {
	if length <= 0 {
		return nil, creationErrf("a uint needs a bit length of at least one, got %d", length)
	}
	if length < 64 && v >= 1<<uint(length) {
		return nil, rangeErrf("%d is too large an unsigned integer for a bitstring of length %d; the allowed range is [0, %d]", v, length, uint64(1)<<uint(length)-1)
	}
	s := newZero(length)
	putBits(s, v, length)
	return s, nil
}

// FromInt encodes a signed integer into length bits, two's-complement
// big-endian. Lengths beyond 64 bits are sign-extended on the left.
func FromInt(v int64, length int) (*Store, error) {
	if length <= 0 {
		return nil, creationErrf("an int needs a bit length of at least one, got %d", length)
	}
	if length < 64 {
		min := int64(-1) << uint(length-1)
		max := -min - 1
		if v < min || v > max {
			return nil, rangeErrf("%d is too large a signed integer for a bitstring of length %d; the allowed range is [%d, %d]", v, length, min, max)
		}
	}
	s := newZero(length)
	putBits(s, uint64(v), length)
	if v < 0 {
		// Sign-extend beyond the low 64 bits.
		for i := 0; i < length-64; i++ {
			s.setBit(i, true)
		}
	}
	return s, nil
}

// putBits writes the low min(length, 64) bits of v into the tail of a
// zeroed store, most significant first.
func putBits(s *Store, v uint64, length int) {
	for k := length - 1; k >= 0 && length-1-k < 64; k-- {
		if v>>uint(length-1-k)&1 == 1 {
			s.setBit(k, true)
		}
	}
}

// FromUintLE encodes an unsigned integer little-endian. The length
// must be a whole number of bytes.
func FromUintLE(v uint64, length int) (*Store, error) {
	if length%8 != 0 {
		return nil, creationErrf("little-endian integers must be whole-byte; length %d is not a multiple of 8 bits", length)
	}
	s, err := FromUint(v, length)
	if err != nil {
		return nil, err
	}
	return reverseByteOrder(s), nil
}

// FromIntLE encodes a signed integer little-endian. The length must be
// a whole number of bytes.
func FromIntLE(v int64, length int) (*Store, error) {
	if length%8 != 0 {
		return nil, creationErrf("little-endian integers must be whole-byte; length %d is not a multiple of 8 bits", length)
	}
	s, err := FromInt(v, length)
	if err != nil {
		return nil, err
	}
	return reverseByteOrder(s), nil
}

func reverseByteOrder(s *Store) *Store {
	b := s.ToBytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return &Store{data: b, length: s.length}
}

// Uint interprets the whole store as a big-endian unsigned integer.
func (s *Store) Uint() (uint64, error) {
	if s.length == 0 {
		return 0, interpretErrf("cannot interpret an empty bitstring as an integer")
	}
	if s.length > 64 {
		return 0, interpretErrf("a %d-bit bitstring does not fit a 64-bit unsigned integer", s.length)
	}
	var v uint64
	for i := 0; i < s.length; i++ {
		v <<= 1
		if s.bit(i) {
			v |= 1
		}
	}
	return v, nil
}

// Int interprets the whole store as a big-endian two's-complement
// signed integer.
func (s *Store) Int() (int64, error) {
	v, err := s.Uint()
	if err != nil {
		return 0, err
	}
	if s.length < 64 && s.bit(0) {
		v |= ^uint64(0) << uint(s.length)
	}
	return int64(v), nil
}

// UintLE interprets the whole store as a little-endian unsigned
// integer. The length must be a whole number of bytes.
func (s *Store) UintLE() (uint64, error) {
	r, err := s.littleEndian()
	if err != nil {
		return 0, err
	}
	return r.Uint()
}

// IntLE interprets the whole store as a little-endian signed integer.
// The length must be a whole number of bytes.
func (s *Store) IntLE() (int64, error) {
	r, err := s.littleEndian()
	if err != nil {
		return 0, err
	}
	return r.Int()
}

func (s *Store) littleEndian() (*Store, error) {
	if s.length%8 != 0 {
		return nil, interpretErrf("little-endian interpretation needs a whole-byte bitstring, not %d bits", s.length)
	}
	return reverseByteOrder(s), nil
}
