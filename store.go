package bitstore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"iter"
	"log/slog"
	mathbits "math/bits"

	"github.com/cespare/xxhash/v2"
)

// Store is an ordered sequence of bits.
//
// A mutable Store always owns its backing bytes, starts at bit offset
// zero, and keeps the unused bits of its final byte zeroed. Views
// created over external data (NewView, OpenFile) are frozen and marked
// modified: they may reference a buffer at an arbitrary bit offset and
// must never be resized in place.
type Store struct {
	data      []byte
	off       int // bit offset into data; nonzero only for views
	length    int
	immutable bool
	modified  bool
	source    string // originating file name etc., diagnostics only
}

// New returns an empty mutable store.
func New() *Store {
	return &Store{}
}

// NewFromBytes returns a mutable store holding a copy of the given
// bytes, 8 bits per byte in storage order.
func NewFromBytes(b []byte) *Store {
	return &Store{data: appendRaw(nil, b), length: len(b) * 8}
}

// NewView returns a frozen zero-copy view over length bits of buf
// starting at bit offset off. The buffer is shared, not copied; the
// caller must not mutate it while the view is alive.
func NewView(buf []byte, off, length int) (*Store, error) {
	if off < 0 {
		return nil, creationErrf("can't create a view with a negative bit offset %d", off)
	}
	if length < 0 {
		return nil, creationErrf("can't create a bitstring with a negative length")
	}
	if off+length > len(buf)*8 {
		return nil, creationErrf("can't create a bitstring with a length of %d from %d bits of data", length, len(buf)*8-off)
	}
	return &Store{data: buf, off: off, length: length, immutable: true, modified: true}, nil
}

func newZero(length int) *Store {
	return &Store{data: make([]byte, (length+7)>>3), length: length}
}

// mustFromBits builds a store from a trusted string of '0' and '1'.
func mustFromBits(bits string) *Store {
	s := New()
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			s.appendBit(false)
		case '1':
			s.appendBit(true)
		default:
			panic(fmt.Sprintf("bitstore: invalid bit character %q", bits[i]))
		}
	}
	return s
}

// Len returns the number of bits in the store.
func (s *Store) Len() int {
	return s.length
}

// Immutable reports whether the store is frozen.
func (s *Store) Immutable() bool {
	return s.immutable
}

// Modified reports whether the store is a restricted view (offset or
// truncated length, or backed by external data) that must not be
// resized in place. Modified implies Immutable.
func (s *Store) Modified() bool {
	return s.modified
}

// Source returns the originating name recorded for diagnostics (e.g.
// the path of a mapped file), or "".
func (s *Store) Source() string {
	return s.source
}

// Freeze marks the store immutable and returns it. There is no thaw;
// use MutableCopy to obtain a mutable store again.
func (s *Store) Freeze() *Store {
	s.immutable = true
	return s
}

// bit returns bit i without bounds checking, view-aware.
func (s *Store) bit(i int) bool {
	p := s.off + i
	return s.data[p>>3]&(0x80>>uint(p&7)) != 0
}

// setBit writes bit i of a canonical mutable store.
func (s *Store) setBit(i int, b bool) {
	mask := byte(0x80) >> uint(i&7)
	if b {
		s.data[i>>3] |= mask
	} else {
		s.data[i>>3] &^= mask
	}
}

// appendBit extends a canonical mutable store by one bit.
func (s *Store) appendBit(b bool) {
	if s.length&7 == 0 {
		s.data = append(s.data, 0)
	}
	if b {
		s.data[s.length>>3] |= 0x80 >> uint(s.length&7)
	}
	s.length++
}

// appendRange appends bits [from, to) of src.
func (s *Store) appendRange(src *Store, from, to int) {
	for i := from; i < to; i++ {
		s.appendBit(src.bit(i))
	}
}

// adopt replaces the contents of s with those of a rebuilt store.
func (s *Store) adopt(other *Store) {
	s.data = other.data
	s.off = 0
	s.length = other.length
}

func (s *Store) checkIndex(i int) {
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("bitstore: bit index %d out of range [0, %d)", i, s.length))
	}
}

func (s *Store) checkMutable(op string) error {
	if s.immutable {
		return immutableErrf("cannot %s", op)
	}
	return nil
}

// Bit returns bit i in MSB0 order. It panics if i is out of range.
func (s *Store) Bit(i int) bool {
	s.checkIndex(i)
	return s.bit(i)
}

// BitLSB0 returns bit j in LSB0 order, i.e. bit length-1-j in storage
// order. It panics if j is out of range.
func (s *Store) BitLSB0(j int) bool {
	s.checkIndex(j)
	return s.bit(s.length - 1 - j)
}

// Set writes bit i in MSB0 order. It panics if i is out of range.
func (s *Store) Set(i int, b bool) error {
	if err := s.checkMutable("set a bit of an immutable store"); err != nil {
		return err
	}
	s.checkIndex(i)
	s.setBit(i, b)
	return nil
}

// SetLSB0 writes bit j in LSB0 order.
func (s *Store) SetLSB0(j int, b bool) error {
	if err := s.checkMutable("set a bit of an immutable store"); err != nil {
		return err
	}
	s.checkIndex(j)
	s.setBit(s.length-1-j, b)
	return nil
}

// Invert flips bit i in MSB0 order.
func (s *Store) Invert(i int) error {
	if err := s.checkMutable("invert a bit of an immutable store"); err != nil {
		return err
	}
	s.checkIndex(i)
	s.setBit(i, !s.bit(i))
	return nil
}

// InvertLSB0 flips bit j in LSB0 order.
func (s *Store) InvertLSB0(j int) error {
	if err := s.checkMutable("invert a bit of an immutable store"); err != nil {
		return err
	}
	s.checkIndex(j)
	i := s.length - 1 - j
	s.setBit(i, !s.bit(i))
	return nil
}

// InvertAll flips every bit.
func (s *Store) InvertAll() error {
	if err := s.checkMutable("invert an immutable store"); err != nil {
		return err
	}
	for i := range s.data {
		s.data[i] = ^s.data[i]
	}
	s.maskTail()
	return nil
}

// SetAll sets every bit to b, keeping the length.
func (s *Store) SetAll(b bool) error {
	if err := s.checkMutable("fill an immutable store"); err != nil {
		return err
	}
	var v byte
	if b {
		v = 0xFF
	}
	for i := range s.data {
		s.data[i] = v
	}
	s.maskTail()
	return nil
}

// Clear removes all bits.
func (s *Store) Clear() error {
	if err := s.checkMutable("clear an immutable store"); err != nil {
		return err
	}
	s.data = s.data[:0]
	s.length = 0
	return nil
}

// Reverse reverses the bit order in place.
func (s *Store) Reverse() error {
	if err := s.checkMutable("reverse an immutable store"); err != nil {
		return err
	}
	for i, j := 0, s.length-1; i < j; i, j = i+1, j-1 {
		bi, bj := s.bit(i), s.bit(j)
		s.setBit(i, bj)
		s.setBit(j, bi)
	}
	return nil
}

// DeleteBit removes bit i in MSB0 order, shortening the store by one.
// It panics if i is out of range.
func (s *Store) DeleteBit(i int) error {
	if err := s.checkMutable("delete a bit of an immutable store"); err != nil {
		return err
	}
	s.checkIndex(i)
	return s.DeleteSlice(Range(i, i+1))
}

// DeleteBitLSB0 removes bit j in LSB0 order.
func (s *Store) DeleteBitLSB0(j int) error {
	if err := s.checkMutable("delete a bit of an immutable store"); err != nil {
		return err
	}
	s.checkIndex(j)
	i := s.length - 1 - j
	return s.DeleteSlice(Range(i, i+1))
}

// maskTail zeroes the unused bits of the final byte.
func (s *Store) maskTail() {
	if n := len(s.data); n > 0 {
		if pad := uint(n*8 - s.length); pad > 0 {
			s.data[n-1] &^= byte(1<<pad) - 1
		}
	}
}

// ToBytes returns the minimal byte packing of the bit sequence, with
// the unused bits of the final byte zeroed.
func (s *Store) ToBytes() []byte {
	n := (s.length + 7) >> 3
	out := make([]byte, n)
	if s.off&7 == 0 {
		copy(out, s.data[s.off>>3:])
	} else {
		r := uint(s.off & 7)
		base := s.off >> 3
		for i := 0; i < n; i++ {
			b := s.data[base+i] << r
			if base+i+1 < len(s.data) {
				b |= s.data[base+i+1] >> (8 - r)
			}
			out[i] = b
		}
	}
	if n > 0 {
		if pad := uint(n*8 - s.length); pad > 0 {
			out[n-1] &^= byte(1<<pad) - 1
		}
	}
	return out
}

// Count returns the number of bits equal to b.
func (s *Store) Count(b bool) int {
	ones := 0
	for _, by := range s.ToBytes() {
		ones += mathbits.OnesCount8(by)
	}
	if b {
		return ones
	}
	return s.length - ones
}

// AnySet reports whether any bit is set.
func (s *Store) AnySet() bool {
	for _, by := range s.ToBytes() {
		if by != 0 {
			return true
		}
	}
	return false
}

// AllSet reports whether every bit is set. It is true for an empty
// store.
func (s *Store) AllSet() bool {
	return s.Count(true) == s.length
}

// Bits iterates over the bits in MSB0 order.
func (s *Store) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(s.bit(i)) {
				return
			}
		}
	}
}

// Copy returns the store itself when it is frozen (nothing can mutate
// it, so sharing is safe), and a deep mutable copy otherwise.
func (s *Store) Copy() *Store {
	if s.immutable {
		return s
	}
	return s.MutableCopy()
}

// MutableCopy always returns a deep, canonical, mutable copy.
func (s *Store) MutableCopy() *Store {
	return &Store{data: s.ToBytes(), length: s.length}
}

// Equal reports whether the two stores hold the same bit sequence.
func (s *Store) Equal(other *Store) bool {
	return s.length == other.length && bytes.Equal(s.ToBytes(), other.ToBytes())
}

// Hash returns a stable 64-bit hash of (length, bits), usable as a map
// key by value types built on top of the store.
func (s *Store) Hash() uint64 {
	var hdr [8]byte
	binary.BigEndian.PutUint64(hdr[:], uint64(s.length))
	d := xxhash.New()
	_, _ = d.Write(hdr[:])
	_, _ = d.Write(s.ToBytes())
	return d.Sum64()
}

func (s *Store) String() string {
	if s.length <= 64 {
		return "0b" + s.Bin()
	}
	b := s.ToBytes()
	if len(b) > 16 {
		b = b[:16]
	}
	return fmt.Sprintf("<%d bits: %s...>", s.length, hexstr(b))
}

// LogValue implements slog.LogValuer with a bounded preview of the
// contents, for diagnostics.
func (s *Store) LogValue() slog.Value {
	b := s.ToBytes()
	const previewLen = 16
	if len(b) > previewLen {
		b = b[:previewLen]
	}
	attrs := []slog.Attr{
		slog.Int("len", s.length),
		hexAttr("bits", b),
	}
	if s.source != "" {
		attrs = append(attrs, slog.String("source", s.source))
	}
	return slog.GroupValue(attrs...)
}
