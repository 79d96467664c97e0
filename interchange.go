package bitstore

import (
	"encoding"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ encoding.BinaryMarshaler   = (*Store)(nil)
	_ encoding.BinaryUnmarshaler = (*Store)(nil)
	_ msgpack.CustomEncoder      = (*Store)(nil)
	_ msgpack.CustomDecoder      = (*Store)(nil)
)

// MarshalBinary encodes the store as a uvarint bit length followed by
// the packed bytes.
func (s *Store) MarshalBinary() ([]byte, error) {
	buf := appendUvarint(nil, uint64(s.length))
	buf = appendRaw(buf, s.ToBytes())
	return buf, nil
}

// UnmarshalBinary replaces the contents of a mutable store with the
// decoded bit sequence.
func (s *Store) UnmarshalBinary(data []byte) error {
	if err := s.checkMutable("unmarshal into an immutable store"); err != nil {
		return err
	}
	d := makeWireDecoder(data)
	length, err := d.uvarinti()
	if err != nil {
		return err
	}
	if length > math.MaxInt-7 {
		return creationErrf("bit length does not fit into int: %d", length)
	}
	raw, err := d.raw((length + 7) >> 3)
	if err != nil {
		return err
	}
	if d.remaining() != 0 {
		return creationErrf("%d trailing bytes at offset %d", d.remaining(), d.off())
	}
	s.data = appendRaw(nil, raw)
	s.off = 0
	s.length = length
	s.maskTail()
	return nil
}

// EncodeMsgpack encodes the store as a two-element form: the bit
// length and the packed bytes.
func (s *Store) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeUint64(uint64(s.length)); err != nil {
		return err
	}
	return enc.EncodeBytes(s.ToBytes())
}

// DecodeMsgpack replaces the contents of a mutable store with the
// decoded bit sequence.
func (s *Store) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := s.checkMutable("decode into an immutable store"); err != nil {
		return err
	}
	length, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	if length > math.MaxInt {
		return creationErrf("bit length does not fit into int: %d", length)
	}
	raw, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	if uint64(len(raw)) != (length+7)>>3 {
		return creationErrf("%d bytes cannot hold a bitstring of length %d", len(raw), length)
	}
	s.data = appendRaw(nil, raw)
	s.off = 0
	s.length = int(length)
	s.maskTail()
	return nil
}
