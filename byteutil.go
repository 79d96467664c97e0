package bitstore

import (
	"encoding/binary"
	"math"
)

func ensureCapacity(buf []byte, minCap int) []byte {
	c := cap(buf)
	if minCap > c {
		if c < 16 {
			c = 16
		}
		for minCap > c {
			c <<= 1
		}
		old := buf
		buf = make([]byte, len(old), c)
		copy(buf, old)
	}
	return buf
}

func grow(buf []byte, n int) (int, []byte) {
	off := len(buf)
	newLen := off + n
	buf = ensureCapacity(buf, newLen)
	return off, buf[:newLen]
}

func appendRaw(buf []byte, chunk []byte) []byte {
	n := len(chunk)
	off, buf := grow(buf, n)
	copy(buf[off:], chunk)
	return buf
}

func appendUvarint(buf []byte, v uint64) []byte {
	off, buf := grow(buf, binary.MaxVarintLen64)
	off += binary.PutUvarint(buf[off:], v)
	return buf[:off]
}

// wireDecoder consumes the (bit length, packed bytes) envelope used by
// MarshalBinary. Errors carry the offset of the violation.
type wireDecoder struct {
	orig []byte
	buf  []byte
}

func makeWireDecoder(buf []byte) wireDecoder {
	return wireDecoder{buf, buf}
}

func (d *wireDecoder) off() int {
	return len(d.orig) - len(d.buf)
}

func (d *wireDecoder) uvarint() (uint64, error) {
	v, n := binary.Uvarint(d.buf)
	if n <= 0 {
		return 0, creationErrf("invalid uvarint at offset %d", d.off())
	}
	d.buf = d.buf[n:]
	return v, nil
}

func (d *wireDecoder) uvarinti() (int, error) {
	v, err := d.uvarint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt {
		return 0, creationErrf("value does not fit into int at offset %d: %d", d.off(), v)
	}
	return int(v), nil
}

func (d *wireDecoder) raw(n int) ([]byte, error) {
	if len(d.buf) < n {
		return nil, creationErrf("not enough data at offset %d: %d bytes remaining, %d wanted", d.off(), len(d.buf), n)
	}
	v := d.buf[:n]
	d.buf = d.buf[n:]
	return v, nil
}

func (d *wireDecoder) remaining() int {
	return len(d.buf)
}
