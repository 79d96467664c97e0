/*
Package bitstore implements the bit-level core of a bitstring
manipulation library: an arbitrary-length bit container with dual
MSB0/LSB0 addressing, scalar codecs between bits and typed values, and
an extensible registry of named data formats.

We implement:

1. Store, an ordered sequence of bits constructed from bit literals,
raw bytes, copies of other stores, or zero-copy immutable views over
externally supplied buffers (including memory-mapped files). Stores
support indexing, Python-style slicing with negative indices and
steps, concatenation, bitwise combination, search, and in-place
mutation, in both addressing conventions.

2. Scalar codecs: overflow-checked fixed-width integers (big- and
little-endian), IEEE floats of 16, 32 and 64 bits, bfloat16, two 8-bit
floating-point formats, and the four exponential-Golomb variable-length
integer codes.

3. A dtype register mapping format names (and aliases) to small
capability records of optional setter/getter functions, open to runtime
registration, removal and replacement of formats, built-ins included.

# Addressing

Bits are stored MSB0: index 0 is the first bit in storage order.
The LSB0 convention (index 0 is the last stored bit) is provided by
coordinate translation, never by a second physical layout: index j in
LSB0 space is index length-1-j in MSB0 space, and an LSB0 slice
(start, stop, step) normalized against the length becomes the MSB0
slice (length-stop, length-start, step), with the stop bound treated
as unbounded when the flipped value is negative.

# Mutability

A Store is either mutable or frozen. Views over external data are
always frozen and additionally marked as modified, which means they
must never be resized in place. Frozen stores may be shared freely
across goroutines for reading; nothing in this package locks, and
mutation requires external synchronization, as does changing a
Register that is visible to multiple goroutines.

# Interchange

The only byte-level boundary is ToBytes / NewFromBytes: the bit
sequence packed into the minimal number of bytes, with unused bits of
the final byte zeroed. MarshalBinary and the msgpack encoding wrap the
same packing in a (bit length, bytes) envelope.
*/
package bitstore
