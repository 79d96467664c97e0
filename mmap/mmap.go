// Package mmap memory-maps files read-only so that their contents can
// back zero-copy bit views without loading the whole file into the Go
// heap.
package mmap

import (
	"os"
)

type Options uint

const (
	// SequentialAccess is a hint requesting aggressive read-ahead,
	// useful when a mapped buffer is scanned front to back.
	// Incompatible with RandomAccess. Maps to MADV_SEQUENTIAL on Unix.
	SequentialAccess Options = 1 << 0

	// RandomAccess is a hint that read ahead is less useful than
	// normally, e.g. when bits are sliced out of arbitrary offsets.
	// Incompatible with SequentialAccess. Maps to MADV_RANDOM on Unix.
	RandomAccess Options = 1 << 1

	// Prefault is a hint requesting the entire file to be loaded in
	// memory for fastest access. Maps to MAP_POPULATE on Linux.
	Prefault Options = 1 << 2
)

func (o Options) Has(v Options) bool {
	return o&v != 0
}

// Map memory-maps the first size bytes of f read-only. The returned
// slice must not be written to, and stays valid after f is closed.
func Map(f *os.File, size int, opt Options) ([]byte, error) {
	return mmap(f, size, opt)
}

// Unmap unmaps the given slice from memory. The slice must have been
// returned by Map.
func Unmap(b []byte) error {
	return munmap(b)
}
