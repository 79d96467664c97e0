//go:build unix && !linux

package mmap

// MAP_POPULATE is Linux-only; the Prefault hint is a no-op elsewhere.
const mapPopulate = 0
