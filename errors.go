package bitstore

import (
	"errors"
	"fmt"
)

// The error kinds raised by this package. Every returned error wraps
// exactly one of these, so callers can dispatch with errors.Is.
var (
	// ErrCreation covers malformed literal text, negative or
	// over-capacity view lengths, fixed-length mismatches and unknown
	// value types passed to a dtype setter.
	ErrCreation = errors.New("bitstore: creation error")

	// ErrRange is an integer value outside the representable span for
	// the requested signed/unsigned width.
	ErrRange = errors.New("bitstore: value out of range")

	// ErrDomain is a negative input to an unsigned Golomb variant.
	ErrDomain = errors.New("bitstore: value outside domain")

	// ErrParse is a truncated or malformed variable-length code: the
	// bits ran out before the terminating marker.
	ErrParse = errors.New("bitstore: malformed code")

	// ErrNotFound is a lookup or removal of an unregistered dtype name.
	ErrNotFound = errors.New("bitstore: dtype not found")

	// ErrImmutable is a mutating operation on an immutable store.
	ErrImmutable = errors.New("bitstore: store is immutable")

	// ErrLengthMismatch is a bitwise combination (or extended-slice
	// assignment) of stores whose lengths differ.
	ErrLengthMismatch = errors.New("bitstore: length mismatch")

	// ErrInterpret is a getter invoked against a bit length
	// incompatible with its format.
	ErrInterpret = errors.New("bitstore: cannot interpret bits")
)

func creationErrf(format string, args ...any) error {
	return wrapErrf(ErrCreation, format, args...)
}

func rangeErrf(format string, args ...any) error {
	return wrapErrf(ErrRange, format, args...)
}

func domainErrf(format string, args ...any) error {
	return wrapErrf(ErrDomain, format, args...)
}

func parseErrf(format string, args ...any) error {
	return wrapErrf(ErrParse, format, args...)
}

func notFoundErrf(format string, args ...any) error {
	return wrapErrf(ErrNotFound, format, args...)
}

func immutableErrf(format string, args ...any) error {
	return wrapErrf(ErrImmutable, format, args...)
}

func lengthMismatchErrf(format string, args ...any) error {
	return wrapErrf(ErrLengthMismatch, format, args...)
}

func interpretErrf(format string, args ...any) error {
	return wrapErrf(ErrInterpret, format, args...)
}

func wrapErrf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
