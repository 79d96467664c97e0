package bitstore

import (
	"fmt"
	"math"
	"os"

	"github.com/andreyvit/bitstore/mmap"
)

// OpenFile memory-maps path read-only and returns a frozen store
// viewing its bits, together with a close function releasing the
// mapping. The store must not be used after close is called.
func OpenFile(path string, opt mmap.Options) (s *Store, close func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("bitstore: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("bitstore: %w", err)
	}
	size := st.Size()
	if size > math.MaxInt/8 {
		return nil, nil, creationErrf("%s is too large to map: %d bytes", path, size)
	}
	if size == 0 {
		s := New().Freeze()
		s.modified = true
		s.source = path
		return s, func() error { return nil }, nil
	}

	data, err := mmap.Map(f, int(size), opt)
	if err != nil {
		return nil, nil, fmt.Errorf("bitstore: failed to map %s: %w", path, err)
	}
	s, err = NewView(data, 0, int(size)*8)
	if err != nil {
		_ = mmap.Unmap(data)
		return nil, nil, err
	}
	s.source = path
	return s, func() error { return mmap.Unmap(data) }, nil
}
