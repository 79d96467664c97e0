package bitstore

import "iter"

// Find returns the MSB0 index of the leftmost occurrence of pattern
// within [start, end), or -1 if there is none. The window is clamped
// to the store bounds. An empty pattern matches at the window start.
func (s *Store) Find(pattern *Store, start, end int) int {
	if start < 0 {
		start = 0
	}
	if end > s.length {
		end = s.length
	}
	if start > end {
		return -1
	}
	if pattern.length == 0 {
		return start
	}
	for i := start; i+pattern.length <= end; i++ {
		if s.matchAt(pattern, i) {
			return i
		}
	}
	return -1
}

// FindAll returns a lazy sequence of the non-overlapping MSB0 match
// positions of pattern within [start, end). Iterating the sequence
// again restarts the search from the beginning of the window.
func (s *Store) FindAll(pattern *Store, start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		pos := start
		for {
			i := s.Find(pattern, pos, end)
			if i < 0 {
				return
			}
			if !yield(i) {
				return
			}
			pos = i + pattern.length
			if pattern.length == 0 {
				pos++
			}
		}
	}
}

func (s *Store) matchAt(pattern *Store, at int) bool {
	for k := 0; k < pattern.length; k++ {
		if s.bit(at+k) != pattern.bit(k) {
			return false
		}
	}
	return true
}
