package bitstore

import (
	"container/list"
	"sync"
)

// literalCacheSize bounds the number of parsed literals kept around.
const literalCacheSize = 256

// literalCache is a bounded LRU of parsed literal strings. Cached
// stores are frozen, so handing the same instance to every caller is
// safe. Eviction is strictly least-recently-used so that the policy is
// observable in tests.
type literalCache struct {
	mu      sync.Mutex
	cap     int
	entries map[string]*literalEntry
	order   *list.List // front = most recently used; values are keys
}

type literalEntry struct {
	store *Store
	elem  *list.Element
}

func newLiteralCache(capacity int) *literalCache {
	if capacity < 1 {
		capacity = 1
	}
	return &literalCache{
		cap:     capacity,
		entries: make(map[string]*literalEntry),
		order:   list.New(),
	}
}

func (c *literalCache) get(key string) (*Store, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(e.elem)
	return e.store, true
}

func (c *literalCache) put(key string, s *Store) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.store = s
		c.order.MoveToFront(e.elem)
		return
	}
	for c.order.Len() >= c.cap {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		delete(c.entries, oldest.Value.(string))
		c.order.Remove(oldest)
	}
	elem := c.order.PushFront(key)
	c.entries[key] = &literalEntry{store: s, elem: elem}
}

func (c *literalCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

var literals = newLiteralCache(literalCacheSize)
