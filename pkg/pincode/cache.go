package pincode

import (
	"container/list"
	"context"
	"errors"
	"sync"
)

type cacheEntry struct {
	code  string
	loc   Location
	found bool
}

// CachedResolver keeps the most recently used lookup results, including
// misses, in a fixed-size LRU.
type CachedResolver struct {
	next     Resolver
	capacity int
	items    map[string]*list.Element
	order    *list.List
	mu       sync.Mutex
}

// Cached wraps next with an LRU of the given capacity.
// The capacity must be positive, otherwise it panics.
func Cached(next Resolver, capacity int) *CachedResolver {
	if capacity <= 0 {
		panic("pincode cache capacity must be positive")
	}
	return &CachedResolver{
		next:     next,
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *CachedResolver) Resolve(ctx context.Context, code string) (Location, error) {
	if e, ok := c.get(code); ok {
		if !e.found {
			return Location{}, ErrNotFound
		}
		return e.loc, nil
	}

	loc, err := c.next.Resolve(ctx, code)
	switch {
	case err == nil:
		c.put(cacheEntry{code: code, loc: loc, found: true})
	case errors.Is(err, ErrNotFound):
		c.put(cacheEntry{code: code})
	}
	return loc, err
}

func (c *CachedResolver) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *CachedResolver) get(code string) (cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[code]
	if !ok {
		return cacheEntry{}, false
	}
	c.order.MoveToFront(elem)
	return *elem.Value.(*cacheEntry), true
}

func (c *CachedResolver) put(e cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[e.code]; ok {
		c.order.MoveToFront(elem)
		*elem.Value.(*cacheEntry) = e
		return
	}

	c.items[e.code] = c.order.PushFront(&e)
	if c.order.Len() > c.capacity {
		c.evictOldest()
	}
}

// Must be called with lock held.
func (c *CachedResolver) evictOldest() {
	if oldest := c.order.Back(); oldest != nil {
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).code)
	}
}
