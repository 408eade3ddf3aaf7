package cache

import (
	"github.com/phuslu/log"
)

// NewLRUCache builds an LRU cache bounded to options.Capacity entries.
// A negative capacity is a configuration error, it is never clamped.
func NewLRUCache[K comparable, V any](logger log.Logger, options Options) (Cache[K, V], error) {
	if options.Capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &LRUCache[K, V]{
		cache:    make(map[K]*Node[K, V], options.Capacity),
		capacity: options.Capacity,
		logger:   logger,
	}, nil
}

// LRUCache pairs a map with a circular doubly linked list of the same
// keys. listHead is the least recently used entry and the eviction
// candidate, listHead.prev is the most recently used end. Every hit,
// overwrite and insert splices the touched node to the tail of the
// ring, so the ring always reads oldest to newest from the head.
type LRUCache[K comparable, V any] struct {
	cache    map[K]*Node[K, V]
	capacity int
	listHead *Node[K, V]
	length   int
	logger   log.Logger
	stats    Stats
}

type Node[K comparable, V any] struct {
	key   K
	value V
	prev  *Node[K, V]
	next  *Node[K, V]
}

func (c *LRUCache[K, V]) Put(key K, value V) {
	if c.capacity == 0 {
		return
	}

	if node, ok := c.cache[key]; ok {
		node.value = value
		c.touch(node)
		return
	}

	if c.length == c.capacity {
		c.evictOldest()
	}

	node := &Node[K, V]{
		key:   key,
		value: value,
	}
	c.cache[key] = node
	c.attach(node)
	c.length++
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	node, ok := c.cache[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}

	c.touch(node)
	c.stats.Hits++
	return node.value, true
}

func (c *LRUCache[K, V]) Update(key K, value V) {
	if node, ok := c.cache[key]; ok {
		node.value = value
		c.touch(node)
		return
	}
	c.Put(key, value)
}

func (c *LRUCache[K, V]) Delete(key K) bool {
	node, ok := c.cache[key]
	if !ok {
		return false
	}

	delete(c.cache, key)
	c.detach(node)
	c.length--
	return true
}

func (c *LRUCache[K, V]) Contains(key K) bool {
	_, ok := c.cache[key]
	return ok
}

func (c *LRUCache[K, V]) Keys() []K {
	keys := make([]K, 0, c.length)
	c.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func (c *LRUCache[K, V]) Range(onEach func(K, V) bool) {
	node := c.listHead
	for i := 0; i < c.length; i++ {
		if !onEach(node.key, node.value) {
			return
		}
		node = node.next
	}
}

func (c *LRUCache[K, V]) Purge() {
	if c.length == 0 {
		return
	}
	c.cache = make(map[K]*Node[K, V], c.capacity)
	c.listHead = nil
	c.length = 0
	c.logger.Debug().Msg("purged all resident cache entries")
}

func (c *LRUCache[K, V]) Size() int {
	return c.length
}

func (c *LRUCache[K, V]) Capacity() int {
	return c.capacity
}

func (c *LRUCache[K, V]) Stats() Stats {
	return c.stats
}

func (c *LRUCache[K, V]) evictOldest() {
	victim := c.listHead
	delete(c.cache, victim.key)
	c.detach(victim)
	c.length--
	c.stats.Evictions++
	c.logger.Debug().Msgf("evicted least recently used key %v", victim.key)
}

// touch splices node to the most recently used end of the ring.
func (c *LRUCache[K, V]) touch(node *Node[K, V]) {
	if c.listHead.prev == node {
		return
	}
	if c.listHead == node {
		// the head is one step away from the tail, rotating the ring
		// retires it without any splicing
		c.listHead = node.next
		return
	}
	c.detach(node)
	c.attach(node)
}

// detach unlinks node from the ring. The map entry is the caller's problem.
func (c *LRUCache[K, V]) detach(node *Node[K, V]) {
	if node.next == node {
		c.listHead = nil
		return
	}
	node.prev.next = node.next
	node.next.prev = node.prev
	if c.listHead == node {
		c.listHead = node.next
	}
}

// attach links node in at the most recently used end.
func (c *LRUCache[K, V]) attach(node *Node[K, V]) {
	if c.listHead == nil {
		node.prev = node
		node.next = node
		c.listHead = node
		return
	}
	tail := c.listHead.prev
	tail.next = node
	node.prev = tail
	node.next = c.listHead
	c.listHead.prev = node
}
