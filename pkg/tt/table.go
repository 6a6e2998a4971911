package tt

import "fmt"

// Default number of entries, plenty for the 5x5 board
const DefaultCapacity = 1 << 20

// Insertion-ordered, bounded mapping. Once Capacity entries are stored,
// inserting a new key evicts the oldest one. Updating an existing key keeps
// its age. Not safe for concurrent use, a table belongs to one player.
type Table[K comparable] struct {
	entries  map[K]Entry
	ring     []K // insertion order, ring[next] is the oldest once full
	next     int
	capacity int

	hits      uint64
	misses    uint64
	evictions uint64
}

func NewTable[K comparable](capacity int) *Table[K] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table[K]{
		entries:  make(map[K]Entry, min(capacity, 1<<16)),
		ring:     make([]K, 0, min(capacity, 1<<16)),
		capacity: capacity,
	}
}

func (t *Table[K]) Get(key K) (Entry, bool) {
	e, ok := t.entries[key]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return e, ok
}

func (t *Table[K]) Put(key K, e Entry) {
	if _, ok := t.entries[key]; ok {
		t.entries[key] = e
		return
	}

	if len(t.ring) < t.capacity {
		t.ring = append(t.ring, key)
	} else {
		// Full, overwrite the oldest slot
		delete(t.entries, t.ring[t.next])
		t.ring[t.next] = key
		t.next = (t.next + 1) % t.capacity
		t.evictions++
	}
	t.entries[key] = e
}

func (t *Table[K]) Len() int {
	return len(t.entries)
}

func (t *Table[K]) Capacity() int {
	return t.capacity
}

func (t *Table[K]) Clear() {
	clear(t.entries)
	t.ring = t.ring[:0]
	t.next = 0
	t.hits, t.misses, t.evictions = 0, 0, 0
}

type Stats struct {
	Size      int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

func (t *Table[K]) Stats() Stats {
	return Stats{Size: t.Len(), Hits: t.hits, Misses: t.misses, Evictions: t.evictions}
}

func (s Stats) String() string {
	return fmt.Sprintf("size=%d hits=%d misses=%d evictions=%d", s.Size, s.Hits, s.Misses, s.Evictions)
}
