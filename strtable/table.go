// Package strtable is a fixed-bucket-count, separately-chained string→string
// table. Buckets head singly-linked chains of entries kept in a handle-indexed
// arena with freelist reuse, so the chains are pointerless and deletion
// returns entries for recycling instead of churning the heap. The bucket
// count is fixed at construction; there is no rehashing and no internal
// locking — callers needing concurrent access must serialize externally.
package strtable

import (
	"errors"

	"strtabledemo/debug"
)

const nilIdx idx32 = ^idx32(0)

type idx32 uint32

// entry is one chained key/value node. Chains are threaded through the arena
// by index, head-first: the most recently inserted new key in a bucket is
// walked first.
type entry struct {
	next idx32
	key  string
	val  string
}

// Table is a fixed-length slot array over an entry arena. A slot holds nilIdx
// when empty, otherwise the arena index of its chain head.
type Table struct {
	slots      []idx32
	arena      []entry
	freeHead   idx32
	size       int
	maxEntries int // 0 = arena grows on demand
}

var (
	ErrFull            = errors.New("strtable: no free entries")
	ErrNotFound        = errors.New("strtable: key not found")
	ErrInvalidCapacity = errors.New("strtable: bucket count must be positive")
)

// New builds a table with the given number of buckets. A prime bucket count
// keeps systematic collisions down but any positive value is accepted.
//
// maxEntries > 0 preallocates a bounded entry pool of that size; Put returns
// ErrFull once the pool is exhausted. maxEntries == 0 leaves the arena
// unbounded and growth-on-demand.
func New(buckets, maxEntries int) (*Table, error) {
	if buckets < 1 {
		return nil, ErrInvalidCapacity
	}

	t := &Table{
		slots:      make([]idx32, buckets),
		freeHead:   nilIdx,
		maxEntries: maxEntries,
	}
	for i := range t.slots {
		t.slots[i] = nilIdx
	}

	if maxEntries > 0 {
		// Bounded pool: carve the whole arena up front and thread the
		// freelist through it, last entry terminating the chain.
		t.arena = make([]entry, maxEntries)
		for i := 0; i < maxEntries-1; i++ {
			t.arena[i].next = idx32(i + 1)
		}
		t.arena[maxEntries-1].next = nilIdx
		t.freeHead = 0
	}

	return t, nil
}

// acquire pops a free entry handle, growing the arena if unbounded.
func (t *Table) acquire() (idx32, error) {
	if t.freeHead != nilIdx {
		h := t.freeHead
		t.freeHead = t.arena[h].next
		return h, nil
	}
	if t.maxEntries > 0 {
		return nilIdx, ErrFull
	}
	t.arena = append(t.arena, entry{})
	return idx32(len(t.arena) - 1), nil
}

// release returns an entry to the freelist and drops its string storage.
func (t *Table) release(h idx32) {
	e := &t.arena[h]
	e.key, e.val = "", ""
	e.next = t.freeHead
	t.freeHead = h
}

// Put inserts key→value, or replaces the value in place when the key is
// already present. Replacement never creates a node and never reorders the
// chain; a genuinely new key is prepended at the bucket head. ErrFull is
// returned only by bounded tables with an exhausted pool, and the table is
// left untouched in that case.
func (t *Table) Put(key, value string) error {
	b := Hash(key, len(t.slots))

	for h := t.slots[b]; h != nilIdx; h = t.arena[h].next {
		if t.arena[h].key == key {
			t.arena[h].val = value
			return nil
		}
	}

	h, err := t.acquire()
	if err != nil {
		return err
	}
	t.arena[h] = entry{next: t.slots[b], key: key, val: value}
	t.slots[b] = h
	t.size++
	return nil
}

// Get returns the value stored under key, or ("", false) when absent.
// Read-only, O(chain length).
func (t *Table) Get(key string) (string, bool) {
	for h := t.slots[Hash(key, len(t.slots))]; h != nilIdx; h = t.arena[h].next {
		if t.arena[h].key == key {
			return t.arena[h].val, true
		}
	}
	return "", false
}

// Delete unlinks the entry stored under key and recycles it. Exactly one
// entry is removed per successful call (keys are unique per table). Absent
// keys report ErrNotFound; an empty target bucket and a scanned-but-missed
// chain are distinguished only in the cold-path diagnostics.
func (t *Table) Delete(key string) error {
	b := Hash(key, len(t.slots))

	if t.slots[b] == nilIdx {
		debug.DropMessage("DELETE", "no nodes to delete")
		return ErrNotFound
	}

	prev := nilIdx
	for h := t.slots[b]; h != nilIdx; h = t.arena[h].next {
		if t.arena[h].key != key {
			prev = h
			continue
		}
		if prev == nilIdx {
			t.slots[b] = t.arena[h].next // unlinking the head
		} else {
			t.arena[prev].next = t.arena[h].next
		}
		t.release(h)
		t.size--
		return nil
	}

	debug.DropMessage("DELETE", "key not found: "+key)
	return ErrNotFound
}

// ForEach visits every entry, slots in index order, chains head→tail.
// Returning false from visit stops the walk. Each call is a fresh traversal
// and the table is not mutated.
func (t *Table) ForEach(visit func(slot int, key, value string) bool) {
	for i := range t.slots {
		for h := t.slots[i]; h != nilIdx; h = t.arena[h].next {
			if !visit(i, t.arena[h].key, t.arena[h].val) {
				return
			}
		}
	}
}

// ScanSlot walks a single bucket head→tail. The visit callback is never
// invoked for an empty bucket, which is how callers observe emptiness.
// slot must be in [0, Capacity).
func (t *Table) ScanSlot(slot int, visit func(key, value string) bool) {
	for h := t.slots[slot]; h != nilIdx; h = t.arena[h].next {
		if !visit(t.arena[h].key, t.arena[h].val) {
			return
		}
	}
}

// Reset releases every chain back to the freelist, leaving an empty table
// with the same bucket count and pool. This is the whole-table teardown;
// actual memory reclamation is the collector's business.
func (t *Table) Reset() {
	for i := range t.slots {
		for h := t.slots[i]; h != nilIdx; {
			next := t.arena[h].next
			t.release(h)
			h = next
		}
		t.slots[i] = nilIdx
	}
	t.size = 0
}

// Len returns the number of stored entries.
//
//go:nosplit
//go:inline
func (t *Table) Len() int { return t.size }

// Capacity returns the fixed bucket count.
//
//go:nosplit
//go:inline
func (t *Table) Capacity() int { return len(t.slots) }
