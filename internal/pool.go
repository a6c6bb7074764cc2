package internal

// An arena of reusable entries with a stack of free indices.
//
// An index is either free (owned by the pool) or acquired (owned by
// whoever called [Pool.Acquire]) until it's released again. The pool
// doesn't track acquired indices; callers must never release the
// same index twice.
type Pool struct {
	entries []*Entry
	free    []int
	rand    Rand
}

// Creates a pool with the given number of prewarmed entries.
func NewPool(size int, rnd Rand) *Pool {
	if rnd == nil {
		rnd = NewRand()
	}
	size = max(size, 0)
	pool := &Pool{
		entries: make([]*Entry, 0, size),
		free:    make([]int, 0, size),
		rand:    rnd,
	}
	for i := 0; i < size; i++ {
		pool.entries = append(pool.entries, NewEntry(rnd))
		pool.free = append(pool.free, size-1-i) // pop order matches creation order
	}
	return pool
}

// Returns the index of an idle entry, reusing the most recently
// released one if possible.
func (self *Pool) Acquire() int {
	if len(self.free) == 0 {
		self.entries = append(self.entries, NewEntry(self.rand))
		return len(self.entries) - 1
	}
	index := self.free[len(self.free)-1]
	self.free = self.free[:len(self.free)-1]
	self.entries[index].Reset()
	return index
}

// Resets the entry at the given index and returns it to the pool.
func (self *Pool) Release(index int) {
	self.entries[index].Reset()
	self.free = append(self.free, index)
}

// Returns the entry at the given index.
func (self *Pool) Entry(index int) *Entry {
	return self.entries[index]
}

// Total number of entries created by the pool.
func (self *Pool) Len() int { return len(self.entries) }

// Number of idle entries.
func (self *Pool) Free() int { return len(self.free) }
