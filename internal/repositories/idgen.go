package repositories

import "sync"

// IDAllocator hands out unique integer IDs for one entity kind. Every
// call to Next returns a value strictly greater than all previous ones;
// IDs are never reused. Allocators for different kinds are independent.
type IDAllocator struct {
	mu   sync.Mutex
	next int
}

// NewIDAllocator creates an allocator whose first Next returns seed.
func NewIDAllocator(seed int) *IDAllocator {
	return &IDAllocator{next: seed}
}

// Next returns the next ID in the sequence.
func (a *IDAllocator) Next() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	return id
}
