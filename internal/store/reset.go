package store

import "sync"

// Resettable is implemented by every store whose in-memory state is dropped
// at sign-out.
type Resettable interface {
	Reset()
}

// Coordinator holds explicit references to all resettable stores and clears
// them in one call, so sign-out never relies on global store lookup.
type Coordinator struct {
	mu     sync.Mutex
	stores []Resettable
}

func NewCoordinator(stores ...Resettable) *Coordinator {
	return &Coordinator{stores: stores}
}

func (c *Coordinator) Register(s Resettable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stores = append(c.stores, s)
}

func (c *Coordinator) ResetAll() {
	c.mu.Lock()
	stores := append([]Resettable{}, c.stores...)
	c.mu.Unlock()

	for _, s := range stores {
		s.Reset()
	}
}
