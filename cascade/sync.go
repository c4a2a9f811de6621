package cascade

import "sync"

// Synchronized guards a Table with a read-write lock. Lookups run
// concurrently, mutations are exclusive.
type Synchronized[V any] struct {
	mu    sync.RWMutex
	table *Table[V]
}

// NewSynchronized creates an empty synchronized table.
func NewSynchronized[V any](cfg Config) (*Synchronized[V], error) {
	t, err := New[V](cfg)
	if err != nil {
		return nil, err
	}
	return &Synchronized[V]{table: t}, nil
}

// Insert stores value under key, see Table.Insert.
func (s *Synchronized[V]) Insert(key string, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Insert(key, value)
}

// Get returns the value stored under key.
func (s *Synchronized[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Get(key)
}

// Has reports whether key is present.
func (s *Synchronized[V]) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Has(key)
}

// Erase removes key, see Table.Erase.
func (s *Synchronized[V]) Erase(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Erase(key)
}

// Clear removes all entries.
func (s *Synchronized[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Clear()
}

// Len returns the number of stored entries.
func (s *Synchronized[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Len()
}

// Stats collects the current load of the table.
func (s *Synchronized[V]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Stats()
}
