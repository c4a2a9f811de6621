package cascade

import "fmt"

type slot[V any] struct {
	key   string
	value V
	used  bool
}

// Layer is one tier of a cascading table: a fixed number of buckets, each
// holding at most one entry. A layer never probes and never chains; a key
// either sits in its bucket or is not in this layer.
type Layer[V any] struct {
	slots []slot[V]
	used  int
}

// NewLayer creates a layer with the given number of buckets. The capacity
// should be prime, see PlanCapacities.
func NewLayer[V any](capacity int) *Layer[V] {
	assert(capacity >= 2, "layer capacity must be at least 2")
	return &Layer[V]{slots: make([]slot[V], capacity)}
}

// Capacity returns the fixed number of buckets.
func (l *Layer[V]) Capacity() int {
	return len(l.slots)
}

// Used returns the number of occupied buckets.
func (l *Layer[V]) Used() int {
	return l.used
}

// Bucket maps a key's hash value to a bucket index of this layer.
func (l *Layer[V]) Bucket(h uint64) int {
	return int(h % uint64(len(l.slots)))
}

// Locate returns bucket if it is occupied by key.
func (l *Layer[V]) Locate(key string, bucket int) (int, bool) {
	s := l.at(bucket)
	if s.used && s.key == key {
		return bucket, true
	}
	return 0, false
}

// Read returns the value stored at bucket.
func (l *Layer[V]) Read(bucket int) (V, bool) {
	s := l.at(bucket)
	if !s.used {
		var zero V
		return zero, false
	}
	return s.value, true
}

// Entry returns key and value stored at bucket.
func (l *Layer[V]) Entry(bucket int) (string, V, bool) {
	s := l.at(bucket)
	return s.key, s.value, s.used
}

// Write stores (key, value) at bucket, replacing whatever was there.
func (l *Layer[V]) Write(bucket int, key string, value V) {
	s := l.at(bucket)
	if !s.used {
		l.used++
	}
	*s = slot[V]{key: key, value: value, used: true}
}

// ClearAt empties bucket.
func (l *Layer[V]) ClearAt(bucket int) {
	s := l.at(bucket)
	if s.used {
		l.used--
	}
	*s = slot[V]{}
}

// ClearAll empties every bucket.
func (l *Layer[V]) ClearAll() {
	clear(l.slots)
	l.used = 0
}

// at is the only place where slots are indexed. Buckets not derived from
// Bucket or Locate of this layer are a programming error.
func (l *Layer[V]) at(bucket int) *slot[V] {
	if bucket < 0 || bucket >= len(l.slots) {
		panic(fmt.Sprintf("bucket %d out of range for layer of capacity %d", bucket, len(l.slots)))
	}
	return &l.slots[bucket]
}
