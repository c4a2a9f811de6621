package cascade

// Config holds the construction parameters of a Table.
type Config struct {
	Layers   int      // number of layers, >= 1
	Capacity int      // target capacity of the first layer, >= 2
	Shrink   float64  // shrink factor between layer targets, in (0,1)
	Hash     HashFunc // nil selects RuntimeHash
}

// DefaultConfig returns 8 layers starting at a capacity of 100000, each
// following layer sized at 80% of its predecessor.
func DefaultConfig() Config {
	return Config{
		Layers:   8,
		Capacity: 100000,
		Shrink:   0.8,
	}
}

// Table is a cascading multi-layer hash table mapping strings to values of
// type V. The zero value is not usable; create tables with New.
type Table[V any] struct {
	layers   []*Layer[V]
	overflow map[string]V
	hash     HashFunc
	frozen   bool
	holes    bool // some layer bucket was emptied by Erase
}

// New creates an empty table. It returns a *ConfigError if cfg is invalid.
func New[V any](cfg Config) (*Table[V], error) {
	caps, err := PlanCapacities(cfg.Layers, cfg.Capacity, cfg.Shrink)
	if err != nil {
		tracer().Errorf("cannot create table: %v", err)
		return nil, err
	}
	t := &Table[V]{
		layers:   make([]*Layer[V], len(caps)),
		overflow: make(map[string]V),
		hash:     cfg.Hash,
	}
	if t.hash == nil {
		t.hash = RuntimeHash()
	}
	for i, c := range caps {
		t.layers[i] = NewLayer[V](c)
	}
	tracer().Infof("cascading table with %d layers, capacities %v", len(caps), caps)
	return t, nil
}

// Insert stores value under key. If key is already present, its value is
// replaced in place. Insert returns true if key was not present before.
func (t *Table[V]) Insert(key string, value V) bool {
	assert(!t.frozen, "insert into frozen table")
	h := t.hash(key)
	for i, l := range t.layers {
		b := l.Bucket(h)
		k, _, used := l.Entry(b)
		if !used {
			if t.holes && t.update(key, value, h, i+1) {
				return false
			}
			l.Write(b, key, value)
			return true
		}
		if k == key {
			l.Write(b, key, value)
			return false
		}
	}
	_, found := t.overflow[key]
	if !found {
		tracer().Debugf("key %q cascaded into overflow", key)
	}
	t.overflow[key] = value
	return !found
}

// update replaces the value of key if it lives in layer from or below, or in
// the overflow map. Only needed after Erase has punched holes into layers
// above a key's home.
func (t *Table[V]) update(key string, value V, h uint64, from int) bool {
	for _, l := range t.layers[from:] {
		if b, ok := l.Locate(key, l.Bucket(h)); ok {
			l.Write(b, key, value)
			return true
		}
	}
	if _, ok := t.overflow[key]; ok {
		t.overflow[key] = value
		return true
	}
	return false
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, bool) {
	h := t.hash(key)
	for _, l := range t.layers {
		if b, ok := l.Locate(key, l.Bucket(h)); ok {
			return l.Read(b)
		}
	}
	v, ok := t.overflow[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table[V]) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Erase removes key. Erasing an absent key is a no-op which returns false.
func (t *Table[V]) Erase(key string) bool {
	assert(!t.frozen, "erase from frozen table")
	h := t.hash(key)
	for _, l := range t.layers {
		if b, ok := l.Locate(key, l.Bucket(h)); ok {
			l.ClearAt(b)
			t.holes = true
			return true
		}
	}
	if _, ok := t.overflow[key]; ok {
		delete(t.overflow, key)
		return true
	}
	return false
}

// Clear removes all entries.
func (t *Table[V]) Clear() {
	assert(!t.frozen, "clear frozen table")
	for _, l := range t.layers {
		l.ClearAll()
	}
	clear(t.overflow)
	t.holes = false
}

// Size returns the summed capacity of all layers and the number of entries
// in the overflow map.
func (t *Table[V]) Size() (capacity int, overflow int) {
	for _, l := range t.layers {
		capacity += l.Capacity()
	}
	return capacity, len(t.overflow)
}

// Occupied returns the number of occupied layer buckets.
func (t *Table[V]) Occupied() int {
	n := 0
	for _, l := range t.layers {
		n += l.Used()
	}
	return n
}

// Len returns the number of stored entries.
func (t *Table[V]) Len() int {
	return t.Occupied() + len(t.overflow)
}

// Layers returns the number of layers.
func (t *Table[V]) Layers() int {
	return len(t.layers)
}

// Layer returns layer i. Callers must not mutate it.
func (t *Table[V]) Layer(i int) *Layer[V] {
	return t.layers[i]
}

// Range calls fn for every entry, layers first, then the overflow map, and
// stops as soon as fn returns false. Overflow entries are visited in
// unspecified order. fn must not mutate the table.
func (t *Table[V]) Range(fn func(key string, value V) bool) {
	for _, l := range t.layers {
		for b := range l.Capacity() {
			if k, v, used := l.Entry(b); used {
				if !fn(k, v) {
					return
				}
			}
		}
	}
	for k, v := range t.overflow {
		if !fn(k, v) {
			return
		}
	}
}

// Freeze makes the table read-only. Any later call to Insert, Erase or Clear
// panics. A frozen table may be shared between goroutines.
func (t *Table[V]) Freeze() {
	t.frozen = true
}

// Frozen reports whether Freeze has been called.
func (t *Table[V]) Frozen() bool {
	return t.frozen
}
