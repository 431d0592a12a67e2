package indexing

// OrderedSet is a deduplicating collection that remembers insertion order.
// The first value added under a key wins; later adds with the same key are ignored.
type OrderedSet[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

// NewOrderedSet creates an empty set with room for capacity items.
func NewOrderedSet[K comparable, V any](capacity int) *OrderedSet[K, V] {
	return &OrderedSet[K, V]{
		keys:  make([]K, 0, capacity),
		items: make(map[K]V, capacity),
	}
}

// Add inserts v under k and reports whether k was new.
func (s *OrderedSet[K, V]) Add(k K, v V) bool {
	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = v
	s.keys = append(s.keys, k)
	return true
}

// Set stores v under k. A new key goes to the end; an existing key keeps its position.
func (s *OrderedSet[K, V]) Set(k K, v V) {
	if _, ok := s.items[k]; !ok {
		s.keys = append(s.keys, k)
	}
	s.items[k] = v
}

func (s *OrderedSet[K, V]) Has(k K) bool {
	_, ok := s.items[k]
	return ok
}

func (s *OrderedSet[K, V]) Get(k K) (V, bool) {
	v, ok := s.items[k]
	return v, ok
}

func (s *OrderedSet[K, V]) Len() int { return len(s.keys) }

// Keys returns the keys in insertion order.
func (s *OrderedSet[K, V]) Keys() []K {
	out := make([]K, len(s.keys))
	copy(out, s.keys)
	return out
}

// Values returns the values in insertion order.
func (s *OrderedSet[K, V]) Values() []V {
	out := make([]V, len(s.keys))
	for i, k := range s.keys {
		out[i] = s.items[k]
	}
	return out
}

// Truncate drops everything after the first n items.
func (s *OrderedSet[K, V]) Truncate(n int) {
	if n < 0 || n >= len(s.keys) {
		return
	}
	for _, k := range s.keys[n:] {
		delete(s.items, k)
	}
	s.keys = s.keys[:n]
}
