package domain

// OrderedSet is an insertion-ordered collection without duplicates.
// The zero value is ready to use.
type OrderedSet[T comparable] struct {
	items []T
	index map[T]struct{}
}

// NewOrderedSet creates a set holding the given items in order.
func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{}
	s.Add(items...)
	return s
}

// Add appends every item not yet present. It reports whether the set changed.
func (s *OrderedSet[T]) Add(items ...T) bool {
	if s.index == nil {
		s.index = make(map[T]struct{}, len(items))
	}
	changed := false
	for _, item := range items {
		if _, ok := s.index[item]; ok {
			continue
		}
		s.index[item] = struct{}{}
		s.items = append(s.items, item)
		changed = true
	}
	return changed
}

// MoveToBack adds item at the end of the set, removing any earlier occurrence.
func (s *OrderedSet[T]) MoveToBack(item T) {
	s.Remove(item)
	s.Add(item)
}

// Remove deletes item from the set. It reports whether the item was present.
func (s *OrderedSet[T]) Remove(item T) bool {
	if _, ok := s.index[item]; !ok {
		return false
	}
	delete(s.index, item)
	for i, existing := range s.items {
		if existing == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether item is in the set.
func (s *OrderedSet[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of items.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in insertion order.
func (s *OrderedSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Replace resets the set to the given items, coalescing duplicates.
func (s *OrderedSet[T]) Replace(items []T) {
	s.items = nil
	s.index = make(map[T]struct{}, len(items))
	s.Add(items...)
}
