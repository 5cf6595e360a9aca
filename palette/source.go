package palette

// Source is the global id source: a total, stable enumeration of every
// value a container may hold.
//
// Direct palettes delegate to it, and the binary codec writes dictionary
// entries as its ids.
type Source[V comparable] interface {
	// IndexOf returns the global id of v.
	IndexOf(v V) (int, bool)
	// ValueOf returns the value with global id id.
	ValueOf(id int) (V, bool)
	// Len returns the number of values in the domain.
	Len() int
}

// ListSource is a Source over a fixed slice; a value's id is its position.
type ListSource[V comparable] struct {
	values []V
	ids    map[V]int
}

var _ Source[int] = (*ListSource[int])(nil)

// NewListSource creates a source over values. Later duplicates keep the
// id of their first occurrence.
func NewListSource[V comparable](values ...V) *ListSource[V] {
	s := &ListSource[V]{
		values: append([]V(nil), values...),
		ids:    make(map[V]int, len(values)),
	}
	for i, v := range s.values {
		if _, ok := s.ids[v]; !ok {
			s.ids[v] = i
		}
	}

	return s
}

func (s *ListSource[V]) IndexOf(v V) (int, bool) {
	id, ok := s.ids[v]
	return id, ok
}

func (s *ListSource[V]) ValueOf(id int) (V, bool) {
	if id < 0 || id >= len(s.values) {
		var zero V
		return zero, false
	}

	return s.values[id], true
}

func (s *ListSource[V]) Len() int {
	return len(s.values)
}
