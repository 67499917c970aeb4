package collections

// Set is an unordered collection of unique comparable values.
// The zero value is ready to use.
type Set[T comparable] struct {
	m map[T]struct{}
}

func (s *Set[T]) Has(value T) bool {
	_, ok := s.m[value]
	return ok
}

func (s *Set[T]) Add(value T) {
	if s.m == nil {
		s.m = make(map[T]struct{})
	}
	s.m[value] = struct{}{}
}

// AddIfAbsent adds value and reports whether it was not already present.
func (s *Set[T]) AddIfAbsent(value T) bool {
	if s.Has(value) {
		return false
	}
	s.Add(value)
	return true
}

func (s *Set[T]) Delete(value T) {
	delete(s.m, value)
}

func (s *Set[T]) Len() int {
	return len(s.m)
}
