package core

// Map returns a new slice with fn applied to every element of slice.
func Map[T, U any](slice []T, fn func(T) U) []U {
	if len(slice) == 0 {
		return nil
	}
	result := make([]U, len(slice))
	for i, value := range slice {
		result[i] = fn(value)
	}
	return result
}

// Filter returns the elements of slice for which fn returns true. The input
// slice is returned unchanged when nothing is filtered out.
func Filter[T any](slice []T, fn func(T) bool) []T {
	for i, value := range slice {
		if !fn(value) {
			result := make([]T, 0, len(slice))
			result = append(result, slice[:i]...)
			for _, value := range slice[i+1:] {
				if fn(value) {
					result = append(result, value)
				}
			}
			return result
		}
	}
	return slice
}

func Some[T any](slice []T, fn func(T) bool) bool {
	for _, value := range slice {
		if fn(value) {
			return true
		}
	}
	return false
}

func IfElse[T any](cond bool, whenTrue T, whenFalse T) T {
	if cond {
		return whenTrue
	}
	return whenFalse
}
