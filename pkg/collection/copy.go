// Package collection provides generic helpers on slices.
package collection

// Copy returns a new slice holding the elements of val. A nil input yields an empty slice.
func Copy[T any](val []T) []T {
	dest := make([]T, len(val))
	copy(dest, val)
	return dest
}

// DeepCopy copies both the outer slice and each inner slice of val.
func DeepCopy[T any](val [][]T) [][]T {
	dest := make([][]T, len(val))
	for i, inner := range val {
		dest[i] = Copy(inner)
	}
	return dest
}
