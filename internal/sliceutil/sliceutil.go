package sliceutil

// Map applies fn to every element of slice. A nil slice maps to nil.
func Map[T any, U any](slice []T, fn func(T) U) []U {
	if slice == nil {
		return nil
	}
	mapped := make([]U, len(slice))
	for i, elem := range slice {
		mapped[i] = fn(elem)
	}
	return mapped
}

// MapErr applies fn to every element of slice, stopping at the first error. A nil slice maps to nil.
func MapErr[T any, U any](slice []T, fn func(T) (U, error)) ([]U, error) {
	if slice == nil {
		return nil, nil
	}
	mapped := make([]U, len(slice))
	for i, elem := range slice {
		u, err := fn(elem)
		if err != nil {
			return nil, err
		}
		mapped[i] = u
	}
	return mapped, nil
}
