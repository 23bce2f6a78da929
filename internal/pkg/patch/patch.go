package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Map applies fn to an optional value, keeping nil as nil.
func Map[T, U any](ptr *T, fn func(T) U) *U {
	if ptr == nil {
		return nil
	}
	v := fn(*ptr)
	return &v
}
