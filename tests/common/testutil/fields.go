//go:build unit || e2e

package testutil

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// Item modifies a field of the i-th object in an array field, e.g. rooms[0].adults.
func Item(key string, i int, field string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		items, ok := m[key].([]any)
		if !ok || i >= len(items) {
			return
		}
		if obj, ok := items[i].(map[string]any); ok {
			Field(field, value)(obj)
		}
	}
}
