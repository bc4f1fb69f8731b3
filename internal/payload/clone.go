package payload

// Clone deep-copies a JSON-shaped value. Objects become map[string]any and
// lists become []any; scalars and unknown types are copied as is.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = Clone(val)
		}
		return m
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = val
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = Clone(val)
		}
		return s
	case []map[string]any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = Clone(val)
		}
		return s
	case []map[string]string:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = Clone(val)
		}
		return s
	case []string:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = val
		}
		return s
	}
	return v
}
