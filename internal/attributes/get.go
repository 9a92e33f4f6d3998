package attributes

import "reflect"

// GetAttributeValue returns the value reached by descending tree one key
// segment at a time. The second result is false when the root is not a
// mapping, the key is empty or has an empty segment, or some segment cannot
// be followed. A stored nil value is reported as present.
//
// Numeric segments are plain mapping keys; sequences are never indexed.
func GetAttributeValue(tree any, key string, opts ...Option) (any, bool) {
	cfg := newConfig(opts)

	segments, ok := splitKey(key, cfg.separator)
	if !ok {
		return nil, false
	}

	current := tree
	for _, segment := range segments {
		next, found := lookup(current, segment)
		if !found {
			return nil, false
		}

		current = next
	}

	return current, true
}

// lookup returns v[key] when v is a mapping with string keys.
func lookup(v any, key string) (any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		val, ok := m[key]
		return val, ok
	case map[string]string:
		if val, ok := m[key]; ok {
			return val, true
		}

		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !val.IsValid() {
		return nil, false
	}

	return val.Interface(), true
}
