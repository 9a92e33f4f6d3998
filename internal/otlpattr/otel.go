package otlpattr

import (
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"attrcodec/internal/attributes"
)

// ToOTel converts pairs, typically the output of attributes.Flatten, into
// SDK attributes. Values without a native attribute type are encoded as
// JSON strings; nil values are dropped.
func ToOTel(pairs []attributes.Pair) []attribute.KeyValue {
	kvs := make([]attribute.KeyValue, 0, len(pairs))
	for _, p := range pairs {
		if p.Value == nil {
			continue
		}

		kvs = append(kvs, toKeyValue(p.Key, p.Value))
	}

	return kvs
}

func toKeyValue(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int32:
		return attribute.Int64(key, int64(v))
	case int64:
		return attribute.Int64(key, v)
	case float32:
		return attribute.Float64(key, float64(v))
	case float64:
		return attribute.Float64(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case []bool:
		return attribute.BoolSlice(key, v)
	case []int:
		return attribute.IntSlice(key, v)
	case []int64:
		return attribute.Int64Slice(key, v)
	case []float64:
		return attribute.Float64Slice(key, v)
	case fmt.Stringer:
		return attribute.Stringer(key, v)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return attribute.String(key, fmt.Sprint(value))
	}

	return attribute.String(key, string(encoded))
}
