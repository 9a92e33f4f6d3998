package otlpattr

import (
	commonpb "go.opentelemetry.io/proto/otlp/common/v1"

	"attrcodec/internal/attributes"
)

// FromOTLP converts OTLP key/values into pairs. Array values become []any
// and key/value lists become map[string]any; both are passed through
// Unflatten unchanged. A key/value without a value yields a nil value,
// which Unflatten skips.
func FromOTLP(kvs []*commonpb.KeyValue) []attributes.Pair {
	pairs := make([]attributes.Pair, 0, len(kvs))
	for _, kv := range kvs {
		if kv == nil {
			continue
		}

		pairs = append(pairs, attributes.Pair{
			Key:   kv.GetKey(),
			Value: anyValue(kv.GetValue()),
		})
	}

	return pairs
}

func anyValue(v *commonpb.AnyValue) any {
	switch val := v.GetValue().(type) {
	case *commonpb.AnyValue_StringValue:
		return val.StringValue
	case *commonpb.AnyValue_BoolValue:
		return val.BoolValue
	case *commonpb.AnyValue_IntValue:
		return val.IntValue
	case *commonpb.AnyValue_DoubleValue:
		return val.DoubleValue
	case *commonpb.AnyValue_BytesValue:
		return val.BytesValue
	case *commonpb.AnyValue_ArrayValue:
		values := val.ArrayValue.GetValues()

		seq := make([]any, 0, len(values))
		for _, elem := range values {
			seq = append(seq, anyValue(elem))
		}

		return seq
	case *commonpb.AnyValue_KvlistValue:
		values := val.KvlistValue.GetValues()

		m := make(map[string]any, len(values))
		for _, kv := range values {
			m[kv.GetKey()] = anyValue(kv.GetValue())
		}

		return m
	default:
		return nil
	}
}
