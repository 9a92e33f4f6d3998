package otlpattr

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"attrcodec/internal/attributes"
)

// ToOTLP converts pairs into OTLP key/values. Each value gets the attribute
// type ToOTel assigns it.
func ToOTLP(pairs []attributes.Pair) []*commonpb.KeyValue {
	kvs := ToOTel(pairs)

	out := make([]*commonpb.KeyValue, 0, len(kvs))
	for _, kv := range kvs {
		out = append(out, &commonpb.KeyValue{Key: string(kv.Key), Value: otlpValue(kv.Value)})
	}

	return out
}

// EncodeKeyValueList serializes kvs as a binary OTLP KeyValueList.
func EncodeKeyValueList(kvs []*commonpb.KeyValue) ([]byte, error) {
	data, err := proto.Marshal(&commonpb.KeyValueList{Values: kvs})
	if err != nil {
		return nil, fmt.Errorf("failed to encode OTLP key/value list: %w", err)
	}

	return data, nil
}

// EncodeKeyValueListJSON serializes kvs as an OTLP/JSON KeyValueList.
func EncodeKeyValueListJSON(kvs []*commonpb.KeyValue) ([]byte, error) {
	data, err := protojson.Marshal(&commonpb.KeyValueList{Values: kvs})
	if err != nil {
		return nil, fmt.Errorf("failed to encode OTLP/JSON key/value list: %w", err)
	}

	return data, nil
}

func otlpValue(v attribute.Value) *commonpb.AnyValue {
	switch v.Type() {
	case attribute.BOOL:
		return boolValue(v.AsBool())
	case attribute.INT64:
		return intValue(v.AsInt64())
	case attribute.FLOAT64:
		return doubleValue(v.AsFloat64())
	case attribute.STRING:
		return stringValue(v.AsString())
	case attribute.BOOLSLICE:
		return arrayValue(v.AsBoolSlice(), boolValue)
	case attribute.INT64SLICE:
		return arrayValue(v.AsInt64Slice(), intValue)
	case attribute.FLOAT64SLICE:
		return arrayValue(v.AsFloat64Slice(), doubleValue)
	case attribute.STRINGSLICE:
		return arrayValue(v.AsStringSlice(), stringValue)
	default:
		return &commonpb.AnyValue{}
	}
}

func boolValue(b bool) *commonpb.AnyValue {
	return &commonpb.AnyValue{Value: &commonpb.AnyValue_BoolValue{BoolValue: b}}
}

func intValue(i int64) *commonpb.AnyValue {
	return &commonpb.AnyValue{Value: &commonpb.AnyValue_IntValue{IntValue: i}}
}

func doubleValue(f float64) *commonpb.AnyValue {
	return &commonpb.AnyValue{Value: &commonpb.AnyValue_DoubleValue{DoubleValue: f}}
}

func stringValue(s string) *commonpb.AnyValue {
	return &commonpb.AnyValue{Value: &commonpb.AnyValue_StringValue{StringValue: s}}
}

func arrayValue[T any](values []T, wrap func(T) *commonpb.AnyValue) *commonpb.AnyValue {
	elems := make([]*commonpb.AnyValue, 0, len(values))
	for _, v := range values {
		elems = append(elems, wrap(v))
	}

	return &commonpb.AnyValue{Value: &commonpb.AnyValue_ArrayValue{
		ArrayValue: &commonpb.ArrayValue{Values: elems},
	}}
}
