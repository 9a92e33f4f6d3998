package otlpattr

import (
	"fmt"

	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"attrcodec/internal/attributes"
)

// DecodeKeyValueList decodes a binary-encoded OTLP KeyValueList into pairs.
func DecodeKeyValueList(data []byte) ([]attributes.Pair, error) {
	var list commonpb.KeyValueList
	if err := proto.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode OTLP key/value list: %w", err)
	}

	return FromOTLP(list.GetValues()), nil
}

// DecodeKeyValueListJSON decodes an OTLP/JSON KeyValueList, as in
// {"values": [{"key": "a.b", "value": {"stringValue": "c"}}]}.
func DecodeKeyValueListJSON(data []byte) ([]attributes.Pair, error) {
	var list commonpb.KeyValueList
	if err := protojson.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode OTLP/JSON key/value list: %w", err)
	}

	return FromOTLP(list.GetValues()), nil
}
