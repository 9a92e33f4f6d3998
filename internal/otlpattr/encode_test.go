package otlpattr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attrcodec/internal/attributes"
)

func TestToOTLP(t *testing.T) {
	t.Parallel()

	kvs := ToOTLP([]attributes.Pair{
		{Key: "s", Value: "x"},
		{Key: "b", Value: true},
		{Key: "i", Value: 3},
		{Key: "f", Value: 1.5},
		{Key: "bs", Value: []bool{true}},
		{Key: "is", Value: []int64{1, 2}},
		{Key: "fs", Value: []float64{0.5}},
		{Key: "m", Value: map[string]any{"k": "v"}},
		{Key: "nil", Value: nil},
	})

	assert.Equal(t, []attributes.Pair{
		{Key: "s", Value: "x"},
		{Key: "b", Value: true},
		{Key: "i", Value: int64(3)},
		{Key: "f", Value: 1.5},
		{Key: "bs", Value: []any{true}},
		{Key: "is", Value: []any{int64(1), int64(2)}},
		{Key: "fs", Value: []any{0.5}},
		{Key: "m", Value: `{"k":"v"}`},
	}, FromOTLP(kvs))
}

func TestEncodeKeyValueList(t *testing.T) {
	t.Parallel()

	pairs := []attributes.Pair{
		{Key: "llm.input_messages.0.message.role", Value: "user"},
		{Key: "llm.token_count.prompt", Value: int64(10)},
	}

	data, err := EncodeKeyValueList(ToOTLP(pairs))
	require.NoError(t, err)

	back, err := DecodeKeyValueList(data)
	require.NoError(t, err)
	assert.Equal(t, pairs, back)

	data, err = EncodeKeyValueListJSON(ToOTLP(pairs))
	require.NoError(t, err)
	assert.JSONEq(t, `{"values": [
		{"key": "llm.input_messages.0.message.role", "value": {"stringValue": "user"}},
		{"key": "llm.token_count.prompt", "value": {"intValue": "10"}}
	]}`, string(data))

	back, err = DecodeKeyValueListJSON(data)
	require.NoError(t, err)
	assert.Equal(t, pairs, back)
}
