package attributes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attrcodec/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Code + " " + d.Key
	}

	return out
}

func TestCheck(t *testing.T) {
	t.Parallel()

	diags := Check([]Pair{
		kv("a", 0),
		kv("a.b", 1),
		kv("c.0.x", 2),
		kv("c.name", 3),
		kv("e.0", 4),
		kv("e.0.x", 5),
		kv("f", nil),
		kv("g..h", 6),
		kv("i", 7),
		kv("i", 8),
	})

	assert.Equal(t, []string{"empty-segment g..h", "duplicate-key i"}, codes(diags.Errors))
	assert.Equal(t, []string{
		"key-collision a",
		"key-collision c",
		"index-collision e",
		"key-collision e.0",
	}, codes(diags.Warnings))
	assert.Equal(t, []string{"nil-value f"}, codes(diags.Infos))
	assert.True(t, diags.HasErrors())
}

func TestCheck_Clean(t *testing.T) {
	t.Parallel()

	diags := Check([]Pair{kv("a.0.b", 1), kv("a.1.b", 2), kv("0.x", 3)})
	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.All())
}

func TestCheck_MatchesUnflattenErrors(t *testing.T) {
	t.Parallel()

	pairs := []Pair{kv("a.", 1)}

	diags := Check(pairs)
	require.Len(t, diags.Errors, 1)

	_, err := Unflatten(pairs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySegment)
}
