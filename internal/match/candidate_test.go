package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "llm.tokencount", NormalizeKey("LLM.token_count"))
	assert.Equal(t, "llm.tokencount", NormalizeKey("llm.Token-Count"))
	assert.Equal(t, "a#b", NormalizeKey("a #b"))
}

func TestRank(t *testing.T) {
	keys := []string{"input.value", "output.value", "input.mime_type", "input.value", "llm"}

	ranked := Rank("input.valeu", keys)
	require.Len(t, ranked, 4)

	assert.Equal(t, "input.value", ranked[0].Key)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	assert.Equal(t, []string{"input.value"}, ranked.AboveThreshold(0.8).Keys())
	assert.Len(t, ranked.Top(2), 2)
	assert.Len(t, ranked.Top(10), 4)
}

func TestRank_TieBreaksByKey(t *testing.T) {
	ranked := Rank("ab", []string{"ac", "aa", "ad"})
	assert.Equal(t, []string{"aa", "ac", "ad"}, ranked.Keys())
}

func TestRank_Empty(t *testing.T) {
	ranked := Rank("x", nil)
	assert.Empty(t, ranked.Top(1))
	assert.Empty(t, ranked.AboveThreshold(0).Keys())
}
