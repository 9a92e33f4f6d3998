package attributes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAttributeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tree   any
		key    string
		want   any
		wantOK bool
	}{
		{name: "empty tree", tree: M{}, key: "a.b.c"},
		{name: "top level", tree: M{"a": "b"}, key: "a", want: "b", wantOK: true},
		{name: "through scalar", tree: M{"a": "b"}, key: "a.b"},
		{name: "deep through scalar", tree: M{"a": "b"}, key: "a.b.c"},
		{
			name:   "mapping value",
			tree:   M{"a": M{"b": "c", "d": "e"}},
			key:    "a",
			want:   M{"b": "c", "d": "e"},
			wantOK: true,
		},
		{name: "nested scalar", tree: M{"a": M{"b": "c", "d": "e"}}, key: "a.b", want: "c", wantOK: true},
		{name: "past nested scalar", tree: M{"a": M{"b": "c", "d": "e"}}, key: "a.b.c"},
		{name: "nested mapping", tree: M{"a": M{"b": M{"c": "d"}}}, key: "a", want: M{"b": M{"c": "d"}}, wantOK: true},
		{name: "inner mapping", tree: M{"a": M{"b": M{"c": "d"}}}, key: "a.b", want: M{"c": "d"}, wantOK: true},
		{name: "deep scalar", tree: M{"a": M{"b": M{"c": "d"}}}, key: "a.b.c", want: "d", wantOK: true},
		{name: "missing segment", tree: M{"a": M{"bb": M{"c": "d"}}}, key: "a.b.c"},
		{name: "root is not a mapping", tree: "{}", key: "a.b.c"},
		{name: "nil root", tree: nil, key: "a"},
		{name: "empty key", tree: M{"a": M{"b": "c"}}, key: ""},
		{name: "separator only", tree: M{"a": M{"b": "c"}}, key: "."},
		{name: "trailing separator", tree: M{"a": M{"b": "c"}}, key: "a."},
		{name: "two separators", tree: M{"a": M{"b": "c"}}, key: ".."},
		{name: "doubled trailing separator", tree: M{"a": M{"b": "c"}}, key: "a.."},
		{name: "stored nil", tree: M{"a": M{"b": nil}}, key: "a.b", want: nil, wantOK: true},
		{name: "sequences are not indexed", tree: M{"a": A{M{"b": 1}}}, key: "a.0.b"},
		{name: "numeric key", tree: M{"a": M{"0": M{"b": 1}}}, key: "a.0.b", want: 1, wantOK: true},
		{name: "string map", tree: M{"a": map[string]string{"b": "c"}}, key: "a.b", want: "c", wantOK: true},
		{name: "string map miss", tree: map[string]string{"b": "c"}, key: "a"},
		{name: "typed map", tree: map[string]int{"n": 3}, key: "n", want: 3, wantOK: true},
		{name: "non-string keys", tree: map[int]string{1: "x"}, key: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := GetAttributeValue(tt.tree, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

type labelKey string

func TestGetAttributeValue_NamedKeyType(t *testing.T) {
	t.Parallel()

	tree := M{"labels": map[labelKey]bool{"prod": true}}

	got, ok := GetAttributeValue(tree, "labels.prod")
	assert.True(t, ok)
	assert.Equal(t, true, got)
}

func TestGetAttributeValue_Separator(t *testing.T) {
	t.Parallel()

	tree := M{"a.b": M{"c": 1}}

	got, ok := GetAttributeValue(tree, "a.b#c", WithSeparator("#"))
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = GetAttributeValue(tree, "a.b.c")
	assert.False(t, ok)

	_, ok = GetAttributeValue(tree, "a.b##c", WithSeparator("#"))
	assert.False(t, ok)
}

func TestGetAttributeValue_DoesNotMutate(t *testing.T) {
	t.Parallel()

	tree := M{"a": M{"b": "c"}}
	_, _ = GetAttributeValue(tree, "a.b")
	_, _ = GetAttributeValue(tree, "a.x.y")

	assert.Equal(t, M{"a": M{"b": "c"}}, tree)
}

func TestWithSeparator_PanicsOnEmpty(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithSeparator("") })
}
