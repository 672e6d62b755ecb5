package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	doc := map[string]any{
		"editor": "vim",
		"source": map[string]any{"root": "/home/dev/src"},
		"history": map[string]any{
			"limit": float64(20), // JSON numbers decode as float64
		},
		"tags": []any{"a", "b"},
	}

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"editor", "vim", true},
		{"source.root", "/home/dev/src", true},
		{"history.limit", "20", true},
		{"source", "", false}, // intermediate map is not a value
		{"tags", "", false},   // lists are not addressable
		{"missing", "", false},
		{"source.missing", "", false},
		{"editor.nested", "", false}, // scalar has no children
	}

	for _, tt := range tests {
		got, ok := lookup(doc, tt.key)
		require.Equal(t, tt.wantOK, ok, "lookup(%q)", tt.key)
		require.Equal(t, tt.want, got, "lookup(%q)", tt.key)
	}
}

func TestPutCreatesIntermediateMaps(t *testing.T) {
	doc := map[string]any{}

	put(doc, "clone.default_host", "gitlab.com")

	v, ok := lookup(doc, "clone.default_host")
	require.True(t, ok)
	require.Equal(t, "gitlab.com", v)
}

func TestPutReplacesScalarInPath(t *testing.T) {
	doc := map[string]any{"clone": "oops"}

	put(doc, "clone.default_host", "gitlab.com")

	v, ok := lookup(doc, "clone.default_host")
	require.True(t, ok)
	require.Equal(t, "gitlab.com", v)
}

func TestRemovePrunesEmptyMaps(t *testing.T) {
	doc := map[string]any{}
	put(doc, "a.b.c", "x")

	require.True(t, remove(doc, "a.b.c"))
	require.Empty(t, doc)

	require.False(t, remove(doc, "a.b.c"))
	require.False(t, remove(doc, "never.was"))
}

func TestRemoveKeepsSiblings(t *testing.T) {
	doc := map[string]any{}
	put(doc, "log.enabled", "true")
	put(doc, "log.level", "debug")

	require.True(t, remove(doc, "log.enabled"))

	_, ok := lookup(doc, "log.enabled")
	require.False(t, ok)
	v, ok := lookup(doc, "log.level")
	require.True(t, ok)
	require.Equal(t, "debug", v)
}

func TestFlatten(t *testing.T) {
	doc := map[string]any{
		"editor": "vim",
		"source": map[string]any{"root": "/home/dev/src"},
		"tags":   []any{"skipped"},
	}

	out := map[string]string{}
	flatten(doc, "", out)

	require.Equal(t, map[string]string{
		"editor":      "vim",
		"source.root": "/home/dev/src",
	}, out)
}
