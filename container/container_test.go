package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-mapper/container"
)

func TestSources(t *testing.T) {
	raw := map[string]any{"b": 2, "a": 1}

	sources := map[string]container.Source{
		"map":        container.Map(raw),
		"view":       container.View(raw),
		"persistent": container.PersistentOf(raw),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			v, ok := src.Lookup("a")
			assert.True(t, ok)
			assert.Equal(t, 1, v)

			_, ok = src.Lookup("c")
			assert.False(t, ok)

			assert.Equal(t, []string{"a", "b"}, src.Keys())
		})
	}
}

func TestPersistent(t *testing.T) {
	var empty container.Persistent
	assert.Zero(t, empty.Len())
	assert.Empty(t, empty.Keys())

	first := empty.Set("x", 1)
	second := first.Set("y", 2).Delete("x")

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, []string{"y"}, second.Keys())
	assert.Equal(t, container.Map{"x": 1}, first.Map())

	_, ok := empty.Lookup("x")
	assert.False(t, ok, "updates must not leak into the original")
}

func TestOf(t *testing.T) {
	type labels map[string]int

	tests := []struct {
		name string
		raw  any
		ok   bool
	}{
		{"plain map", map[string]any{"a": 1}, true},
		{"string map", map[string]string{"a": "1"}, true},
		{"typed map", labels{"a": 1}, true},
		{"persistent", container.NewPersistent().Set("a", 1), true},
		{"view", container.View(map[string]any{"a": 1}), true},
		{"int keys", map[int]any{1: 1}, false},
		{"slice", []any{1}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, ok := container.Of(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				_, found := src.Lookup("a")
				assert.True(t, found)
			}
		})
	}
}
