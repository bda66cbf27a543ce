package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopTool(name string) Tool {
	return Tool{
		Name:   name,
		Params: []Param{{Name: "input", Type: TypeString}},
		Fn: func(ctx context.Context, args Args) (string, error) {
			return "", nil
		},
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("register and get", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry(nil)
		require.NoError(t, r.Register(noopTool("OrderStatus")))

		tool, ok := r.Get("OrderStatus")
		require.True(t, ok)
		assert.Equal(t, "OrderStatus", tool.Name)
		assert.True(t, r.Has("OrderStatus"))
		assert.False(t, r.Has("Nonexistent"))
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry(nil)
		require.NoError(t, r.Register(noopTool("dup")))

		err := r.Register(noopTool("dup"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("rejects nameless or function-less tools", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry(nil)
		assert.Error(t, r.Register(Tool{Fn: noopTool("x").Fn}))
		assert.Error(t, r.Register(Tool{Name: "NoFn"}))
	})

	t.Run("list is sorted by name", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry(nil)
		r.MustRegister(noopTool("Charlie"), noopTool("Alpha"), noopTool("Bravo"))

		var names []string
		for _, tool := range r.List() {
			names = append(names, tool.Name)
		}
		assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, names)
	})

	t.Run("MustRegister panics on configuration error", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry(nil)
		assert.Panics(t, func() {
			r.MustRegister(noopTool("same"), noopTool("same"))
		})
	})
}
