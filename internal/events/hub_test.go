package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHub_EmitOrder(t *testing.T) {
	hub := NewHub()
	var calls []string

	hub.On("saved", func(args ...any) { calls = append(calls, "first") })
	hub.On("saved", func(args ...any) { calls = append(calls, "second") })

	hub.Emit("saved")
	require.Equal(t, []string{"first", "second"}, calls)
}

func TestHub_EmitArgsVerbatim(t *testing.T) {
	hub := NewHub()
	var got []any

	hub.On("x", func(args ...any) { got = args })
	hub.Emit("x", 1, "two", nil)

	require.Equal(t, []any{1, "two", nil}, got)
}

func TestHub_EmitWithoutHandlers(t *testing.T) {
	hub := NewHub()
	require.NotPanics(t, func() { hub.Emit("nobody") })
}

func TestHub_OnMultipleTypes(t *testing.T) {
	hub := NewHub()
	count := 0

	hub.On("a  b", func(args ...any) { count++ })
	hub.Emit("a")
	hub.Emit("b")

	require.Equal(t, 2, count)
	require.Equal(t, 1, hub.Count("a"))
	require.Equal(t, []string{"a", "b"}, hub.Types())
}

func TestHub_OnMap(t *testing.T) {
	hub := NewHub()
	var calls []string

	hub.OnMap(map[string]Handler{
		CommandNotFound: func(args ...any) { calls = append(calls, "notfound") },
		DisabledCommand: func(args ...any) { calls = append(calls, "disabled") },
		"ignored":       nil,
	})

	hub.Emit(DisabledCommand)
	hub.Emit(CommandNotFound)

	require.Equal(t, []string{"disabled", "notfound"}, calls)
	require.False(t, hub.Has("ignored"))
}

func TestHub_Has(t *testing.T) {
	hub := NewHub()
	require.False(t, hub.Has(CommandError, CommandNotFound))

	hub.On(CommandNotFound, func(args ...any) {})
	require.True(t, hub.Has(CommandError, CommandNotFound))
	require.False(t, hub.Has(DisabledCommand))
}

func TestHub_RegisterDuringEmit(t *testing.T) {
	hub := NewHub()
	inner := 0

	hub.On("x", func(args ...any) {
		hub.On("x", func(args ...any) { inner++ })
	})

	hub.Emit("x")
	require.Equal(t, 0, inner)
	require.Equal(t, 2, hub.Count("x"))

	hub.Emit("x")
	require.Equal(t, 1, inner)
}
