package coerce

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

type ordered struct{}

func (ordered) TypeTag() Tag { return Object }

func TestTypeOf(t *testing.T) {
	var nilMap map[string]any
	var nilFunc func()

	tests := []struct {
		name string
		in   any
		want Tag
	}{
		{"nil", nil, Undefined},
		{"bool", true, Bool},
		{"int", 3, Number},
		{"float", 1.5, Number},
		{"uint8", uint8(2), Number},
		{"string", "x", String},
		{"func", func() {}, Func},
		{"nil func", nilFunc, Null},
		{"slice", []string{"a"}, Array},
		{"array", [2]int{}, Array},
		{"map", map[string]any{}, Object},
		{"nil map", nilMap, Null},
		{"int keyed map", map[int]string{}, Other},
		{"struct", struct{}{}, Struct},
		{"pointer to string", new(string), String},
		{"tagged", ordered{}, Object},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TypeOf(tt.in))
		})
	}
}

func TestMatches(t *testing.T) {
	require.True(t, Matches("x", String))
	require.False(t, Matches("x", Number))
	require.True(t, Matches(2, []Tag{String, Number}))
	require.False(t, Matches(true, []Tag{String, Number}))
	require.True(t, Matches(func() {}, regexp.MustCompile("^F")))
	require.False(t, Matches("x", regexp.MustCompile("^F")))
	require.False(t, Matches("x", "String"), "plain strings are not specs")
}

func TestCoerce(t *testing.T) {
	require.Equal(t, "x", Coerce("x", "default"))
	require.Equal(t, "default", Coerce(5, "default"))
	require.Equal(t, 5, Coerce(5, "default", Number))
	require.Equal(t, false, Coerce(nil, false))
	require.Equal(t, true, CoercePattern(true, "d", regexp.MustCompile("Bool|String")))
	require.Equal(t, "d", CoercePattern(1, "d", regexp.MustCompile("Bool|String")))
}

func TestShape(t *testing.T) {
	defaults := map[string]any{
		"separator": ".",
		"quotes":    []any{},
		"converter": false,
	}

	t.Run("fills missing keys", func(t *testing.T) {
		got := Shape(nil, defaults, nil)
		require.Equal(t, ".", got["separator"])
		require.Equal(t, []any{}, got["quotes"])
		require.Equal(t, false, got["converter"])
	})

	t.Run("replaces mistyped values", func(t *testing.T) {
		got := Shape(map[string]any{"separator": 4, "quotes": "\""}, defaults, nil)
		require.Equal(t, ".", got["separator"])
		require.Equal(t, []any{}, got["quotes"])
	})

	t.Run("keeps allowed extra tags", func(t *testing.T) {
		fn := func(string) any { return nil }
		got := Shape(map[string]any{"converter": fn}, defaults, map[string][]Tag{"converter": {Func}})
		require.NotNil(t, got["converter"])
		require.Equal(t, Func, TypeOf(got["converter"]))
	})

	t.Run("keeps unknown keys", func(t *testing.T) {
		got := Shape(map[string]any{"extra": 1}, defaults, nil)
		require.Equal(t, 1, got["extra"])
	})

	t.Run("does not modify input", func(t *testing.T) {
		in := map[string]any{"separator": 1}
		_ = ShapeAll(in, defaults)
		require.Equal(t, 1, in["separator"])
	})
}

func TestStrings(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, Strings([]any{"a", 1, "b"}))
	require.Equal(t, []string{"x"}, Strings([]string{"x"}))
	require.Nil(t, Strings("x"))
}
