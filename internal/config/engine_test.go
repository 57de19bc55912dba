package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineOptions(t *testing.T) {
	opts := EngineOptions(map[string]string{
		"separator":        "/",
		"quotes":           `" ' ###`,
		"case_insensitive": "true",
		"convert_numbers":  "1",
		"max_depth":        "4",
	})

	require.Equal(t, "/", opts.Separator)
	require.Equal(t, []string{`"`, "'", "###"}, opts.Quotes)
	require.True(t, opts.CaseInsensitive)
	require.True(t, opts.ConvertNumbers)
	require.Equal(t, 4, opts.MaxDepth)
}

func TestEngineOptions_BadValuesKeepDefaults(t *testing.T) {
	opts := EngineOptions(map[string]string{
		"case_insensitive": "maybe",
		"convert_numbers":  "",
		"max_depth":        "deep",
	})

	require.Empty(t, opts.Separator)
	require.Empty(t, opts.Quotes)
	require.False(t, opts.CaseInsensitive)
	require.False(t, opts.ConvertNumbers)
	require.Zero(t, opts.MaxDepth)
}
