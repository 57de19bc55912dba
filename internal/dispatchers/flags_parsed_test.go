package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitFlags(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantPositional []string
		wantFlags      []string
	}{
		{
			name: "empty",
		},
		{
			name:           "mixed",
			args:           []string{"a", "--json", "b", "-n"},
			wantPositional: []string{"a", "b"},
			wantFlags:      []string{"--json", "-n"},
		},
		{
			name:           "lone dash is positional",
			args:           []string{"-"},
			wantPositional: []string{"-"},
		},
		{
			name:           "double dash ends flags",
			args:           []string{"--a", "--", "--b", "c"},
			wantPositional: []string{"--b", "c"},
			wantFlags:      []string{"--a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positional, flags := SplitFlags(tt.args)
			require.Equal(t, tt.wantPositional, positional)
			require.Equal(t, tt.wantFlags, flags)
		})
	}
}

func TestParsedFlags(t *testing.T) {
	flags := NewParsedFlags([]string{"--json", "--limit=10", "--name=", "--bad=x"})

	require.True(t, flags.Has("--json"))
	require.False(t, flags.Has("--limit"))
	require.Equal(t, "10", flags.String("--limit", "5"))
	require.Equal(t, "", flags.String("--name", "default"))
	require.Equal(t, "fallback", flags.String("--missing", "fallback"))
	require.Equal(t, 10, flags.Int("--limit", 5))
	require.Equal(t, 7, flags.Int("--bad", 7))
	require.Equal(t, 3, flags.Int("--missing", 3))
	require.Len(t, flags.Raw(), 4)
}
