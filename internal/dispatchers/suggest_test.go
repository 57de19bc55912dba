package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSimilar(t *testing.T) {
	candidates := []string{"status", "stash", "start", "commit", "config"}

	assert.Equal(t, []string{"start", "stash", "status"}, FindSimilar("stat", candidates, 3))
	assert.Equal(t, []string{"config"}, FindSimilar("confg", candidates, 3))
	assert.Empty(t, FindSimilar("zzzzzzzz", candidates, 3))
}

func TestFindSimilar_SkipsExactAndDuplicates(t *testing.T) {
	got := FindSimilar("Log", []string{"log", "logs", "logs"}, 5)
	assert.Equal(t, []string{"logs"}, got)
}

func TestFindSimilar_Limit(t *testing.T) {
	got := FindSimilar("a", []string{"b", "c", "d", "e"}, 2)
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestRegistry_Suggest(t *testing.T) {
	r := NewRegistry(nil, "/", false, nil)
	require.NoError(t, r.Define("config/get", &Definition{Callback: noop}))
	require.NoError(t, r.Define("config/set", &Definition{Callback: noop}))
	require.NoError(t, r.Define("version", &Definition{Callback: noop}))

	assert.Equal(t, []string{"config/get", "config/set"}, r.Suggest("config/gte", 3))
	assert.Equal(t, []string{"version"}, r.Suggest("verison", 3))
	assert.Empty(t, r.Suggest("version/extra", 3), "leaves have nothing below them")
	assert.Empty(t, r.Suggest("", 3))
}
