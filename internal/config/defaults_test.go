package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdext/internal/domain"
)

func writeConfig(t *testing.T, home string, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	err := os.WriteFile(filepath.Join(home, ".cmdextrc"), []byte(content), 0600)
	require.NoError(t, err)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name        string
		configLines []string
		key         string
		wantValue   string
		wantFound   bool
	}{
		{
			name:        "key exists in config file",
			configLines: []string{"max_depth=4"},
			key:         "max_depth",
			wantValue:   "4",
			wantFound:   true,
		},
		{
			name:        "key exists in defaults but not in file",
			configLines: []string{"# nothing"},
			key:         "max_depth",
			wantValue:   "16",
			wantFound:   true,
		},
		{
			name:        "default log_level",
			configLines: []string{"# nothing"},
			key:         "log_level",
			wantValue:   "info",
			wantFound:   true,
		},
		{
			name:        "config overrides default",
			configLines: []string{"log_level=error"},
			key:         "log_level",
			wantValue:   "error",
			wantFound:   true,
		},
		{
			name:        "unknown key",
			configLines: []string{"# nothing"},
			key:         "nope",
			wantFound:   false,
		},
		{
			name:        "hidden key is only found when set",
			configLines: []string{"color_command=200"},
			key:         "color_command",
			wantValue:   "200",
			wantFound:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupTempHome(t)
			writeConfig(t, home, tt.configLines...)

			value, found := Get(tt.key)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantValue, value)
		})
	}
}

func TestGet_UnparsableFileFallsBack(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "not a config line")

	value, found := Get("separator")
	require.True(t, found)
	require.Equal(t, ".", value)
}

func TestDefaults_CoverVisibleKeys(t *testing.T) {
	for _, key := range domain.ConfigKeys {
		_, ok := Defaults[key.Name]
		require.Equal(t, !key.Hidden, ok, "key %s", key.Name)
	}
}

func TestGetAll_MergesCorrectly(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home,
		"max_depth=9",
		"log_level=warn",
		"my_custom_setting=custom_value",
	)

	got, err := GetAll()
	require.NoError(t, err)

	require.Len(t, got, len(Defaults)+1)
	require.Equal(t, "9", got["max_depth"])
	require.Equal(t, "warn", got["log_level"])
	require.Equal(t, "custom_value", got["my_custom_setting"])
	require.Equal(t, "true", got["enable_log"])
}

func TestGetAll_NoConfigFile(t *testing.T) {
	setupTempHome(t)

	got, err := GetAll()
	require.NoError(t, err)

	for name, fn := range Defaults {
		require.Equal(t, fn(), got[name], "key %s", name)
	}
}
