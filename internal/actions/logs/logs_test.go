package logs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/ui/style"
)

func flagsOf(flags ...string) *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(flags)
}

func fileDeps(t *testing.T, content string, printed *[]string) Deps {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "cmdext.log")
	if content != "" {
		require.NoError(t, os.WriteFile(logPath, []byte(content), 0600))
	}

	return Deps{
		LogFilePath: func() string { return logPath },
		Printf: func(format string, a ...any) (int, error) {
			*printed = append(*printed, fmt.Sprintf(format, a...))
			return 0, nil
		},
		Println: func(a ...any) (int, error) {
			*printed = append(*printed, fmt.Sprint(a...))
			return 0, nil
		},
		ReadFile:  os.ReadFile,
		WriteFile: os.WriteFile,
		Stat:      os.Stat,
	}
}

const sample = `2026-01-29 10:30:45 INF dispatch ok: help
2026-01-29 10:30:46 WRN alias "ls" of "list" shadowed by "ls"
2026-01-29 10:30:47 ERR dispatch failed: boom
`

func TestView_MissingFile(t *testing.T) {
	style.Init(false, nil)
	var printed []string

	err := view(nil, flagsOf(), fileDeps(t, "", &printed))

	require.NoError(t, err)
	require.Len(t, printed, 1)
	require.Contains(t, printed[0], "No log file found")
}

func TestView_MissingFileJSON(t *testing.T) {
	var printed []string

	err := view(nil, flagsOf("--json"), fileDeps(t, "", &printed))

	require.NoError(t, err)
	require.Equal(t, []string{"[]"}, printed)
}

func TestView_Limit(t *testing.T) {
	style.Init(false, nil)
	var printed []string

	err := view(nil, flagsOf("--limit=2"), fileDeps(t, sample, &printed))

	require.NoError(t, err)
	require.Len(t, printed, 2)
	require.Contains(t, printed[0], "WRN")
	require.Contains(t, printed[1], "boom")
}

func TestView_JSON(t *testing.T) {
	var printed []string

	err := view(nil, flagsOf("--json"), fileDeps(t, sample+"not a log line\n", &printed))

	require.NoError(t, err)
	require.Len(t, printed, 1)
	out := printed[0]
	require.Contains(t, out, `"level": "info"`)
	require.Contains(t, out, `"level": "warn"`)
	require.Contains(t, out, `"timestamp": "2026-01-29 10:30:47"`)
	require.Contains(t, out, `"message": "not a log line"`)
	require.Contains(t, out, `"raw": true`)
}

func TestClear(t *testing.T) {
	style.Init(false, nil)
	var printed []string
	deps := fileDeps(t, sample, &printed)

	err := clearLog(nil, flagsOf(), deps)
	require.NoError(t, err)

	content, err := os.ReadFile(deps.LogFilePath())
	require.NoError(t, err)
	require.Empty(t, content)
	require.Equal(t, []string{"Log file cleared"}, printed)
}

func TestClear_WriteError(t *testing.T) {
	var printed []string
	deps := fileDeps(t, "", &printed)
	deps.WriteFile = func(string, []byte, os.FileMode) error { return errors.New("denied") }

	err := clearLog(nil, flagsOf(), deps)
	require.ErrorContains(t, err, "denied")
}

func TestColorizeLogLine_PlainWhenUnstyled(t *testing.T) {
	style.Init(false, nil)
	for _, line := range strings.Split(strings.TrimSpace(sample), "\n") {
		require.Equal(t, line, colorizeLogLine(line))
	}
	require.Equal(t, "free text", colorizeLogLine("free text"))
}
