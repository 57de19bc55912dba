package logs

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/ui/style"
)

const defaultLogLimit = 50

// View shows the last lines of the log file.
//
// Flags: --limit=N, --json.
func View(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return view(ctx.Positional(), ctx.Flags(), deps)
	}
}

func view(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	jsonOutput := flags.Has("--json")
	logPath := deps.LogFilePath()

	info, err := deps.Stat(logPath)
	if os.IsNotExist(err) {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("No log file found at " + logPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	limit := flags.Int("--limit", defaultLogLimit)
	if limit <= 0 {
		limit = defaultLogLimit
	}

	start := 0
	if len(lines) > limit {
		start = len(lines) - limit
	}

	if jsonOutput {
		return viewJSON(lines[start:], deps)
	}

	for _, line := range lines[start:] {
		_, _ = deps.Println(colorizeLogLine(line))
	}

	return nil
}

// logEntryRegex matches lines like: 2026-01-29 10:30:45 WRN alias "x" shadowed
var logEntryRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\s+(DBG|INF|WRN|ERR|FTL|PNC)\s+(.*)$`)

var levelNames = map[string]string{
	"DBG": "debug",
	"INF": "info",
	"WRN": "warn",
	"ERR": "error",
	"FTL": "fatal",
	"PNC": "panic",
}

func viewJSON(lines []string, deps Deps) error {
	type logEntry struct {
		Timestamp string `json:"timestamp,omitempty"`
		Level     string `json:"level,omitempty"`
		Message   string `json:"message"`
		Raw       bool   `json:"raw,omitempty"`
	}

	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}

		matches := logEntryRegex.FindStringSubmatch(line)
		if matches == nil {
			entries = append(entries, logEntry{Message: line, Raw: true})
			continue
		}
		entries = append(entries, logEntry{
			Timestamp: matches[1],
			Level:     levelNames[matches[2]],
			Message:   matches[3],
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// Clear empties the log file.
func Clear(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return clearLog(ctx.Positional(), ctx.Flags(), deps)
	}
}

func clearLog(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	logPath := deps.LogFilePath()

	if err := deps.WriteFile(logPath, []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	_, _ = deps.Println(style.Success("Log file cleared"))
	return nil
}

func colorizeLogLine(line string) string {
	matches := logEntryRegex.FindStringSubmatch(line)
	if matches == nil {
		return line
	}
	switch matches[2] {
	case "ERR", "FTL", "PNC":
		return style.Error(line)
	case "WRN":
		return style.Warning(line)
	case "INF":
		return style.Info(line)
	default:
		return style.Muted(line)
	}
}
