// Package completions lists the command paths of an engine for prompt
// completion.
package completions

import (
	"strings"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
)

// CommandInfo represents a command extracted from the registry
type CommandInfo struct {
	Name     string
	Path     []string // canonical segments from the root, e.g. ["config", "set"]
	Pathname string
	Aliases  []string
	Summary  string
	Enabled  bool
}

// ExtractCommands walks the registry and extracts all commands, depth
// first in registration order.
func ExtractCommands(e *dispatchers.Engine) []CommandInfo {
	var commands []CommandInfo
	e.Walk(func(path []string, def *dispatchers.Definition) bool {
		commands = append(commands, CommandInfo{
			Name:     path[len(path)-1],
			Path:     path,
			Pathname: strings.Join(path, e.Separator()),
			Aliases:  append([]string(nil), def.Aliases...),
			Summary:  def.Summary,
			Enabled:  def.IsEnabled(),
		})
		return true
	})
	return commands
}

// FindCommand finds a command by its path
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if pathsEqual(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

// Pathnames returns the pathnames of every runnable command.
func Pathnames(commands []CommandInfo) []string {
	var out []string
	for _, c := range commands {
		if c.Enabled {
			out = append(out, c.Pathname)
		}
	}
	return out
}

// Complete returns the runnable pathnames starting with prefix.
func Complete(commands []CommandInfo, prefix string, caseInsensitive bool) []string {
	var out []string
	for _, p := range Pathnames(commands) {
		if hasPrefix(p, prefix, caseInsensitive) {
			out = append(out, p)
		}
	}
	return out
}

func hasPrefix(s, prefix string, fold bool) bool {
	if len(prefix) > len(s) {
		return false
	}
	if fold {
		return strings.EqualFold(s[:len(prefix)], prefix)
	}
	return s[:len(prefix)] == prefix
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
