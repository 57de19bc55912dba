// Package manifest loads command trees from YAML or TOML files and
// registers them on an engine.
//
// A command is either a string (shorthand for echo) or a table with the
// keys aliases, summary, usage, echo, run, enabled and subcommands. Tables
// without echo or run are groups. Events map hub event types to command
// lines that run when the event fires.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/cmdext/internal/coerce"
	"github.com/footprint-tools/cmdext/internal/dispatchers"
)

type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("unsupported manifest extension %q", filepath.Ext(path))
	}
}

// Manifest is a decoded command file.
type Manifest struct {
	// Options holds the raw options section, see dispatchers.OptionsFromMap.
	Options  map[string]any
	Commands []Command
	Events   []Hook
}

// Command is one node of the manifest tree.
type Command struct {
	Name        string
	Aliases     []string
	Summary     string
	Usage       string
	Echo        string
	Run         []string
	Enabled     *bool
	Subcommands []Command
}

// Hook runs command lines when an event fires. Types may list several
// event types separated by whitespace.
type Hook struct {
	Types string
	Run   []string
}

var sectionDefaults = map[string]any{
	"options":  newTable(),
	"commands": newTable(),
	"events":   newTable(),
}

var commandDefaults = map[string]any{
	"aliases":     []any{},
	"summary":     "",
	"usage":       "",
	"echo":        "",
	"run":         []any{},
	"enabled":     nil,
	"subcommands": newTable(),
}

var commandAllowed = map[string][]coerce.Tag{
	"aliases": {coerce.String},
	"run":     {coerce.String},
	"enabled": {coerce.Bool},
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest. Values of the wrong type are replaced by
// defaults rather than reported.
func Parse(data []byte, format Format) (*Manifest, error) {
	var (
		root table
		err  error
	)
	switch format {
	case YAML:
		root, err = decodeYAML(data)
	case TOML:
		root, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	sections := coerce.Shape(root.plain(), sectionDefaults, nil)

	m := &Manifest{}
	m.Options = sections["options"].(table).plain()

	commands := sections["commands"].(table)
	for pair := commands.Oldest(); pair != nil; pair = pair.Next() {
		m.Commands = append(m.Commands, buildCommand(pair.Key, pair.Value))
	}

	events := sections["events"].(table)
	for pair := events.Oldest(); pair != nil; pair = pair.Next() {
		if lines := macroLines(pair.Value); len(lines) > 0 {
			m.Events = append(m.Events, Hook{Types: pair.Key, Run: lines})
		}
	}

	return m, nil
}

func buildCommand(name string, v any) Command {
	cmd := Command{Name: name}

	if text, ok := v.(string); ok {
		cmd.Echo = text
		return cmd
	}
	t, ok := v.(table)
	if !ok {
		return cmd
	}

	fields := coerce.Shape(t.plain(), commandDefaults, commandAllowed)

	cmd.Summary, _ = fields["summary"].(string)
	cmd.Usage, _ = fields["usage"].(string)
	cmd.Echo, _ = fields["echo"].(string)
	cmd.Run = macroLines(fields["run"])

	if alias, ok := fields["aliases"].(string); ok {
		cmd.Aliases = []string{alias}
	} else {
		cmd.Aliases = coerce.Strings(fields["aliases"])
	}

	if enabled, ok := fields["enabled"].(bool); ok {
		cmd.Enabled = &enabled
	}

	subs := fields["subcommands"].(table)
	for pair := subs.Oldest(); pair != nil; pair = pair.Next() {
		cmd.Subcommands = append(cmd.Subcommands, buildCommand(pair.Key, pair.Value))
	}

	return cmd
}

// macroLines accepts a string or a list of strings. Each string may hold
// several command lines separated by ';'.
func macroLines(v any) []string {
	var raw []string
	if s, ok := v.(string); ok {
		raw = []string{s}
	} else {
		raw = coerce.Strings(v)
	}

	var lines []string
	for _, r := range raw {
		for _, line := range strings.Split(r, ";") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// EngineOptions overlays the options section on base. Only keys present
// in the manifest change base.
func (m *Manifest) EngineOptions(base dispatchers.Options) dispatchers.Options {
	raw := make(map[string]any, len(m.Options))
	for k, v := range m.Options {
		raw[k] = v
	}
	if v, ok := raw["convert_numbers"]; ok {
		if _, set := raw["converter"]; !set {
			raw["converter"] = v
		}
	}

	parsed := dispatchers.OptionsFromMap(raw)

	if _, ok := raw["separator"]; ok {
		base.Separator = parsed.Separator
	}
	if _, ok := raw["quotes"]; ok {
		base.Quotes = parsed.Quotes
	}
	if _, ok := raw["case_insensitive"]; ok {
		base.CaseInsensitive = parsed.CaseInsensitive
	}
	if _, ok := raw["max_depth"]; ok {
		base.MaxDepth = parsed.MaxDepth
	}
	if _, ok := raw["converter"]; ok {
		base.ConvertNumbers = parsed.ConvertNumbers
		if parsed.Converter != nil {
			base.Converter = parsed.Converter
		}
	}
	return base
}
