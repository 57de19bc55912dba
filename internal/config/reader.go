package config

import (
	"strings"

	"github.com/footprint-tools/cmdext/internal/domain"
)

// initializeDefaults creates config lines with default values for visible keys.
func initializeDefaults() []string {
	var lines []string

	lines = append(lines, "# cmdext configuration")
	lines = append(lines, "# Edit values below or use: config.set <key> <value>")
	lines = append(lines, "")

	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}

		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}

		// Empty defaults are optional overrides.
		if value == "" {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}

		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}
		lines = append(lines, key.Name+"="+value)
	}

	return lines
}
