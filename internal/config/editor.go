package config

import "strings"

// Set replaces the line holding key or appends one. It reports whether an
// existing line was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}

		if strings.TrimSpace(parts[0]) == key {
			lines[i] = key + "=" + quoteValue(value)
			return lines, true
		}
	}

	lines = append(lines, key+"="+quoteValue(value))
	return lines, false
}

// quoteValue wraps values with surrounding spaces so Parse keeps them.
func quoteValue(value string) string {
	if value != strings.TrimSpace(value) {
		return "\"" + value + "\""
	}
	return value
}

// Unset drops every line holding key.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			out = append(out, line)
			continue
		}

		if strings.TrimSpace(parts[0]) == key {
			removed = true
			continue
		}

		out = append(out, line)
	}

	return out, removed
}
