package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Command string
	Alias   string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{"default", "ocean", "mono"}

// Themes contains the built-in color themes. Dark variants use bright
// colors and light variants use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
		Command: "12",
		Alias:   "13",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "243",
		Header:  "bold",
		Command: "19",
		Alias:   "90",
	},
	"ocean-dark": {
		Success: "79",
		Warning: "222",
		Error:   "203",
		Info:    "117",
		Muted:   "244",
		Header:  "bold",
		Command: "75",
		Alias:   "116",
	},
	"ocean-light": {
		Success: "29",
		Warning: "136",
		Error:   "160",
		Info:    "25",
		Muted:   "245",
		Header:  "bold",
		Command: "24",
		Alias:   "30",
	},
	"mono-dark": {
		Success: "15",
		Warning: "bold",
		Error:   "bold",
		Info:    "252",
		Muted:   "242",
		Header:  "bold",
		Command: "15",
		Alias:   "248",
	},
	"mono-light": {
		Success: "232",
		Warning: "bold",
		Error:   "bold",
		Info:    "236",
		Muted:   "245",
		Header:  "bold",
		Command: "232",
		Alias:   "240",
	},
}

// colorConfigKeys maps config/env key names to ColorConfig field names.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_header":  "Header",
	"color_command": "Command",
	"color_alias":   "Alias",
}

// IsDarkBackground asks the terminal for its background. Returns true if
// detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name based on
// the terminal background. Names that already carry a suffix are kept.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (CMDEXT_COLOR_*)
// 2. Config file value
// 3. Theme value (from color_theme)
// 4. Default theme
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := ResolveThemeName("default")

	if envTheme := os.Getenv("CMDEXT_COLOR_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["color_theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	theme, ok := Themes[themeName]
	if !ok {
		theme = Themes["default-dark"]
	}

	result := theme
	for configKey, fieldName := range colorConfigKeys {
		if envVal := os.Getenv("CMDEXT_" + strings.ToUpper(configKey)); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}
		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	case "Command":
		c.Command = value
	case "Alias":
		c.Alias = value
	}
}
