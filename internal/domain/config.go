package domain

// ConfigKey describes a supported configuration key.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Hidden      bool // internal keys are not written to a fresh config file
}

// ConfigKeys lists every supported key in display order.
var ConfigKeys = []ConfigKey{
	{Name: "separator", Default: ".", Description: "Separator between command path segments"},
	{Name: "quotes", Default: `" '`, Description: "Space separated quote markers for arguments"},
	{Name: "case_insensitive", Default: "false", Description: "Match command names ignoring case"},
	{Name: "convert_numbers", Default: "false", Description: "Pass numeric arguments to handlers as numbers"},
	{Name: "max_depth", Default: "16", Description: "Limit for commands that dispatch other commands"},
	{Name: "commands_file", Default: "", Description: "YAML or TOML file with extra commands"},
	{Name: "history_limit", Default: "20", Description: "Entries shown by 'history.list'"},
	{Name: "display_date", Default: "yyyy-mm-dd", Description: "Date format (yyyy-mm-dd, dd/mm/yyyy, mm/dd/yyyy or a Go layout)"},
	{Name: "display_time", Default: "24h", Description: "Time format (24h or 12h)"},
	{Name: "enable_log", Default: "true", Description: "Write a log file"},
	{Name: "log_level", Default: "info", Description: "Minimum log level (debug, info, warn, error)"},
	{Name: "color_theme", Default: "default", Description: "Color theme (default, ocean, mono)"},
	{Name: "pager", Default: "", Description: "Pager for long output in one-shot mode"},
	{Name: "color_success", Hidden: true},
	{Name: "color_warning", Hidden: true},
	{Name: "color_error", Hidden: true},
	{Name: "color_info", Hidden: true},
	{Name: "color_muted", Hidden: true},
	{Name: "color_header", Hidden: true},
	{Name: "color_command", Hidden: true},
	{Name: "color_alias", Hidden: true},
}

// LookupConfigKey returns the key description for name.
func LookupConfigKey(name string) (ConfigKey, bool) {
	for _, k := range ConfigKeys {
		if k.Name == name {
			return k, true
		}
	}
	return ConfigKey{}, false
}
