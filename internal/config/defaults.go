package config

import (
	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/log"
)

// Defaults holds the in-code value of every visible key. Values are not
// persisted unless the user sets them.
var Defaults = buildDefaults()

func buildDefaults() map[string]func() string {
	defaults := make(map[string]func() string)
	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}
		value := key.Default
		defaults[key.Name] = func() string { return value }
	}
	return defaults
}

// Get returns the value for a config key from the default rc file,
// falling back to the in-code default.
func Get(key string) (string, bool) {
	if cfg, err := load(); err == nil {
		if value, ok := cfg[key]; ok {
			return value, true
		}
	}
	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}
	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
// An unreadable file leaves the defaults in place.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	cfg, err := load()
	if err != nil {
		log.Warn("config: using defaults: %v", err)
		return result, nil
	}
	for key, value := range cfg {
		result[key] = value
	}
	return result, nil
}

// Values reads and parses the file.
func (f RCFile) Values() (map[string]string, error) {
	lines, err := f.Read()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

func load() (map[string]string, error) {
	f, err := Default()
	if err != nil {
		return nil, err
	}
	return f.Values()
}
