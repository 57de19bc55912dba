package config

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
)

// EngineOptions maps rc values onto engine options. Values that do not
// parse keep the engine default.
func EngineOptions(cfg map[string]string) dispatchers.Options {
	opts := dispatchers.Options{
		Separator: cfg["separator"],
		Quotes:    strings.Fields(cfg["quotes"]),
	}

	if v, ok := cfg["case_insensitive"]; ok {
		opts.CaseInsensitive, _ = cast.ToBoolE(v)
	}
	if v, ok := cfg["convert_numbers"]; ok {
		opts.ConvertNumbers, _ = cast.ToBoolE(v)
	}
	if v, ok := cfg["max_depth"]; ok {
		if n, err := cast.ToIntE(v); err == nil {
			opts.MaxDepth = n
		}
	}

	return opts
}
