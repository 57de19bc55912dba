package config

import (
	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/usage"
)

// Get prints the value of one key.
func Get(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return get(ctx.Positional(), ctx.Flags(), deps)
	}
}

func get(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]

	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}
