package config

import (
	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/usage"
)

// Set writes one key to the rc file. Only known keys are accepted.
func Set(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return set(ctx.Positional(), ctx.Flags(), deps)
	}
}

func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	value := args[1]

	if _, ok := domain.LookupConfigKey(key); !ok {
		return usage.InvalidConfigKey(key)
	}

	var updated bool
	err := withLock(deps, func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, updated = deps.Set(lines, key, value)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}

	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}
