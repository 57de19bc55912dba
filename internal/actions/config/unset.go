package config

import (
	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/usage"
)

// Unset removes one key, or every key with --all.
func Unset(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return unset(ctx.Positional(), ctx.Flags(), deps)
	}
}

func unset(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if flags.Has("--all") {
		if len(args) > 0 {
			return usage.InvalidFlag("--all does not take arguments")
		}

		if err := withLock(deps, func() error { return deps.WriteLines([]string{}) }); err != nil {
			return err
		}

		_, _ = deps.Println("all config entries removed")
		return nil
	}

	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]

	var removed bool
	err := withLock(deps, func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, removed = deps.Unset(lines, key)
		if !removed {
			return nil
		}
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}
	if !removed {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
