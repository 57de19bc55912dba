package actions

import "github.com/footprint-tools/cmdext/internal/dispatchers"

func ShowVersion(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return showVersion(ctx.Positional(), ctx.Flags(), deps)
	}
}

func showVersion(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	_, _ = deps.Printf("cmdext version %v\n", deps.Version())
	return nil
}
