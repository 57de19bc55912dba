package actions

import (
	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/usage"
)

// Emit fires a user-defined event with the remaining arguments, after
// conversion.
func Emit(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, values ...any) error {
		return emit(ctx, values, deps)
	}
}

func emit(ctx *dispatchers.Context, values []any, deps Deps) error {
	if len(ctx.Args) == 0 {
		return usage.MissingArgument("event")
	}

	typ := ctx.Args[0]
	if !ctx.Engine.Listening(typ) {
		_, _ = deps.Println(deps.Styler.Muted("no listeners for " + typ))
		return nil
	}

	ctx.Emit(typ, values[1:]...)
	return nil
}
