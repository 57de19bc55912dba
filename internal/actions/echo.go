package actions

import (
	"strings"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
)

// Echo prints its arguments joined by single spaces. Flags are printed
// like any other argument.
func Echo(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return echo(ctx.Args, deps)
	}
}

func echo(args []string, deps Deps) error {
	_, _ = deps.Println(strings.Join(args, " "))
	return nil
}
