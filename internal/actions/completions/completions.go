package completions

import (
	"strings"

	"github.com/footprint-tools/cmdext/internal/completions"
	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/domain"
)

type Deps struct {
	Println func(...any) (int, error)
}

func DefaultDeps(out domain.OutputWriter) Deps {
	return Deps{
		Println: out.Println,
	}
}

// Complete prints the runnable command paths starting with the prefix,
// one per line. Shell completion scripts can call it in one-shot mode.
func Complete(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return completeCmd(ctx.Engine, ctx.Positional(), deps)
	}
}

func completeCmd(e *dispatchers.Engine, args []string, deps Deps) error {
	prefix := strings.Join(args, " ")

	commands := completions.ExtractCommands(e)
	for _, p := range completions.Complete(commands, prefix, e.CaseInsensitive()) {
		_, _ = deps.Println(p)
	}
	return nil
}
