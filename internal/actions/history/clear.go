package history

import (
	"fmt"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
)

// Clear deletes every recorded dispatch.
func Clear(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return clearAll(ctx.Positional(), ctx.Flags(), deps)
	}
}

func clearAll(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	removed, err := deps.Clear()
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	_, _ = deps.Printf("removed %d entries\n", removed)
	return nil
}
