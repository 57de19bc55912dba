package history

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/format"
	"github.com/footprint-tools/cmdext/internal/usage"
)

const defaultLimit = 20

// List shows recent dispatches, newest first.
//
// Flags: --limit=N, --outcome=<ok|not_found|disabled|failed>.
func List(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return list(ctx.Positional(), ctx.Flags(), deps)
	}
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	filter := domain.HistoryFilter{Limit: configuredLimit(deps)}

	if raw := flags.String("--limit", ""); raw != "" {
		n, err := cast.ToIntE(raw)
		if err != nil || n < 0 {
			return usage.InvalidFlag("--limit=" + raw)
		}
		filter.Limit = n
	}

	if raw := flags.String("--outcome", ""); raw != "" {
		outcome := domain.ParseOutcome(raw)
		if outcome.String() != raw {
			return usage.InvalidFlag("--outcome=" + raw)
		}
		filter.Outcome = &outcome
	}

	entries, err := deps.List(filter)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(entries) == 0 {
		_, _ = deps.Printf("%s\n", deps.Styler.Muted("no history yet"))
		return nil
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			deps.Styler.Muted(format.Full(e.CreatedAt.Local(), deps.Get)),
			styleOutcome(deps.Styler, e.Outcome),
			e.Text,
		)
	}

	deps.Pager(b.String())
	return nil
}

func configuredLimit(deps Deps) int {
	if deps.Get == nil {
		return defaultLimit
	}
	value, ok := deps.Get("history_limit")
	if !ok {
		return defaultLimit
	}
	n, err := cast.ToIntE(value)
	if err != nil || n < 0 {
		return defaultLimit
	}
	return n
}

func styleOutcome(s domain.Styler, o domain.Outcome) string {
	label := fmt.Sprintf("%-9s", o.String())
	switch o {
	case domain.OutcomeOK:
		return s.Success(label)
	case domain.OutcomeDisabled:
		return s.Warning(label)
	default:
		return s.Error(label)
	}
}
