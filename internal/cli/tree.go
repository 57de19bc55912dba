package cli

import (
	"github.com/footprint-tools/cmdext/internal/actions"
	"github.com/footprint-tools/cmdext/internal/actions/completions"
	configactions "github.com/footprint-tools/cmdext/internal/actions/config"
	"github.com/footprint-tools/cmdext/internal/actions/help"
	"github.com/footprint-tools/cmdext/internal/actions/history"
	"github.com/footprint-tools/cmdext/internal/actions/logs"
	"github.com/footprint-tools/cmdext/internal/actions/theme"
	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/domain"
)

// BuildTree registers the console built-ins on e. Paths are joined with
// the engine separator, so the built-ins follow a custom separator.
func BuildTree(e *dispatchers.Engine, app *domain.Application) error {
	p := func(segments ...string) string {
		path := segments[0]
		for _, s := range segments[1:] {
			path += e.Separator() + s
		}
		return path
	}

	root := actions.DefaultDeps(app.Output, app.Styler)
	helpDeps := help.DefaultDeps(app.Output, app.Styler)
	historyDeps := history.DefaultDeps(app)
	configDeps := configactions.DefaultDeps(app.Output)
	themeDeps := theme.DefaultDeps(app.Output)
	logDeps := logs.DefaultDeps(app.Output)
	completeDeps := completions.DefaultDeps(app.Output)

	return e.Register(
		dispatchers.CommandSpec{
			Path:    "help",
			Aliases: []string{"?"},
			Summary: "Show commands or the help of one command",
			Usage:   "help [command]",
			Action:  help.Show(helpDeps),
		},
		dispatchers.Command("version", "Show cmdext version", actions.ShowVersion(root)),
		dispatchers.CommandSpec{
			Path:    "echo",
			Summary: "Print the arguments",
			Usage:   "echo [args...]",
			Action:  actions.Echo(root),
		},
		dispatchers.CommandSpec{
			Path:    "emit",
			Summary: "Fire a user-defined event",
			Usage:   "emit <event> [args...]",
			Action:  actions.Emit(root),
		},

		dispatchers.CommandSpec{
			Path:    "complete",
			Summary: "List command paths starting with a prefix",
			Usage:   "complete [prefix]",
			Action:  completions.Complete(completeDeps),
		},

		dispatchers.Group("history", "Dispatch history"),
		dispatchers.CommandSpec{
			Path:    p("history", "list"),
			Aliases: []string{"ls"},
			Summary: "List recent dispatches",
			Usage:   p("history", "list") + " [--limit=N] [--outcome=ok|not_found|disabled|failed]",
			Action:  history.List(historyDeps),
		},
		dispatchers.Command(p("history", "clear"), "Delete the dispatch history", history.Clear(historyDeps)),

		dispatchers.Group("config", "Manage configuration"),
		dispatchers.CommandSpec{
			Path:    p("config", "get"),
			Summary: "Get a config value",
			Usage:   p("config", "get") + " <key>",
			Action:  configactions.Get(configDeps),
		},
		dispatchers.CommandSpec{
			Path:    p("config", "set"),
			Summary: "Set a config value",
			Usage:   p("config", "set") + " <key> <value>",
			Action:  configactions.Set(configDeps),
		},
		dispatchers.CommandSpec{
			Path:    p("config", "unset"),
			Summary: "Remove a config value",
			Usage:   p("config", "unset") + " <key> | --all",
			Action:  configactions.Unset(configDeps),
		},
		dispatchers.CommandSpec{
			Path:    p("config", "list"),
			Aliases: []string{"ls"},
			Summary: "List config values",
			Usage:   p("config", "list") + " [--json]",
			Action:  configactions.List(configDeps),
		},

		dispatchers.Group("theme", "Color themes"),
		dispatchers.Command(p("theme", "list"), "List color themes", theme.List(themeDeps), "ls"),
		dispatchers.CommandSpec{
			Path:    p("theme", "set"),
			Summary: "Choose a color theme",
			Usage:   p("theme", "set") + " <name>",
			Action:  theme.Set(themeDeps),
		},

		dispatchers.Group("logs", "Log file"),
		dispatchers.CommandSpec{
			Path:    p("logs", "show"),
			Summary: "Show the last log lines",
			Usage:   p("logs", "show") + " [--limit=N] [--json]",
			Action:  logs.View(logDeps),
		},
		dispatchers.Command(p("logs", "clear"), "Empty the log file", logs.Clear(logDeps)),

		dispatchers.Command("exit", "Leave the console", actions.Exit(), "quit", "q"),
	)
}
