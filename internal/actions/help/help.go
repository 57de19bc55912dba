// Package help renders the command tree of a running engine.
package help

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/usage"
)

const suggestionsCount = 3

// Show prints the top level commands, or the help of one command. The
// path may be given as one argument ("history.list") or as segments
// ("history list").
func Show(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return show(ctx.Engine, ctx.Positional(), deps)
	}
}

func show(e *dispatchers.Engine, args []string, deps Deps) error {
	pathname := strings.Join(args, e.Separator())
	if pathname == "" {
		return showRoot(e, deps)
	}

	node, ok := e.Resolve(pathname)
	if !ok {
		return usage.CommandNotFound(pathname, e.Suggest(pathname, suggestionsCount)...)
	}
	return showNode(e, node, deps)
}

func showRoot(e *dispatchers.Engine, deps Deps) error {
	children, _ := e.Children("")
	_, _ = deps.Println(deps.Styler.Header("Commands"))
	if len(children) == 0 {
		_, _ = deps.Println(deps.Styler.Muted("  (none)"))
		return nil
	}
	printChildren(children, deps)
	_, _ = deps.Println("")
	_, _ = deps.Println(deps.Styler.Muted("Use 'help <command>' for details"))
	return nil
}

func showNode(e *dispatchers.Engine, node *dispatchers.Node, deps Deps) error {
	sep := e.Separator()
	title := deps.Styler.Command(node.Pathname(sep))
	if !node.Enabled {
		title += " " + deps.Styler.Muted(disabledMarker(node))
	}
	_, _ = deps.Println(title)

	if node.Summary != "" {
		_, _ = deps.Printf("  %s\n", node.Summary)
	}
	if node.Usage != "" {
		_, _ = deps.Printf("\n%s\n  %s\n", deps.Styler.Header("Usage"), node.Usage)
	}
	if len(node.Aliases) > 0 {
		_, _ = deps.Printf("\n%s\n  %s\n", deps.Styler.Header("Aliases"), deps.Styler.Alias(strings.Join(node.Aliases, ", ")))
	}

	if node.HasSubcommands() {
		children, _ := e.Children(node.Pathname(sep))
		_, _ = deps.Printf("\n%s\n", deps.Styler.Header("Subcommands"))
		printChildren(children, deps)
	}
	return nil
}

func printChildren(children []*dispatchers.Node, deps Deps) {
	width := 0
	for _, c := range children {
		width = max(width, len(c.Name))
	}

	for _, c := range children {
		line := "  " + deps.Styler.Command(fmt.Sprintf("%-*s", width, c.Name))
		if c.Summary != "" {
			line += "  " + c.Summary
		}
		if len(c.Aliases) > 0 {
			line += "  " + deps.Styler.Alias("("+strings.Join(c.Aliases, ", ")+")")
		}
		if !c.Enabled {
			line += "  " + deps.Styler.Muted(disabledMarker(c))
		}
		_, _ = deps.Println(line)
	}
}

// disabledMarker tells groups apart from commands switched off.
func disabledMarker(n *dispatchers.Node) string {
	if n.Callback == nil {
		if n.HasSubcommands() {
			return "[group]"
		}
		return "(no handler)"
	}
	return "(disabled)"
}
