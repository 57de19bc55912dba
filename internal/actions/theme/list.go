package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/ui/style"
)

// List prints every theme with a color preview.
func List(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return list(ctx.Positional(), ctx.Flags(), deps)
	}
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	current, _ := deps.Get("color_theme")
	current = style.ResolveThemeName(current)

	_, _ = deps.Println("Available themes (* = current)")

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}

		_, _ = deps.Printf("%s%-14s  %s\n", marker, name, renderColorPreview(deps.Themes[name]))
	}

	_, _ = deps.Println("Use 'theme.set <name>' to change")
	return nil
}

// renderColorPreview returns colored text samples for a theme.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted) +
		"   " +
		colorize("git.commit ", cfg.Command) +
		colorize("ci", cfg.Alias)
}
