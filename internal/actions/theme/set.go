package theme

import (
	"fmt"
	"slices"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/ui/style"
	"github.com/footprint-tools/cmdext/internal/usage"
)

// Set stores color_theme. Base names such as "ocean" follow the terminal
// background.
func Set(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return setTheme(ctx.Positional(), ctx.Flags(), deps)
	}
}

func setTheme(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("theme")
	}

	themeName := args[0]

	_, known := deps.Themes[themeName]
	if !known && !slices.Contains(style.BaseThemeNames, themeName) {
		_, _ = deps.Printf("%s unknown theme: %s\n", style.Error("error:"), themeName)
		_, _ = deps.Println("available themes:")
		for _, name := range deps.ThemeNames {
			_, _ = deps.Printf("  %s\n", name)
		}
		return fmt.Errorf("unknown theme: %s", themeName)
	}

	update := func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, _ = deps.Set(lines, "color_theme", themeName)
		return deps.WriteLines(lines)
	}

	var err error
	if deps.Lock != nil {
		err = deps.Lock(update)
	} else {
		err = update()
	}
	if err != nil {
		return err
	}

	if deps.Apply != nil {
		deps.Apply(themeName)
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(themeName))
	return nil
}
