package theme

import (
	"github.com/footprint-tools/cmdext/internal/config"
	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/ui/style"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Lock       func(func() error) error
	Set        func([]string, string, string) ([]string, bool)
	Get        func(string) (string, bool)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	ThemeNames []string
	Themes     map[string]style.ColorConfig

	// Apply restyles the running process; nil leaves it as is.
	Apply func(theme string)
}

// DefaultDeps wires the rc file and the built-in themes to out.
func DefaultDeps(out domain.OutputWriter) Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Lock:       config.WithLock,
		Set:        config.Set,
		Get:        config.Get,
		Printf:     out.Printf,
		Println:    out.Println,
		ThemeNames: themeNames(),
		Themes:     style.Themes,
		Apply: func(theme string) {
			style.Init(style.Enabled(), map[string]string{"color_theme": theme})
		},
	}
}

func themeNames() []string {
	var names []string
	for _, base := range style.BaseThemeNames {
		names = append(names, base+"-dark", base+"-light")
	}
	return names
}
