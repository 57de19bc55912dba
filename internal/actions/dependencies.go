package actions

import (
	"github.com/footprint-tools/cmdext/internal/app"
	"github.com/footprint-tools/cmdext/internal/domain"
)

type Deps struct {
	Printf  func(format string, a ...any) (n int, err error)
	Println func(a ...any) (n int, err error)
	Version func() string
	Styler  domain.Styler
}

func DefaultDeps(out domain.OutputWriter, styler domain.Styler) Deps {
	return Deps{
		Printf:  out.Printf,
		Println: out.Println,
		Version: func() string { return app.Version },
		Styler:  styler,
	}
}
