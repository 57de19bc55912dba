package help

import (
	"github.com/footprint-tools/cmdext/internal/domain"
)

type Deps struct {
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
	Styler  domain.Styler
}

func DefaultDeps(out domain.OutputWriter, styler domain.Styler) Deps {
	return Deps{
		Printf:  out.Printf,
		Println: out.Println,
		Styler:  styler,
	}
}
