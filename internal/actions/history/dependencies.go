package history

import (
	"github.com/footprint-tools/cmdext/internal/domain"
)

type Deps struct {
	List   func(domain.HistoryFilter) ([]domain.HistoryEntry, error)
	Clear  func() (int64, error)
	Get    func(string) (string, bool)
	Pager  func(string)
	Printf func(string, ...any) (int, error)
	Styler domain.Styler
}

// DefaultDeps wires the store and the output of app.
func DefaultDeps(app *domain.Application) Deps {
	return Deps{
		List:   app.History.List,
		Clear:  app.History.Clear,
		Get:    app.Config.Get,
		Pager:  app.Output.Pager,
		Printf: app.Output.Printf,
		Styler: app.Styler,
	}
}
