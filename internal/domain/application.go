package domain

// Pager shows long output, paging it when the output is a terminal.
type Pager interface {
	OutputWriter
	Pager(content string)
}

// Application holds the wired services shared by the built-in commands.
type Application struct {
	Config  ConfigProvider
	History HistoryStore
	Logger  Logger
	Output  Pager
	Styler  Styler
}

// Close releases the history store and the logger.
func (a *Application) Close() error {
	var first error
	if a.History != nil {
		first = a.History.Close()
	}
	if a.Logger != nil {
		if err := a.Logger.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
