package app

import (
	"io"
	"os"

	"github.com/spf13/cast"

	"github.com/footprint-tools/cmdext/internal/config"
	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/log"
	"github.com/footprint-tools/cmdext/internal/paths"
	"github.com/footprint-tools/cmdext/internal/store"
	"github.com/footprint-tools/cmdext/internal/ui"
	"github.com/footprint-tools/cmdext/internal/ui/style"
)

// Version is set at build time with -ldflags "-X ...app.Version=v1.2.3".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool

	// Log options
	LogEnabled bool
	LogLevel   log.Level

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// Output receives command output. Nil means stdout.
	Output io.Writer

	// DBPath overrides the history database location.
	DBPath string
}

// DefaultOptions reads the defaults from the rc file.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	logEnabled := true
	if v, ok := cfg["enable_log"]; ok {
		logEnabled = cast.ToBool(v)
	}

	return Options{
		LogEnabled:   logEnabled,
		LogLevel:     log.ParseLevel(cfg["log_level"]),
		StyleEnabled: true,
		StyleConfig:  cfg,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		// A log file that cannot be opened is not fatal.
		if l, err := log.New(paths.LogFilePath(), opts.LogLevel); err == nil {
			logger = l
		}
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.DBPath()
	}
	history, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	writerOpts := []ui.WriterOption{ui.WithConfigGetter(config.Get)}
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	logger.Debug("app: started %s, history at %s", Version, dbPath)

	return &domain.Application{
		Config:  config.NewProvider(),
		History: history,
		Logger:  logger,
		Output:  ui.NewWriterTo(out, writerOpts...),
		Styler:  style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application around an open history store.
// Uses NopLogger, no styling and no pager.
func NewForTesting(history domain.HistoryStore, out io.Writer) *domain.Application {
	return &domain.Application{
		Config:  config.NewProvider(),
		History: history,
		Logger:  log.NopLogger{},
		Output:  ui.NewWriterTo(out, ui.WithPagerDisabled()),
		Styler:  style.NopStyler{},
	}
}
