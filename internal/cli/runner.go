package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/footprint-tools/cmdext/internal/actions"
	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/log"
	"github.com/footprint-tools/cmdext/internal/usage"
)

// Result is the outcome of one input line.
type Result struct {
	Context *dispatchers.Context
	Outcome domain.Outcome
	Err     error

	// Exit is set when the line asked the console to stop.
	Exit bool
}

// Runner executes input lines and records them in the history store.
type Runner struct {
	Engine  *dispatchers.Engine
	History domain.HistoryStore
	Logger  domain.Logger
	Now     func() time.Time
}

func NewRunner(e *dispatchers.Engine, app *domain.Application) *Runner {
	r := &Runner{
		Engine:  e,
		History: app.History,
		Logger:  app.Logger,
		Now:     time.Now,
	}
	if r.Logger == nil {
		r.Logger = log.NopLogger{}
	}
	return r
}

// Run dispatches line. Blank lines are ignored and not recorded.
func (r *Runner) Run(line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{}
	}

	ctx, err := r.Engine.Exec(line)

	res := Result{Context: ctx, Err: err}
	if errors.Is(err, actions.ErrExit) {
		res.Exit = true
		res.Err = nil
	}
	res.Outcome = Classify(ctx, res.Err)

	if res.Outcome == domain.OutcomeOK {
		r.Logger.Debug("dispatch ok: %s", line)
	} else {
		r.Logger.Info("dispatch %s: %s: %v", res.Outcome, line, describe(ctx, res.Err))
	}

	r.record(line, res)
	return res
}

func (r *Runner) record(line string, res Result) {
	if r.History == nil {
		return
	}

	entry := domain.HistoryEntry{
		Text:      line,
		Outcome:   res.Outcome,
		CreatedAt: r.Now(),
	}
	if res.Context != nil {
		entry.DispatchID = res.Context.ID.String()
		entry.Path = res.Context.Pathname()
	}
	if msg := describe(res.Context, res.Err); msg != nil {
		entry.Message = msg.Error()
	}

	if err := r.History.Insert(entry); err != nil {
		r.Logger.Warn("record history: %v", err)
	}
}

// Classify maps a dispatch to a history outcome. Failures delivered to
// listeners instead of returned are classified from the context.
func Classify(ctx *dispatchers.Context, err error) domain.Outcome {
	if err == nil && ctx != nil && ctx.Failed && ctx.Err != nil {
		err = ctx.Err
	}

	switch {
	case err == nil:
		return domain.OutcomeOK
	case usage.IsNotFound(err):
		return domain.OutcomeNotFound
	case usage.IsDisabled(err):
		return domain.OutcomeDisabled
	default:
		return domain.OutcomeFailed
	}
}

func describe(ctx *dispatchers.Context, err error) error {
	if err != nil {
		return err
	}
	if ctx != nil && ctx.Err != nil {
		return ctx.Err
	}
	return nil
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}
