package manifest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/spf13/cast"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/events"
)

// Apply registers the commands and event hooks of m on e. Echo output and
// hook failures are written to out.
func (m *Manifest) Apply(e *dispatchers.Engine, out domain.OutputWriter) error {
	for _, c := range m.Commands {
		if err := register(e, out, nil, c); err != nil {
			return err
		}
	}

	// Shared by every hook of this manifest so a hook that triggers
	// another event does not loop.
	var busy atomic.Bool
	for _, h := range m.Events {
		e.On(h.Types, hookHandler(e, out, h, &busy))
	}
	return nil
}

func register(e *dispatchers.Engine, out domain.OutputWriter, prefix []string, c Command) error {
	path := append(append([]string{}, prefix...), c.Name)

	spec := dispatchers.CommandSpec{
		Path:    strings.Join(path, e.Separator()),
		Aliases: c.Aliases,
		Summary: c.Summary,
		Usage:   c.Usage,
		Enabled: c.Enabled,
	}
	switch {
	case c.Echo != "":
		spec.Action = echoAction(c.Echo, out)
	case len(c.Run) > 0:
		spec.Action = runAction(c.Run)
	}

	if err := e.Register(spec); err != nil {
		return fmt.Errorf("command %q: %w", spec.Path, err)
	}

	for _, sub := range c.Subcommands {
		if err := register(e, out, path, sub); err != nil {
			return err
		}
	}
	return nil
}

func echoAction(text string, out domain.OutputWriter) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		_, _ = out.Println(expand(text, argVars(ctx.Args)))
		return nil
	}
}

// runAction dispatches each line as a nested call and stops at the first
// error.
func runAction(lines []string) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		vars := argVars(ctx.Args)
		for _, line := range lines {
			line = expand(line, vars)
			if _, err := ctx.Dispatch(line); err != nil {
				return fmt.Errorf("%s: %w", line, err)
			}
		}
		return nil
	}
}

func hookHandler(e *dispatchers.Engine, out domain.OutputWriter, h Hook, busy *atomic.Bool) events.Handler {
	return func(args ...any) {
		if !busy.CompareAndSwap(false, true) {
			return
		}
		defer busy.Store(false)

		vars := hookVars(args)
		for _, line := range h.Run {
			line = expand(line, vars)
			if _, err := e.Exec(line); err != nil {
				_, _ = out.Println(fmt.Sprintf("%s: %v", line, err))
				return
			}
		}
	}
}

func argVars(args []string) map[string]string {
	vars := map[string]string{"args": strings.Join(args, " ")}
	for i, a := range args {
		vars[strconv.Itoa(i)] = a
	}
	return vars
}

// hookVars exposes the failing dispatch for the built-in failure events
// and the event arguments otherwise.
func hookVars(args []any) map[string]string {
	if len(args) == 1 {
		if ctx, ok := args[0].(*dispatchers.Context); ok {
			vars := argVars(ctx.Args)
			vars["path"] = ctx.Parse.Pathname
			vars["text"] = ctx.Text
			if ctx.Err != nil {
				vars["error"] = ctx.Err.Error()
			}
			return vars
		}
	}

	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = cast.ToString(a)
	}
	return argVars(strs)
}

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// expand replaces {name} with vars[name]. Unknown names are kept.
func expand(text string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		if v, ok := vars[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}
