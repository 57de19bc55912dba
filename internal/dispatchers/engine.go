package dispatchers

import (
	"github.com/google/uuid"

	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/events"
	"github.com/footprint-tools/cmdext/internal/tokenizer"
	"github.com/footprint-tools/cmdext/internal/usage"
)

const defaultSuggestionsCount = 3

// Engine parses input lines, resolves them against its registry and runs
// the matching handler.
//
// A failed resolution is returned as a *usage.Error unless a listener is
// registered for events.CommandError or for the specific failure event, in
// which case the events are emitted and no error is returned.
type Engine struct {
	*Registry

	hub       *events.Hub
	converter Converter
	quotes    []string
	maxDepth  int
	logger    domain.Logger
}

// New creates an engine. It never fails; see Options for defaults.
func New(opts Options) *Engine {
	opts = opts.withDefaults()

	return &Engine{
		Registry:  NewRegistry(opts.Commands, opts.Separator, opts.CaseInsensitive, opts.Logger),
		hub:       events.NewHub(),
		converter: opts.Converter,
		quotes:    opts.Quotes,
		maxDepth:  opts.MaxDepth,
		logger:    opts.Logger,
	}
}

// Quotes returns the configured quote markers, longest first.
func (e *Engine) Quotes() []string {
	return append([]string{}, e.quotes...)
}

// Hub returns the engine's event hub.
func (e *Engine) Hub() *events.Hub {
	return e.hub
}

// Tokenize splits text into arguments using quotes, or the configured
// quote markers when none are given.
func (e *Engine) Tokenize(text string, quotes ...string) []string {
	if len(quotes) == 0 {
		quotes = e.quotes
	}
	return tokenizer.Tokenize(text, quotes...)
}

// ParseCommandLine splits text into a command path and its arguments.
func (e *Engine) ParseCommandLine(text string) ParseResult {
	result, _ := e.parse(text)
	return result
}

func (e *Engine) parse(text string) (ParseResult, *Node) {
	pathname, argname := tokenizer.ParseCommandLine(text)
	node, ok := e.Resolve(pathname)

	return ParseResult{
		Text:     text,
		Pathname: pathname,
		Path:     e.SplitPath(pathname),
		Argname:  argname,
		Args:     e.Tokenize(argname),
		Exists:   ok,
	}, node
}

// Dispatch runs text and returns the engine for chaining.
func (e *Engine) Dispatch(text string) (*Engine, error) {
	if _, err := e.Exec(text); err != nil {
		return nil, err
	}
	return e, nil
}

// Exec runs text and returns its context. The error is either the typed
// resolution failure or whatever the handler returned.
func (e *Engine) Exec(text string) (*Context, error) {
	return e.exec(text, 0)
}

func (e *Engine) exec(text string, depth int) (*Context, error) {
	parsed, node := e.parse(text)

	ctx := &Context{
		ID:      uuid.New(),
		Engine:  e,
		Text:    text,
		Args:    parsed.Args,
		Command: node,
		Parse:   parsed,
		Depth:   depth,
	}

	if depth > e.maxDepth {
		ctx.Err = usage.RecursionLimit(parsed.Pathname, e.maxDepth)
		ctx.Failed = true
		e.logger.Warn("dispatch: %q stopped at depth %d", parsed.Pathname, depth)
		return ctx, ctx.Err
	}

	var specific string
	switch {
	case node == nil:
		suggestions := e.Suggest(parsed.Pathname, defaultSuggestionsCount)
		ctx.Err = usage.CommandNotFound(parsed.Pathname, suggestions...)
		specific = events.CommandNotFound
	case !node.Enabled:
		ctx.Err = usage.DisabledCommand(parsed.Pathname)
		specific = events.DisabledCommand
	}

	if ctx.Err != nil {
		ctx.Failed = true
		e.logger.Debug("dispatch: %q failed: %s", parsed.Pathname, ctx.Err.Kind)

		if !e.hub.Has(events.CommandError, specific) {
			return ctx, ctx.Err
		}
		e.hub.Emit(events.CommandError, ctx)
		e.hub.Emit(specific, ctx)
		return ctx, nil
	}

	e.logger.Debug("dispatch: %q -> %s with %d args", parsed.Pathname, node.Pathname(e.Separator()), len(ctx.Args))
	return ctx, node.Callback(ctx, e.convert(ctx.Args)...)
}

// On registers a listener for each whitespace separated event type.
func (e *Engine) On(types string, handler events.Handler) *Engine {
	e.hub.On(types, handler)
	return e
}

// OnMap registers several listeners at once.
func (e *Engine) OnMap(m map[string]events.Handler) *Engine {
	e.hub.OnMap(m)
	return e
}

// Emit fires typ with args.
func (e *Engine) Emit(typ string, args ...any) *Engine {
	e.hub.Emit(typ, args...)
	return e
}

// Listening reports whether any of types has a listener.
func (e *Engine) Listening(types ...string) bool {
	return e.hub.Has(types...)
}

// OnCommandError listens for every resolution failure.
func (e *Engine) OnCommandError(fn func(*Context)) *Engine {
	return e.On(events.CommandError, contextHandler(fn))
}

// OnCommandNotFound listens for paths that do not resolve.
func (e *Engine) OnCommandNotFound(fn func(*Context)) *Engine {
	return e.On(events.CommandNotFound, contextHandler(fn))
}

// OnDisabledCommand listens for paths that resolve to disabled commands.
func (e *Engine) OnDisabledCommand(fn func(*Context)) *Engine {
	return e.On(events.DisabledCommand, contextHandler(fn))
}

func contextHandler(fn func(*Context)) events.Handler {
	if fn == nil {
		return nil
	}
	return func(args ...any) {
		if len(args) == 0 {
			return
		}
		if ctx, ok := args[0].(*Context); ok {
			fn(ctx)
		}
	}
}
