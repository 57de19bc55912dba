package dispatchers

import (
	"github.com/google/uuid"

	"github.com/footprint-tools/cmdext/internal/usage"
)

// ParseResult is the parsed form of an input line.
type ParseResult struct {
	Text     string
	Pathname string
	Path     []string
	Argname  string
	Args     []string

	// Exists reports whether Pathname resolved when the line was parsed.
	Exists bool
}

// Context describes one dispatch. A new Context is created for every call
// and handed to the handler or to the failure listeners.
type Context struct {
	ID      uuid.UUID
	Engine  *Engine
	Text    string
	Args    []string
	Command *Node
	Err     *usage.Error
	Failed  bool
	Parse   ParseResult

	// Depth counts the Context.Dispatch calls that led here.
	Depth int
}

// Dispatch runs text on the same engine as a nested call of c.
func (c *Context) Dispatch(text string) (*Context, error) {
	return c.Engine.exec(text, c.Depth+1)
}

// Emit fires a user-defined event on the engine's hub.
func (c *Context) Emit(typ string, args ...any) {
	c.Engine.hub.Emit(typ, args...)
}

// Flags returns the flag arguments (those starting with '-').
func (c *Context) Flags() *ParsedFlags {
	_, flags := SplitFlags(c.Args)
	return NewParsedFlags(flags)
}

// Positional returns the arguments that are not flags.
func (c *Context) Positional() []string {
	positional, _ := SplitFlags(c.Args)
	return positional
}

// Pathname returns the canonical path of the resolved command, or the typed
// pathname when nothing resolved.
func (c *Context) Pathname() string {
	if c.Command == nil {
		return c.Parse.Pathname
	}
	return c.Command.Pathname(c.Engine.Separator())
}
