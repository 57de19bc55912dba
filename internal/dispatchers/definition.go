package dispatchers

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Handler runs a resolved command. args are the tokenized arguments after
// conversion, in input order.
type Handler func(ctx *Context, args ...any) error

// Commands is one level of the command tree, keyed by canonical name in
// insertion order.
type Commands = orderedmap.OrderedMap[string, *Definition]

// NewCommands creates an empty level.
func NewCommands() *Commands {
	return orderedmap.New[string, *Definition]()
}

// Entry is a name/definition pair for Tree.
type Entry struct {
	Name       string
	Definition *Definition
}

// Tree builds a level from entries, keeping their order.
func Tree(entries ...Entry) *Commands {
	level := NewCommands()
	for _, e := range entries {
		def := e.Definition
		if def == nil {
			def = &Definition{}
		}
		level.Set(e.Name, def)
	}
	return level
}

// Definition is the stored, mutable form of a command. For Define it is a
// patch: nil and empty fields leave the stored value untouched.
type Definition struct {
	Aliases     []string
	Callback    Handler
	Subcommands *orderedmap.OrderedMap[string, *Definition]
	Enabled     *bool
	Summary     string
	Usage       string
}

// Bool returns a pointer to b, for Definition.Enabled.
func Bool(b bool) *bool {
	return &b
}

// IsEnabled reports whether the command can run: it needs a callback and
// must not be explicitly disabled.
func (d *Definition) IsEnabled() bool {
	if d == nil || d.Callback == nil {
		return false
	}
	return d.Enabled == nil || *d.Enabled
}

// Clone copies d and its whole subtree.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}

	c := *d
	if d.Aliases != nil {
		c.Aliases = append([]string{}, d.Aliases...)
	}
	if d.Enabled != nil {
		c.Enabled = Bool(*d.Enabled)
	}
	c.Subcommands = CloneCommands(d.Subcommands)
	return &c
}

// CloneCommands copies a level and everything below it.
func CloneCommands(level *Commands) *Commands {
	if level == nil {
		return nil
	}

	out := NewCommands()
	for pair := level.Oldest(); pair != nil; pair = pair.Next() {
		def := pair.Value.Clone()
		if def == nil {
			def = &Definition{}
		}
		out.Set(pair.Key, def)
	}
	return out
}

// merge copies the fields set in patch onto d.
func (d *Definition) merge(patch *Definition) {
	if patch.Aliases != nil {
		d.Aliases = patch.Aliases
	}
	if patch.Callback != nil {
		d.Callback = patch.Callback
	}
	if patch.Subcommands != nil {
		d.Subcommands = patch.Subcommands
	}
	if patch.Enabled != nil {
		d.Enabled = patch.Enabled
	}
	if patch.Summary != "" {
		d.Summary = patch.Summary
	}
	if patch.Usage != "" {
		d.Usage = patch.Usage
	}
}
