package dispatchers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/log"
)

// Registry stores the command tree and resolves separator-joined paths
// against it.
//
// Lookup at each level tries canonical names first and then aliases in
// sibling insertion order; the first match wins. Locks are released before
// any caller code runs.
type Registry struct {
	mu              sync.RWMutex
	commands        *Commands
	separator       string
	caseInsensitive bool
	logger          domain.Logger
}

// NewRegistry wraps commands. The caller must not modify commands afterwards.
func NewRegistry(commands *Commands, separator string, caseInsensitive bool, logger domain.Logger) *Registry {
	if commands == nil {
		commands = NewCommands()
	}
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Registry{
		commands:        commands,
		separator:       separator,
		caseInsensitive: caseInsensitive,
		logger:          logger,
	}
}

// Separator returns the path separator.
func (r *Registry) Separator() string {
	return r.separator
}

// CaseInsensitive reports whether names are matched ignoring case.
func (r *Registry) CaseInsensitive() bool {
	return r.caseInsensitive
}

// SplitPath splits pathname into segments. An empty pathname is a single
// empty segment, which never resolves.
func (r *Registry) SplitPath(pathname string) []string {
	if !r.caseInsensitive {
		return strings.Split(pathname, r.separator)
	}
	return splitFold(pathname, r.separator)
}

// splitFold splits s on every case-insensitive occurrence of sep.
func splitFold(s, sep string) []string {
	var parts []string
	start := 0
	for i := 0; i+len(sep) <= len(s); {
		if strings.EqualFold(s[i:i+len(sep)], sep) {
			parts = append(parts, s[start:i])
			i += len(sep)
			start = i
			continue
		}
		i++
	}
	return append(parts, s[start:])
}

func (r *Registry) equal(a, b string) bool {
	if r.caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// lookup finds segment among the names of level, then among their aliases.
func (r *Registry) lookup(level *Commands, segment string) (string, *Definition, bool) {
	if key, def, ok := r.lookupName(level, segment); ok {
		return key, def, true
	}
	if level == nil {
		return "", nil, false
	}

	for pair := level.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			continue
		}
		for _, alias := range pair.Value.Aliases {
			if r.equal(alias, segment) {
				return pair.Key, pair.Value, true
			}
		}
	}

	return "", nil, false
}

// lookupName finds segment among the canonical names of level only.
func (r *Registry) lookupName(level *Commands, segment string) (string, *Definition, bool) {
	if level == nil {
		return "", nil, false
	}

	if def, ok := level.Get(segment); ok {
		return segment, orEmpty(def), true
	}

	if r.caseInsensitive {
		for pair := level.Oldest(); pair != nil; pair = pair.Next() {
			if r.equal(pair.Key, segment) {
				return pair.Key, orEmpty(pair.Value), true
			}
		}
	}

	return "", nil, false
}

func orEmpty(def *Definition) *Definition {
	if def == nil {
		return &Definition{}
	}
	return def
}

// walk resolves path as far as it goes. It returns the resolved nodes and
// the level at which resolution stopped (nil when the last resolved node
// has no subcommands).
func (r *Registry) walk(path []string) ([]*Node, *Commands) {
	level := r.commands
	var (
		nodes  []*Node
		parent *Node
	)

	for _, segment := range path {
		name, def, ok := r.lookup(level, segment)
		if !ok {
			return nodes, level
		}

		node := newNode(name, def, parent)
		nodes = append(nodes, node)
		parent = node
		level = def.Subcommands
	}

	return nodes, level
}

// Resolve returns the node at pathname.
func (r *Registry) Resolve(pathname string) (*Node, bool) {
	path := r.SplitPath(pathname)

	r.mu.RLock()
	nodes, _ := r.walk(path)
	r.mu.RUnlock()

	if len(nodes) != len(path) {
		return nil, false
	}
	return nodes[len(nodes)-1], true
}

// Exists reports whether pathname resolves.
func (r *Registry) Exists(pathname string) bool {
	_, ok := r.Resolve(pathname)
	return ok
}

// Define creates or updates the command at pathname. Missing ancestors are
// created as empty groups, then the fields set in def are copied onto the
// stored definition.
func (r *Registry) Define(pathname string, def *Definition) error {
	path := r.SplitPath(pathname)
	for _, segment := range path {
		if segment == "" {
			return fmt.Errorf("define %q: empty path segment", pathname)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	level := r.commands
	var (
		target *Definition
		name   string
	)

	for i, segment := range path {
		last := i == len(path)-1

		// The target itself is matched by name: defining a name that is
		// only a sibling's alias creates a new command.
		find := r.lookup
		if last {
			find = r.lookupName
		}

		key, existing, ok := find(level, segment)
		if !ok {
			key = segment
			existing = &Definition{}
			if !last {
				existing.Subcommands = NewCommands()
			}
			level.Set(key, existing)
		} else if stored, _ := level.Get(key); stored == nil {
			level.Set(key, existing)
		}

		target, name = existing, key
		if last {
			break
		}

		if existing.Subcommands == nil {
			existing.Subcommands = NewCommands()
		}
		level = existing.Subcommands
	}

	if def != nil {
		target.merge(def.Clone())
	}

	for _, clash := range r.collisions(level, name, target) {
		r.logger.Warn("registry: %q at %q is also used by %q; %q keeps it", clash.token, pathname, clash.other, clash.winner)
	}

	return nil
}

type collision struct {
	token  string
	other  string
	winner string
}

// collisions lists tokens of the named definition that a sibling also
// answers to, and which of the two the lookup picks.
func (r *Registry) collisions(level *Commands, name string, def *Definition) []collision {
	tokens := append([]string{name}, def.Aliases...)
	var out []collision

	for _, token := range tokens {
		for pair := level.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Key == name || pair.Value == nil {
				continue
			}
			if !r.answersTo(pair.Key, pair.Value, token) {
				continue
			}
			winner, _, _ := r.lookup(level, token)
			out = append(out, collision{token: token, other: pair.Key, winner: winner})
		}
	}
	return out
}

func (r *Registry) answersTo(key string, def *Definition, token string) bool {
	if r.equal(key, token) {
		return true
	}
	for _, alias := range def.Aliases {
		if r.equal(alias, token) {
			return true
		}
	}
	return false
}

// Remove unlinks the command at pathname from its parent.
func (r *Registry) Remove(pathname string) bool {
	path := r.SplitPath(pathname)

	r.mu.Lock()
	defer r.mu.Unlock()

	nodes, _ := r.walk(path)
	if len(nodes) != len(path) {
		return false
	}

	node := nodes[len(nodes)-1]
	level := r.commands
	if node.Parent != nil {
		level = node.Parent.Raw.Subcommands
	}
	if level == nil {
		return false
	}

	_, present := level.Delete(node.Name)
	return present
}

// Register defines every spec in order and stops at the first error.
func (r *Registry) Register(specs ...CommandSpec) error {
	for _, spec := range specs {
		if err := r.Define(spec.Path, spec.definition()); err != nil {
			return err
		}
	}
	return nil
}

// Walk calls fn for every stored command, depth first in insertion order,
// until fn returns false. fn runs on a snapshot and may use the registry.
func (r *Registry) Walk(fn func(path []string, def *Definition) bool) {
	type item struct {
		path []string
		def  *Definition
	}

	var items []item
	var collect func(prefix []string, level *Commands)
	collect = func(prefix []string, level *Commands) {
		if level == nil {
			return
		}
		for pair := level.Oldest(); pair != nil; pair = pair.Next() {
			path := append(append([]string{}, prefix...), pair.Key)
			def := orEmpty(pair.Value)
			items = append(items, item{path: path, def: def})
			collect(path, def.Subcommands)
		}
	}

	r.mu.RLock()
	collect(nil, r.commands)
	r.mu.RUnlock()

	for _, it := range items {
		if !fn(it.path, it.def) {
			return
		}
	}
}

// Children returns resolved views of the commands directly below pathname,
// or of the top level when pathname is empty.
func (r *Registry) Children(pathname string) ([]*Node, bool) {
	var parent *Node
	level := r.commands

	if pathname != "" {
		node, ok := r.Resolve(pathname)
		if !ok {
			return nil, false
		}
		parent = node
		level = node.Subcommands
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Node
	if level == nil {
		return out, true
	}
	for pair := level.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, newNode(pair.Key, orEmpty(pair.Value), parent))
	}
	return out, true
}
