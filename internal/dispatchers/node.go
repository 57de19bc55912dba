package dispatchers

import "strings"

// Node is a resolved view of a stored definition.
type Node struct {
	Name        string
	Aliases     []string
	Callback    Handler
	Subcommands *Commands
	Enabled     bool
	Summary     string
	Usage       string

	// Path holds the canonical names from the root down to this node.
	Path   []string
	Parent *Node
	Raw    *Definition
}

func newNode(name string, def *Definition, parent *Node) *Node {
	var path []string
	if parent != nil {
		path = append(path, parent.Path...)
	}
	path = append(path, name)

	return &Node{
		Name:        name,
		Aliases:     append([]string{}, def.Aliases...),
		Callback:    def.Callback,
		Subcommands: def.Subcommands,
		Enabled:     def.IsEnabled(),
		Summary:     def.Summary,
		Usage:       def.Usage,
		Path:        path,
		Parent:      parent,
		Raw:         def,
	}
}

// Pathname joins the canonical path with sep.
func (n *Node) Pathname(sep string) string {
	return strings.Join(n.Path, sep)
}

// HasSubcommands reports whether the node has at least one child.
func (n *Node) HasSubcommands() bool {
	return n.Subcommands != nil && n.Subcommands.Len() > 0
}
