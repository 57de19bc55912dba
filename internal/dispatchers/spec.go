package dispatchers

// CommandSpec describes one command for Registry.Register.
type CommandSpec struct {
	Path    string
	Aliases []string
	Summary string
	Usage   string
	Action  Handler
	Enabled *bool
}

func (s CommandSpec) definition() *Definition {
	return &Definition{
		Aliases:  s.Aliases,
		Callback: s.Action,
		Enabled:  s.Enabled,
		Summary:  s.Summary,
		Usage:    s.Usage,
	}
}

// Group returns a spec for a command that only holds subcommands.
func Group(path, summary string) CommandSpec {
	return CommandSpec{Path: path, Summary: summary}
}

// Command returns a spec for a runnable command.
func Command(path, summary string, action Handler, aliases ...string) CommandSpec {
	return CommandSpec{
		Path:    path,
		Aliases: aliases,
		Summary: summary,
		Action:  action,
	}
}
