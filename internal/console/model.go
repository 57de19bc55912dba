// Package console is the interactive prompt around a dispatch engine.
package console

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/cmdext/internal/app"
	"github.com/footprint-tools/cmdext/internal/cli"
	"github.com/footprint-tools/cmdext/internal/completions"
	"github.com/footprint-tools/cmdext/internal/domain"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxScrollback = 2000
	promptText    = "> "
)

// Model is the bubbletea model of the console. Command output is written
// to out by the built-ins and moved into the scrollback after each line.
type Model struct {
	runner *cli.Runner
	out    *bytes.Buffer
	styler domain.Styler

	input    textinput.Model
	viewport viewport.Model

	commands   []completions.CommandInfo
	scrollback []string
	recall     []string
	recallPos  int
	draft      string

	quitting bool
}

// New creates a console model. out must be the buffer behind the
// application output writer.
func New(runner *cli.Runner, out *bytes.Buffer, styler domain.Styler) Model {
	input := textinput.New()
	input.Prompt = styler.Command(promptText)
	input.Placeholder = "help"
	input.ShowSuggestions = true
	input.Focus()

	m := Model{
		runner:   runner,
		out:      out,
		styler:   styler,
		input:    input,
		viewport: viewport.New(defaultWidth, defaultHeight-2),
	}
	m.push(styler.Muted("cmdext " + app.Version + ", type 'help' for commands or 'exit' to leave"))
	m.refreshCommands()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1)
		m.input.Width = max(msg.Width-len(promptText)-1, 1)
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "tab":
			m.complete()
			return m, nil
		case "up":
			m.recallPrev()
			return m, nil
		case "down":
			m.recallNext()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.viewport.View() + "\n" + m.input.View()
}

// Quitting reports whether the console is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}

// Scrollback returns the lines shown above the prompt.
func (m Model) Scrollback() []string {
	return append([]string(nil), m.scrollback...)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.draft = ""

	m.push(m.styler.Command(promptText) + line)
	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	m.remember(line)

	res := m.runner.Run(line)

	m.drain()
	if res.Err != nil {
		m.push(m.styler.Error(res.Err.Error()))
	}

	if res.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	m.refreshCommands()
	return m, nil
}

// refreshCommands reloads the pathnames offered as suggestions. Handlers
// may have changed the tree.
func (m *Model) refreshCommands() {
	m.commands = completions.ExtractCommands(m.runner.Engine)
	m.input.SetSuggestions(completions.Pathnames(m.commands))
}

// complete extends the pathname being typed. Several matches are listed
// and the input grows to their common prefix.
func (m *Model) complete() {
	value := m.input.Value()
	if strings.ContainsAny(value, " \t") {
		return
	}

	matches := completions.Complete(m.commands, value, m.runner.Engine.CaseInsensitive())
	switch len(matches) {
	case 0:
		return
	case 1:
		m.input.SetValue(matches[0] + " ")
	default:
		m.push(m.styler.Muted(strings.Join(matches, "  ")))
		m.input.SetValue(commonPrefix(matches))
	}
	m.input.CursorEnd()
}

func commonPrefix(items []string) string {
	prefix := items[0]
	for _, s := range items[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

// drain moves buffered command output into the scrollback.
func (m *Model) drain() {
	text := strings.TrimRight(m.out.String(), "\n")
	m.out.Reset()
	if text == "" {
		return
	}
	for _, l := range strings.Split(text, "\n") {
		m.push(l)
	}
}

func (m *Model) push(line string) {
	m.scrollback = append(m.scrollback, line)
	if len(m.scrollback) > maxScrollback {
		m.scrollback = m.scrollback[len(m.scrollback)-maxScrollback:]
	}
	m.viewport.SetContent(strings.Join(m.scrollback, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) remember(line string) {
	if n := len(m.recall); n == 0 || m.recall[n-1] != line {
		m.recall = append(m.recall, line)
	}
	m.recallPos = len(m.recall)
}

func (m *Model) recallPrev() {
	if m.recallPos == 0 {
		return
	}
	if m.recallPos == len(m.recall) {
		m.draft = m.input.Value()
	}
	m.recallPos--
	m.input.SetValue(m.recall[m.recallPos])
	m.input.CursorEnd()
}

func (m *Model) recallNext() {
	if m.recallPos >= len(m.recall) {
		return
	}
	m.recallPos++
	if m.recallPos == len(m.recall) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.recall[m.recallPos])
	}
	m.input.CursorEnd()
}

// Run starts the console on the terminal and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
