package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/ui"
	"github.com/footprint-tools/cmdext/internal/usage"
)

const sampleYAML = `
options:
  separator: "/"
  quotes: ['"', "'"]
  case_insensitive: true
commands:
  zeta: "last letter {0}"
  greet:
    aliases: [hi, hello]
    summary: Say hello
    echo: "hello {args}"
  deploy:
    summary: Deploy things
    subcommands:
      web:
        echo: "web {0}"
      api:
        echo: "api {0}"
      all:
        run: "deploy/web {0}; deploy/api {0}"
      off:
        echo: never
        enabled: false
      odd:
        echo: kept
        enabled: "nope"
events:
  commandnotfound: "greet unknown {path}"
`

const sampleTOML = `
[options]
separator = "."
convert_numbers = true

[commands.zeta]
echo = "z"

[commands.alpha]
aliases = "a"
run = ["zeta", "alpha.inner {0}"]

[commands.alpha.subcommands.inner]
echo = "inner {0}"

[events]
"deploy release" = "zeta"
`

func names(cmds []Command) []string {
	var out []string
	for _, c := range cmds {
		out = append(out, c.Name)
	}
	return out
}

func TestParseYAML_KeepsOrderAndShapes(t *testing.T) {
	m, err := Parse([]byte(sampleYAML), YAML)
	require.NoError(t, err)

	require.Equal(t, []string{"zeta", "greet", "deploy"}, names(m.Commands))

	zeta := m.Commands[0]
	assert.Equal(t, "last letter {0}", zeta.Echo)

	greet := m.Commands[1]
	assert.Equal(t, []string{"hi", "hello"}, greet.Aliases)
	assert.Equal(t, "Say hello", greet.Summary)
	assert.Nil(t, greet.Enabled)

	deploy := m.Commands[2]
	require.Equal(t, []string{"web", "api", "all", "off", "odd"}, names(deploy.Subcommands))
	assert.Equal(t, []string{"deploy/web {0}", "deploy/api {0}"}, deploy.Subcommands[2].Run)
	require.NotNil(t, deploy.Subcommands[3].Enabled)
	assert.False(t, *deploy.Subcommands[3].Enabled)
	assert.Nil(t, deploy.Subcommands[4].Enabled, "non-boolean enabled is ignored")

	require.Len(t, m.Events, 1)
	assert.Equal(t, "commandnotfound", m.Events[0].Types)
}

func TestParseTOML_KeepsOrder(t *testing.T) {
	m, err := Parse([]byte(sampleTOML), TOML)
	require.NoError(t, err)

	require.Equal(t, []string{"zeta", "alpha"}, names(m.Commands))
	alpha := m.Commands[1]
	assert.Equal(t, []string{"a"}, alpha.Aliases)
	assert.Equal(t, []string{"zeta", "alpha.inner {0}"}, alpha.Run)
	require.Equal(t, []string{"inner"}, names(alpha.Subcommands))

	require.Len(t, m.Events, 1)
	assert.Equal(t, "deploy release", m.Events[0].Types)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("commands: [unclosed"), YAML)
	require.Error(t, err)

	_, err = Parse([]byte("- a\n- b\n"), YAML)
	require.ErrorContains(t, err, "mapping")

	_, err = Parse([]byte("x = "), TOML)
	require.Error(t, err)

	_, err = Parse(nil, Format("ini"))
	require.Error(t, err)
}

func TestParse_EmptyAndMistyped(t *testing.T) {
	m, err := Parse(nil, YAML)
	require.NoError(t, err)
	assert.Empty(t, m.Commands)

	m, err = Parse([]byte("commands: 42\nevents: [a]\n"), YAML)
	require.NoError(t, err)
	assert.Empty(t, m.Commands)
	assert.Empty(t, m.Events)
}

func TestEngineOptions_OverlaysPresentKeys(t *testing.T) {
	m, err := Parse([]byte(sampleYAML), YAML)
	require.NoError(t, err)

	base := dispatchers.Options{MaxDepth: 4, ConvertNumbers: true}
	opts := m.EngineOptions(base)

	assert.Equal(t, "/", opts.Separator)
	assert.Equal(t, []string{`"`, "'"}, opts.Quotes)
	assert.True(t, opts.CaseInsensitive)
	assert.Equal(t, 4, opts.MaxDepth)
	assert.True(t, opts.ConvertNumbers)

	m, err = Parse([]byte(sampleTOML), TOML)
	require.NoError(t, err)
	opts = m.EngineOptions(dispatchers.Options{})
	assert.True(t, opts.ConvertNumbers)
}

func applied(t *testing.T, data string, format Format) (*dispatchers.Engine, *bytes.Buffer) {
	t.Helper()
	m, err := Parse([]byte(data), format)
	require.NoError(t, err)

	var buf bytes.Buffer
	e := dispatchers.New(m.EngineOptions(dispatchers.Options{}))
	require.NoError(t, m.Apply(e, ui.NewWriterTo(&buf, ui.WithPagerDisabled())))
	return e, &buf
}

func TestApply_EchoAndAliases(t *testing.T) {
	e, out := applied(t, sampleYAML, YAML)

	_, err := e.Exec(`HI "big world" now`)
	require.NoError(t, err)
	assert.Equal(t, "hello big world now\n", out.String())
}

func TestApply_RunMacro(t *testing.T) {
	e, out := applied(t, sampleYAML, YAML)

	_, err := e.Exec("deploy/all prod")
	require.NoError(t, err)
	assert.Equal(t, "web prod\napi prod\n", out.String())
}

func TestApply_Enabled(t *testing.T) {
	e, _ := applied(t, sampleYAML, YAML)

	node, ok := e.Resolve("deploy/off")
	require.True(t, ok)
	assert.False(t, node.Enabled)

	node, ok = e.Resolve("deploy/odd")
	require.True(t, ok)
	assert.True(t, node.Enabled)

	group, ok := e.Resolve("deploy")
	require.True(t, ok)
	assert.False(t, group.Enabled)
	assert.Equal(t, "Deploy things", group.Summary)
}

func TestApply_NotFoundHook(t *testing.T) {
	e, out := applied(t, sampleYAML, YAML)

	ctx, err := e.Exec("nothing/here 1")
	require.NoError(t, err, "a hook turns the failure into an event")
	assert.True(t, ctx.Failed)
	assert.Equal(t, "hello unknown nothing/here\n", out.String())
}

func TestApply_HookDoesNotLoop(t *testing.T) {
	data := `
commands:
  x: "x"
events:
  commandnotfound: "missing {path}"
`
	e, out := applied(t, data, YAML)

	_, err := e.Exec("gone")
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestApply_UserEventHookWithMacroAndNumbers(t *testing.T) {
	e, out := applied(t, sampleTOML, TOML)

	_, err := e.Exec("a 7")
	require.NoError(t, err)
	assert.Equal(t, "z\ninner 7\n", out.String())

	out.Reset()
	e.Emit("release", 2.0)
	assert.Equal(t, "z\n", out.String())
}

func TestApply_MacroErrorKeepsKind(t *testing.T) {
	data := `
commands:
  broken:
    run: "nowhere"
`
	e, _ := applied(t, data, YAML)

	_, err := e.Exec("broken")
	require.Error(t, err)
	assert.True(t, usage.IsNotFound(err))
	assert.Contains(t, err.Error(), "nowhere")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "commands.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0600))
	m, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, m.Commands, 3)

	tomlPath := filepath.Join(dir, "commands.TOML")
	require.NoError(t, os.WriteFile(tomlPath, []byte(sampleTOML), 0600))
	m, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Len(t, m.Commands, 2)

	_, err = Load(filepath.Join(dir, "commands.json"))
	require.ErrorContains(t, err, "unsupported")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestExpand(t *testing.T) {
	vars := argVars([]string{"a", "b"})
	assert.Equal(t, "a+b a b {2} {x}", expand("{0}+{1} {args} {2} {x}", vars))
}
