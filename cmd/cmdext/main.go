package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdext/internal/app"
	"github.com/footprint-tools/cmdext/internal/cli"
	"github.com/footprint-tools/cmdext/internal/config"
	"github.com/footprint-tools/cmdext/internal/console"
	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/log"
	"github.com/footprint-tools/cmdext/internal/manifest"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the binary and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := 0
	root := newRootCmd(stdin, stdout, stderr, &code)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return code
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, code *int) *cobra.Command {
	var (
		commandsFile string
		noColor      bool
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "cmdext [command line]",
		Short: "Dispatch text commands through a command tree",
		Long: `cmdext resolves command lines such as "history.list --limit=5" against
a tree of commands and runs them.

With arguments the joined line is dispatched once. Without arguments an
interactive console starts on a terminal; otherwise every line of stdin is
dispatched in turn.

Extra commands are loaded from a YAML or TOML file given with --commands
or the commands_file config key.`,
		Version:       app.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := len(args) == 0 && isTerminal(stdin)

			opts := app.DefaultOptions()
			if logLevel != "" {
				opts.LogLevel = log.ParseLevel(logLevel)
			}
			opts.StyleEnabled = !noColor && isTerminal(stdout)

			var buffer *bytes.Buffer
			if interactive {
				buffer = &bytes.Buffer{}
				opts.Output = buffer
				opts.PagerDisabled = true
			} else {
				opts.Output = stdout
			}

			application, err := app.New(opts)
			if err != nil {
				return err
			}
			defer func() { _ = application.Close() }()

			cfg := loadConfig(application.Config, application.Logger)
			engineOpts := config.EngineOptions(cfg)
			engineOpts.Logger = application.Logger

			if commandsFile == "" {
				commandsFile = cfg["commands_file"]
			}
			var m *manifest.Manifest
			if commandsFile != "" {
				if m, err = manifest.Load(commandsFile); err != nil {
					return err
				}
				engineOpts = m.EngineOptions(engineOpts)
			}

			e := dispatchers.New(engineOpts)
			if err := cli.BuildTree(e, application); err != nil {
				return err
			}
			if m != nil {
				if err := m.Apply(e, application.Output); err != nil {
					return err
				}
			}

			runner := cli.NewRunner(e, application)

			switch {
			case len(args) > 0:
				res := runner.Run(joinArgs(args, e.Quotes()))
				if res.Err != nil {
					fmt.Fprintln(stderr, application.Styler.Error(res.Err.Error()))
					*code = cli.ExitCode(res.Err)
				}
				return nil
			case interactive:
				return console.Run(console.New(runner, buffer, application.Styler))
			default:
				*code, err = console.Pipe(stdin, runner, stderr, application.Styler)
				return err
			}
		},
	}

	// Everything after the first positional belongs to the command line.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&commandsFile, "commands", "", "YAML or TOML file with extra commands")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")

	return cmd
}

// joinArgs rebuilds a command line from shell arguments. Arguments with
// whitespace are wrapped in the first quote marker when one is configured.
// loadConfig returns the merged config. A read failure is logged and the
// defaults are used instead.
func loadConfig(provider domain.ConfigProvider, logger domain.Logger) map[string]string {
	cfg, err := provider.GetAll()
	if err != nil {
		logger.Warn("config: could not read config, using defaults: %v", err)
		cfg = make(map[string]string, len(config.Defaults))
		for key, value := range config.Defaults {
			cfg[key] = value()
		}
	}
	return cfg
}

func joinArgs(args []string, quotes []string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if len(quotes) > 0 && strings.IndexFunc(a, unicode.IsSpace) >= 0 {
			a = quotes[0] + a + quotes[0]
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
