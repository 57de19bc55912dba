package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/cmdext/internal/cli"
	"github.com/footprint-tools/cmdext/internal/domain"
)

// Pipe dispatches every line of in. Lines starting with '#' are comments.
// Errors are written to errOut and do not stop the input; the returned
// code is the exit code of the last failing line, or 0.
func Pipe(in io.Reader, runner *cli.Runner, errOut io.Writer, styler domain.Styler) (int, error) {
	code := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		res := runner.Run(line)
		if res.Err != nil {
			_, _ = fmt.Fprintln(errOut, styler.Error(res.Err.Error()))
			code = cli.ExitCode(res.Err)
		}
		if res.Exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return 1, fmt.Errorf("read input: %w", err)
	}
	return code, nil
}
