package actions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/ui/style"
	"github.com/footprint-tools/cmdext/internal/usage"
)

func captureDeps(printed *[]string) Deps {
	return Deps{
		Printf: func(format string, a ...any) (int, error) {
			*printed = append(*printed, fmt.Sprintf(format, a...))
			return 0, nil
		},
		Println: func(a ...any) (int, error) {
			*printed = append(*printed, fmt.Sprint(a...))
			return 0, nil
		},
		Version: func() string { return "1.2.3" },
		Styler:  style.NopStyler{},
	}
}

func TestShowVersion_PrintsVersion(t *testing.T) {
	var printed []string

	err := showVersion(nil, nil, captureDeps(&printed))

	require.NoError(t, err)
	require.Equal(t, []string{"cmdext version 1.2.3\n"}, printed)
}

func TestEcho_ThroughEngine(t *testing.T) {
	var printed []string
	e := dispatchers.New(dispatchers.Options{Quotes: []string{`"`}, ConvertNumbers: true})
	require.NoError(t, e.Register(dispatchers.Command("echo", "", Echo(captureDeps(&printed)))))

	_, err := e.Exec(`echo "hello world" 0x10 --loud`)

	require.NoError(t, err)
	require.Equal(t, []string{"hello world 0x10 --loud"}, printed)
}

func TestEmit_FiresWithConvertedArgs(t *testing.T) {
	var printed []string
	var got []any
	e := dispatchers.New(dispatchers.Options{ConvertNumbers: true})
	require.NoError(t, e.Register(dispatchers.Command("emit", "", Emit(captureDeps(&printed)))))
	e.On("deploy", func(args ...any) { got = args })

	_, err := e.Exec("emit deploy web 3")

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "web", got[0])
	require.EqualValues(t, 3, got[1])
	require.Empty(t, printed)
}

func TestEmit_NoListeners(t *testing.T) {
	var printed []string
	e := dispatchers.New(dispatchers.Options{})
	require.NoError(t, e.Register(dispatchers.Command("emit", "", Emit(captureDeps(&printed)))))

	_, err := e.Exec("emit nobody")

	require.NoError(t, err)
	require.Equal(t, []string{"no listeners for nobody"}, printed)
}

func TestEmit_MissingEvent(t *testing.T) {
	var printed []string
	e := dispatchers.New(dispatchers.Options{})
	require.NoError(t, e.Register(dispatchers.Command("emit", "", Emit(captureDeps(&printed)))))

	_, err := e.Exec("emit")

	require.Equal(t, usage.ErrMissingArgument, usage.KindOf(err))
}

func TestExit_ReturnsSentinel(t *testing.T) {
	e := dispatchers.New(dispatchers.Options{})
	require.NoError(t, e.Register(dispatchers.Command("exit", "", Exit(), "quit", "q")))

	for _, line := range []string{"exit", "quit", "q"} {
		_, err := e.Exec(line)
		require.True(t, errors.Is(err, ErrExit), line)
	}
}
