package usage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Kinds(t *testing.T) {
	notFound := CommandNotFound("a.b")
	disabled := DisabledCommand("a.b")
	base := CommandError("boom")

	require.True(t, errors.Is(notFound, ErrCommandError))
	require.True(t, errors.Is(disabled, ErrCommandError))
	require.True(t, errors.Is(base, ErrCommandError))

	require.True(t, IsNotFound(notFound))
	require.False(t, IsNotFound(disabled))
	require.True(t, IsDisabled(disabled))
	require.False(t, IsDisabled(base))

	require.False(t, errors.Is(MissingArgument("key"), ErrCommandError))
}

func TestError_Wrapped(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", DisabledCommand("x"))
	require.True(t, IsDisabled(err))
	require.Equal(t, ErrDisabledCommand, KindOf(err))
	require.Equal(t, ErrUnknown, KindOf(errors.New("plain")))
}

func TestError_Messages(t *testing.T) {
	require.Equal(t, "Command 'a.b' is not found", CommandNotFound("a.b").Error())
	require.Equal(t, "Command 'a.b' is disabled", DisabledCommand("a.b").Error())
	require.Equal(t,
		"Command 'hepl' is not found. Did you mean 'help', 'hello'?",
		CommandNotFound("hepl", "help", "hello").Error(),
	)
	require.Contains(t, RecursionLimit("loop", 16).Error(), "16")
}

func TestError_GetExitCode(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{CommandNotFound("x"), 1},
		{DisabledCommand("x"), 1},
		{InvalidFlag("--nope"), 2},
		{MissingArgument("key"), 2},
		{InvalidConfigKey("nope"), 1},
		{&Error{Kind: ErrMissingArgument, ExitCode: 7}, 7},
		{&Error{Kind: ErrorKind(99)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.GetExitCode())
		})
	}
}
