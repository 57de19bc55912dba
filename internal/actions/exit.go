package actions

import (
	"errors"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
)

// ErrExit asks the console to stop reading input.
var ErrExit = errors.New("exit requested")

func Exit() dispatchers.Handler {
	return func(_ *dispatchers.Context, _ ...any) error {
		return ErrExit
	}
}
