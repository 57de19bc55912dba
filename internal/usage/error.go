package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrCommand
	ErrCommandNotFound
	ErrDisabledCommand
	ErrRecursionLimit
	ErrInvalidFlag
	ErrMissingArgument
	ErrInvalidConfigKey
)

func (k ErrorKind) String() string {
	switch k {
	case ErrCommand:
		return "CommandError"
	case ErrCommandNotFound:
		return "CommandNotFound"
	case ErrDisabledCommand:
		return "DisabledCommand"
	case ErrRecursionLimit:
		return "RecursionLimit"
	case ErrInvalidFlag:
		return "InvalidFlag"
	case ErrMissingArgument:
		return "MissingArgument"
	case ErrInvalidConfigKey:
		return "InvalidConfigKey"
	default:
		return "Unknown"
	}
}

// Exit codes:
//
//	Exit 1: command resolution and environment errors
//	  - Unknown errors
//	  - Command errors (not found, disabled, recursion)
//	  - Invalid config key
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrCommand:          1,
	ErrCommandNotFound:  1,
	ErrDisabledCommand:  1,
	ErrRecursionLimit:   1,
	ErrInvalidFlag:      2,
	ErrMissingArgument:  2,
	ErrInvalidConfigKey: 1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind        ErrorKind
	Message     string
	Path        string   // command path the error refers to, if any
	Suggestions []string // similar command names for not-found errors
	ExitCode    int      // overrides the code derived from Kind when non-zero
}

// Sentinels for errors.Is. ErrCommandError matches every command error kind.
var (
	ErrCommandError      = &Error{Kind: ErrCommand}
	ErrNotFound          = &Error{Kind: ErrCommandNotFound}
	ErrDisabled          = &Error{Kind: ErrDisabledCommand}
	ErrRecursionExceeded = &Error{Kind: ErrRecursionLimit}
)

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is compares kinds. A target of kind ErrCommand matches any command error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == ErrCommand {
		return e.Kind.IsCommand()
	}
	return e.Kind == t.Kind
}

// IsCommand reports whether k is the base command kind or one of its
// specializations.
func (k ErrorKind) IsCommand() bool {
	switch k {
	case ErrCommand, ErrCommandNotFound, ErrDisabledCommand, ErrRecursionLimit:
		return true
	default:
		return false
	}
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// KindOf returns the kind of the first *Error in err's chain, or ErrUnknown.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// IsNotFound reports whether err is a command-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDisabled reports whether err is a disabled-command error.
func IsDisabled(err error) bool {
	return errors.Is(err, ErrDisabled)
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
