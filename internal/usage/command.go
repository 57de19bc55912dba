package usage

import (
	"fmt"
	"strings"
)

// CommandError is the base command failure.
func CommandError(message string) *Error {
	return &Error{
		Kind:    ErrCommand,
		Message: message,
	}
}

// CommandNotFound is returned when no command resolves for path.
func CommandNotFound(path string, suggestions ...string) *Error {
	msg := fmt.Sprintf("Command '%s' is not found", path)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(". Did you mean %s?", quoteList(suggestions))
	}
	return &Error{
		Kind:        ErrCommandNotFound,
		Message:     msg,
		Path:        path,
		Suggestions: suggestions,
	}
}

// DisabledCommand is returned when path resolves to a command that is not
// enabled.
func DisabledCommand(path string) *Error {
	return &Error{
		Kind:    ErrDisabledCommand,
		Message: fmt.Sprintf("Command '%s' is disabled", path),
		Path:    path,
	}
}

// RecursionLimit is returned when nested dispatch goes deeper than limit.
func RecursionLimit(path string, limit int) *Error {
	return &Error{
		Kind:    ErrRecursionLimit,
		Message: fmt.Sprintf("Command '%s' exceeds the nested dispatch limit of %d", path, limit),
		Path:    path,
	}
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}
