package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when no registered command matches the
// requested name or alias.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("dx: '%s' is not a dx command. See 'dx help'.", command)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("\n\nDid you mean?\n\t%s", strings.Join(suggestions, "\n\t"))
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
