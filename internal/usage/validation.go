package usage

import "fmt"

// ValidationRejected is returned when a command's validation hook vetoes
// execution (e.g. a required external tool is not installed).
func ValidationRejected(command, reason string) *Error {
	return &Error{
		Kind:    ErrValidationRejected,
		Message: fmt.Sprintf("dx: %s: %s", command, reason),
	}
}

// HandlerFailed wraps a failure raised inside a command handler. The
// original cause is preserved for diagnostics.
func HandlerFailed(command string, cause error) *Error {
	return &Error{
		Kind:    ErrHandlerFailed,
		Message: fmt.Sprintf("dx: %s: %v", command, cause),
		Cause:   cause,
	}
}

// InvalidDefinition is returned at registration time when a command
// descriptor is malformed. This is a programmer error surfaced early.
func InvalidDefinition(command, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidDefinition,
		Message: fmt.Sprintf("dx: invalid definition for command '%s': %s", command, reason),
	}
}

// NoMatches is returned when a direct-name lookup finds no directory.
// Interactive flows treat the same condition as a benign message instead.
func NoMatches(query string) *Error {
	return &Error{
		Kind:    ErrNoMatches,
		Message: fmt.Sprintf("dx: no directory matching '%s'", query),
	}
}
