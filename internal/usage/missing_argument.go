package usage

import "fmt"

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("dx: missing required argument '%s'", arg),
	}
}
