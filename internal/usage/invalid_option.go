package usage

import (
	"fmt"
	"strings"
)

// InvalidOption is returned when an option is not valid in the current
// context.
func InvalidOption(option string) *Error {
	return &Error{
		Kind:    ErrInvalidOption,
		Message: fmt.Sprintf("dx: invalid option '%s'", option),
	}
}

// MissingOption is returned when a required option is not provided.
func MissingOption(option string) *Error {
	return &Error{
		Kind:    ErrInvalidOption,
		Message: fmt.Sprintf("dx: missing required option '%s'", option),
	}
}

// OptionOutOfChoices is returned when an option value does not belong to
// its declared closed set.
func OptionOutOfChoices(option, value string, choices []string) *Error {
	return &Error{
		Kind: ErrInvalidOption,
		Message: fmt.Sprintf("dx: invalid value '%s' for option '%s' (expected one of: %s)",
			value, option, strings.Join(choices, ", ")),
	}
}

// OptionParseFailed is returned when a custom option parser rejects the
// raw value.
func OptionParseFailed(option, value string, cause error) *Error {
	return &Error{
		Kind:    ErrInvalidOption,
		Message: fmt.Sprintf("dx: invalid value '%s' for option '%s': %v", value, option, cause),
		Cause:   cause,
	}
}
