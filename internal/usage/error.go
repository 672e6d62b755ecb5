package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrMissingArgument
	ErrInvalidOption
	ErrInvalidDefinition
	ErrValidationRejected
	ErrHandlerFailed
	ErrNoMatches
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid command definition
//	  - Validation veto (e.g. required tool not installed)
//	  - Handler failures
//	  - No matching directory for a direct-name lookup
//
//	Exit 2: User input errors
//	  - Missing required argument
//	  - Invalid or out-of-choices option value
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrUnknownCommand:     1,
	ErrMissingArgument:    2,
	ErrInvalidOption:      2,
	ErrInvalidDefinition:  1,
	ErrValidationRejected: 1,
	ErrHandlerFailed:      1,
	ErrNoMatches:          1,
}

// Error represents a user-facing failure with semantic type information.
// All terminal failures of the dispatcher are one of these; nothing else
// is allowed to escape to the process boundary.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // explicit override, computed from Kind if zero
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original cause for errors.Is/As diagnostics.
func (e *Error) Unwrap() error {
	return e.Cause
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is
// derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
