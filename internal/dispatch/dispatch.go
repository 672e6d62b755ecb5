package dispatch

import (
	"errors"
	"fmt"

	"github.com/dx-tools/cli/internal/domain"
	"github.com/dx-tools/cli/internal/usage"
)

const defaultSuggestionsCount = 3

// Outcome is the terminal state of one dispatch: a user-facing message
// (empty on success) and a process exit code. No failure propagates past
// this value.
type Outcome struct {
	Command  string
	Message  string
	ExitCode int
	Err      error
}

// Succeeded reports whether the dispatch ended in the success state.
func (o Outcome) Succeeded() bool {
	return o.ExitCode == 0 && o.Err == nil
}

// Dispatch resolves the requested command, binds its arguments and
// options, runs the optional setup and validation hooks, and invokes the
// handler. Every failure along the way is translated into a typed
// outcome; handler panics are caught at this boundary.
func Dispatch(reg *Registry, tokens, tail []string, opts *ParsedOptions, app *domain.Application) Outcome {
	if len(tokens) == 0 {
		return failure("", usage.UnknownCommand(""))
	}

	name := tokens[0]

	// Resolving
	desc, uerr := reg.Resolve(name)
	if uerr != nil {
		return failure(name, uerr)
	}

	// Binding
	ctx, uerr := Bind(desc, tokens[1:], tail, opts, app)
	if uerr != nil {
		return failure(desc.Name, uerr)
	}

	// Validating
	if desc.Setup != nil {
		if err := desc.Setup(ctx); err != nil {
			return failure(desc.Name, asUsageError(desc.Name, err))
		}
	}
	if desc.Validate != nil {
		if err := desc.Validate(ctx); err != nil {
			var ue *usage.Error
			if errors.As(err, &ue) {
				return failure(desc.Name, ue)
			}
			return failure(desc.Name, usage.ValidationRejected(desc.Name, err.Error()))
		}
	}

	// Executing
	if err := execute(desc, ctx); err != nil {
		return failure(desc.Name, asUsageError(desc.Name, err))
	}

	return Outcome{Command: desc.Name}
}

// execute invokes the handler, converting a panic into an error so that
// no failure escapes the Executing boundary.
func execute(desc *Descriptor, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = usage.HandlerFailed(desc.Name, fmt.Errorf("panic: %v", r))
		}
	}()

	if desc.Run == nil {
		return usage.InvalidDefinition(desc.Name, "command has no handler")
	}
	return desc.Run(ctx)
}

func asUsageError(command string, err error) *usage.Error {
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue
	}
	return usage.HandlerFailed(command, err)
}

func failure(command string, ue *usage.Error) Outcome {
	return Outcome{
		Command:  command,
		Message:  ue.Error(),
		ExitCode: ue.GetExitCode(),
		Err:      ue,
	}
}
