package dispatch

import (
	"fmt"

	"github.com/dx-tools/cli/internal/domain"
	"github.com/dx-tools/cli/internal/usage"
)

// Bind walks the descriptor's argument specs in order, consuming one
// positional token per non-variadic argument, then resolves the option
// specs against the parsed options. It is a pure function of its inputs;
// the returned context is fully populated or the binding fails with a
// typed usage error naming the offending argument or option.
//
// A variadic final argument absorbs all remaining positional tokens plus
// the pre-collected tail (tokens after "--"); with nothing to absorb it
// binds an empty slice, never an absent value.
func Bind(d *Descriptor, positionals, tail []string, opts *ParsedOptions, app *domain.Application) (*Context, *usage.Error) {
	if opts == nil {
		opts = NewParsedOptions(nil)
	}

	args := make(map[string]any, len(d.Args))
	next := 0

	for _, spec := range d.Args {
		if spec.Variadic {
			rest := make([]string, 0, len(positionals)-next+len(tail))
			rest = append(rest, positionals[next:]...)
			rest = append(rest, tail...)
			args[spec.Name] = rest
			next = len(positionals)
			continue
		}

		if next < len(positionals) {
			args[spec.Name] = positionals[next]
			next++
			continue
		}

		if spec.Required {
			return nil, usage.MissingArgument(spec.Name)
		}
		if spec.HasDefault {
			args[spec.Name] = spec.Default
		}
	}

	options := make(map[string]any, len(d.Options))
	for _, spec := range d.Options {
		value, uerr := bindOption(spec, opts)
		if uerr != nil {
			return nil, uerr
		}
		if value != nil {
			options[spec.Name] = value
		}
	}

	ctx := &Context{
		Command: d,
		App:     app,
		args:    args,
		options: options,
		raw:     opts,
	}
	if app != nil {
		ctx.Logger = app.Logger
		ctx.Config = app.Config
	}
	return ctx, nil
}

func bindOption(spec OptionSpec, opts *ParsedOptions) (any, *usage.Error) {
	if spec.Bool {
		return opts.HasAny(spec.Flags...), nil
	}

	raw, present := opts.Value(spec.Flags...)
	if !present {
		if spec.Required {
			return nil, usage.MissingOption(spec.Flags[0])
		}
		if !spec.HasDefault {
			return nil, nil
		}
		raw = spec.Default
	}

	var value any = raw
	if spec.Parse != nil {
		parsed, err := spec.Parse(raw)
		if err != nil {
			return nil, usage.OptionParseFailed(spec.Flags[0], raw, err)
		}
		value = parsed
	}

	if len(spec.Choices) > 0 && !inChoices(value, spec.Choices) {
		return nil, usage.OptionOutOfChoices(spec.Flags[0], raw, spec.Choices)
	}

	return value, nil
}

func inChoices(value any, choices []string) bool {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	for _, c := range choices {
		if s == c {
			return true
		}
	}
	return false
}
