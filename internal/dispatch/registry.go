package dispatch

import (
	"fmt"

	"github.com/dx-tools/cli/internal/usage"
)

// Registry maps command names and aliases to descriptors. It is
// populated once at startup and read-only during dispatch.
type Registry struct {
	byName  map[string]*Descriptor
	byAlias map[string]*Descriptor
	order   []*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]*Descriptor),
		byAlias: make(map[string]*Descriptor),
	}
}

// Register adds a descriptor. It fails fast on a malformed descriptor or
// on a name/alias collision with an already-registered command.
func (r *Registry) Register(d *Descriptor) error {
	if err := validateDescriptor(d); err != nil {
		return err
	}

	if r.taken(d.Name) {
		return usage.InvalidDefinition(d.Name, "name already registered")
	}
	for _, alias := range d.Aliases {
		if r.taken(alias) {
			return usage.InvalidDefinition(d.Name, fmt.Sprintf("alias '%s' already registered", alias))
		}
	}

	r.byName[d.Name] = d
	for _, alias := range d.Aliases {
		r.byAlias[alias] = d
	}
	r.order = append(r.order, d)
	return nil
}

// Resolve looks up a command by primary name first, then by alias.
// A miss yields a typed UnknownCommand error with suggestions, never a
// generic failure.
func (r *Registry) Resolve(nameOrAlias string) (*Descriptor, *usage.Error) {
	if d, ok := r.byName[nameOrAlias]; ok {
		return d, nil
	}
	if d, ok := r.byAlias[nameOrAlias]; ok {
		return d, nil
	}
	return nil, usage.UnknownCommand(nameOrAlias, r.Suggest(nameOrAlias, defaultSuggestionsCount)...)
}

// List returns registered descriptors in registration order. Hidden
// descriptors are excluded unless includeHidden is set.
func (r *Registry) List(includeHidden bool) []*Descriptor {
	out := make([]*Descriptor, 0, len(r.order))
	for _, d := range r.order {
		if d.Hidden && !includeHidden {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (r *Registry) taken(name string) bool {
	if _, ok := r.byName[name]; ok {
		return true
	}
	_, ok := r.byAlias[name]
	return ok
}

func validateDescriptor(d *Descriptor) error {
	if d == nil || d.Name == "" {
		return usage.InvalidDefinition("", "descriptor has no name")
	}

	seenOptional := false
	for i, a := range d.Args {
		if a.Name == "" {
			return usage.InvalidDefinition(d.Name, fmt.Sprintf("argument %d has no name", i))
		}
		if a.Variadic && i != len(d.Args)-1 {
			return usage.InvalidDefinition(d.Name, fmt.Sprintf("variadic argument '%s' must be last", a.Name))
		}
		if a.Required && seenOptional {
			return usage.InvalidDefinition(d.Name, fmt.Sprintf("required argument '%s' follows an optional one", a.Name))
		}
		if !a.Required && !a.Variadic {
			seenOptional = true
		}
		if a.HasDefault && (a.Required || a.Variadic) {
			return usage.InvalidDefinition(d.Name, fmt.Sprintf("argument '%s' may not declare a default", a.Name))
		}
	}

	for _, o := range d.Options {
		if o.Name == "" || len(o.Flags) == 0 {
			return usage.InvalidDefinition(d.Name, "option has no name or flags")
		}
	}

	return nil
}
