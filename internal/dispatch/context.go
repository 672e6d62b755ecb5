package dispatch

import (
	"github.com/dx-tools/cli/internal/domain"
)

// Context is the bound, per-invocation bundle handed to a command
// handler. It is constructed by the binder, owned by the dispatch call,
// and discarded after the handler returns.
type Context struct {
	Command *Descriptor

	// App exposes the externally supplied collaborators. Logger and
	// Config are also surfaced directly for the common cases.
	App    *domain.Application
	Logger domain.Logger
	Config domain.ConfigManager

	args    map[string]any
	options map[string]any
	raw     *ParsedOptions
}

// Arg returns the bound scalar value of a non-variadic argument.
func (c *Context) Arg(name string) (string, bool) {
	v, ok := c.args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ArgSlice returns the bound sequence of a variadic argument. For a
// bound variadic slot this is never nil, only possibly empty.
func (c *Context) ArgSlice(name string) []string {
	v, ok := c.args[name]
	if !ok {
		return nil
	}
	s, _ := v.([]string)
	return s
}

// Option returns the bound value of an option by its spec name.
func (c *Context) Option(name string) (any, bool) {
	v, ok := c.options[name]
	return v, ok
}

// OptionString returns an option value as a string, or defaultVal.
func (c *Context) OptionString(name, defaultVal string) string {
	if v, ok := c.options[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultVal
}

// OptionInt returns an option value as an int, or defaultVal.
func (c *Context) OptionInt(name string, defaultVal int) int {
	if v, ok := c.options[name]; ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return defaultVal
}

// OptionBool returns a boolean option value, false when unset.
func (c *Context) OptionBool(name string) bool {
	if v, ok := c.options[name]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Raw returns the underlying command-line option tokens for advanced
// access (e.g. passthrough to external tools).
func (c *Context) Raw() *ParsedOptions {
	return c.raw
}
