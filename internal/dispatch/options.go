package dispatch

import (
	"strconv"
	"strings"
	"time"
)

// ParsedOptions provides access to the raw option tokens of an
// invocation (everything that started with '-').
type ParsedOptions struct {
	raw []string
}

// NewParsedOptions creates a ParsedOptions from a slice of option tokens.
func NewParsedOptions(options []string) *ParsedOptions {
	return &ParsedOptions{raw: options}
}

// Raw returns the underlying option tokens.
func (o *ParsedOptions) Raw() []string {
	return o.raw
}

// Has returns true if the option is present (for boolean options).
func (o *ParsedOptions) Has(name string) bool {
	for _, opt := range o.raw {
		if opt == name {
			return true
		}
	}
	return false
}

// HasAny returns true if any of the given spellings is present.
func (o *ParsedOptions) HasAny(names ...string) bool {
	for _, name := range names {
		if o.Has(name) {
			return true
		}
	}
	return false
}

// String returns the value of an option in --name=value form, or
// defaultVal if not present.
func (o *ParsedOptions) String(name, defaultVal string) string {
	prefix := name + "="
	for _, opt := range o.raw {
		if strings.HasPrefix(opt, prefix) {
			return strings.TrimPrefix(opt, prefix)
		}
	}
	return defaultVal
}

// Value returns the first value found for any of the given spellings,
// and whether one was present.
func (o *ParsedOptions) Value(names ...string) (string, bool) {
	for _, name := range names {
		prefix := name + "="
		for _, opt := range o.raw {
			if strings.HasPrefix(opt, prefix) {
				return strings.TrimPrefix(opt, prefix), true
			}
		}
	}
	return "", false
}

// Int returns the integer value of an option, or defaultVal if not
// present or invalid.
func (o *ParsedOptions) Int(name string, defaultVal int) int {
	str := o.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}

// Date returns the time.Time value of an option (YYYY-MM-DD format), or
// nil if not present or invalid.
func (o *ParsedOptions) Date(name string) *time.Time {
	str := o.String(name, "")
	if str == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return nil
	}
	return &t
}
