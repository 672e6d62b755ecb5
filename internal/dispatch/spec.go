package dispatch

// HandlerFunc is the action a command runs with its bound context.
type HandlerFunc func(ctx *Context) error

// HookFunc is an optional lifecycle hook (setup, validate). A non-nil
// error from Validate vetoes execution.
type HookFunc func(ctx *Context) error

// ParseFunc converts a raw option value into a typed one.
type ParseFunc func(raw string) (any, error)

// ArgSpec describes one positional argument of a command.
type ArgSpec struct {
	Name        string
	Description string
	Required    bool

	// Variadic marks the argument as absorbing all remaining positional
	// tokens. Only the last argument of a command may be variadic.
	Variadic bool

	// Default is the value bound when an optional argument receives no
	// token. Only meaningful when HasDefault is true; not allowed on
	// required or variadic arguments.
	Default    string
	HasDefault bool
}

// OptionSpec describes one option (flag) of a command.
type OptionSpec struct {
	// Name is the key the bound value is stored under in the context.
	Name string

	// Flags lists the accepted flag spellings, e.g. {"--limit", "-l"}.
	Flags []string

	ValueHint   string
	Description string
	Required    bool

	// Bool marks a presence-only flag; its bound value is true/false.
	Bool bool

	// Choices restricts the bound value to a closed set.
	Choices []string

	// Parse converts the raw string before choice validation.
	Parse ParseFunc

	Default    string
	HasDefault bool
}

// Descriptor is the static definition of a command: identity, argument
// and option specs, handler, and optional lifecycle hooks.
type Descriptor struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string
	Help        string

	// Hidden commands stay resolvable by exact name or alias but are
	// excluded from help listings.
	Hidden bool

	Args    []ArgSpec
	Options []OptionSpec

	Setup    HookFunc
	Validate HookFunc
	Run      HandlerFunc
}
