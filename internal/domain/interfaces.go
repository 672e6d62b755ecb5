package domain

import (
	"io"
	"time"
)

// ConfigManager defines operations for reading and writing configuration.
// Keys are dot-paths into a nested document (e.g. "source.root").
type ConfigManager interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// Has reports whether a configuration key is set.
	Has(key string) bool

	// GetAll returns all configuration values, flattened to dot-path keys.
	GetAll() map[string]string

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Success logs a success message.
	Success(format string, args ...any)

	// WithPrefix derives a child logger that prefixes every message.
	WithPrefix(prefix string) Logger

	// Close closes the logger.
	Close() error
}

// RunRecord is one row of command run history.
type RunRecord struct {
	ID        string
	Command   string
	Args      []string
	ExitCode  int
	Duration  time.Duration
	StartedAt time.Time
}

// RunFilter narrows a run-history listing.
type RunFilter struct {
	Command    string
	FailedOnly bool
	Since      *time.Time
	Limit      int
}

// RunStore defines operations for persisting command run history.
type RunStore interface {
	// Record adds a run to the store.
	Record(run RunRecord) error

	// List returns runs matching the given filter, newest first.
	List(filter RunFilter) ([]RunRecord, error)

	// Prune deletes runs started before the given time.
	Prune(olderThan time.Time) (int64, error)

	// Close closes the store connection.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// GitProvider defines operations for interacting with git.
type GitProvider interface {
	// IsAvailable checks if git is installed and accessible.
	IsAvailable() bool

	// RepoRoot returns the root directory of the git repository containing
	// the given path.
	RepoRoot(path string) (string, error)

	// Clone clones a repository URL into the given directory.
	Clone(url, dir string) error
}

// ToolRunner defines operations for delegating to external executables
// (mise, gh, gcloud).
type ToolRunner interface {
	// IsInstalled checks if the named tool is on PATH.
	IsInstalled(tool string) bool

	// Run executes the tool with inherited stdio and blocks until it exits.
	Run(tool string, args ...string) error
}

// DirChanger is the directory-change collaborator. Navigation commands
// request a change; the single top-level emission point reads it back.
type DirChanger interface {
	// Request validates that path is an existing directory and records it
	// as the pending change.
	Request(path string) error

	// Pending returns the recorded absolute path, if any.
	Pending() (string, bool)
}

// Application bundles the collaborators handed to command handlers.
type Application struct {
	Config  ConfigManager
	Logger  Logger
	Store   RunStore
	Output  OutputWriter
	Styler  Styler
	Git     GitProvider
	Tools   ToolRunner
	Nav     DirChanger
	Version string
}

// SourceRoot returns the configured source tree root, falling back to
// ~/src via the config manager's defaults.
func (a *Application) SourceRoot() string {
	if a.Config != nil {
		if root, ok := a.Config.Get("source.root"); ok && root != "" {
			return root
		}
	}
	return ""
}
