// Package nav resolves a query to a directory in the source tree and
// carries the result up to the single point that tells the shell
// wrapper to change directory.
package nav

// OutcomeKind classifies how a navigation attempt ended.
type OutcomeKind int

const (
	// KindSelected means a directory was chosen.
	KindSelected OutcomeKind = iota

	// KindCancelled means the user aborted the interactive picker.
	// This is a normal termination, not a failure.
	KindCancelled

	// KindNotFound means no directory matched the query.
	KindNotFound
)

// Outcome is the typed result of a navigation attempt, returned up the
// stack instead of exiting the process from inside a handler.
type Outcome struct {
	Kind OutcomeKind

	// Path is the absolute directory path when Kind is KindSelected.
	Path string
}

// Selected builds a successful outcome for the given absolute path.
func Selected(path string) Outcome {
	return Outcome{Kind: KindSelected, Path: path}
}

// Cancelled builds the outcome for an aborted interactive selection.
func Cancelled() Outcome {
	return Outcome{Kind: KindCancelled}
}

// NotFound builds the outcome for a query with no matching directory.
func NotFound() Outcome {
	return Outcome{Kind: KindNotFound}
}
