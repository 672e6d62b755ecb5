package nav

import (
	"path/filepath"

	"github.com/dx-tools/cli/internal/fuzzy"
	"github.com/dx-tools/cli/internal/scan"
)

// PickFunc presents candidates to the user, pre-filtered by query, and
// returns the chosen candidate, or ok=false when the selection was
// aborted.
type PickFunc func(query string, candidates []string) (choice string, ok bool, err error)

// Resolver turns a query into a navigation outcome: scan the source
// root, rank with the fuzzy matcher, and delegate to the picker when
// more than one candidate remains.
type Resolver struct {
	// Root is the source tree root scanned for candidates.
	Root string

	// Pick handles ambiguous results. When nil, the highest-ranked
	// match wins (non-interactive contexts).
	Pick PickFunc
}

// Resolve maps a query to an Outcome. It never returns an error for
// "nothing matched"; that is the NotFound outcome. Errors are reserved
// for picker failures.
func (r *Resolver) Resolve(query string) (Outcome, error) {
	candidates := scan.Scan(r.Root)
	if len(candidates) == 0 {
		return NotFound(), nil
	}

	matches := fuzzy.Filter(query, candidates)
	switch {
	case len(matches) == 0:
		return NotFound(), nil
	case len(matches) == 1 || r.Pick == nil:
		return Selected(filepath.Join(r.Root, filepath.FromSlash(matches[0].Candidate))), nil
	}

	choice, ok, err := r.Pick(query, candidates)
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		return Cancelled(), nil
	}
	return Selected(filepath.Join(r.Root, filepath.FromSlash(choice))), nil
}
