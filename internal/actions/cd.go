package actions

import (
	"github.com/dx-tools/cli/internal/dispatch"
	"github.com/dx-tools/cli/internal/nav"
	"github.com/dx-tools/cli/internal/usage"
)

// Cd resolves a query against the source tree and requests a directory
// change. The actual CD: emission happens once, at the top level, after
// dispatch completes.
func Cd(ctx *dispatch.Context) error {
	query, _ := ctx.Arg("query")

	resolver := &nav.Resolver{
		Root: sourceRoot(ctx),
		Pick: nav.Picker,
	}

	outcome, err := resolver.Resolve(query)
	if err != nil {
		return err
	}

	switch outcome.Kind {
	case nav.KindSelected:
		ctx.Logger.Debug("cd: selected %s", outcome.Path)
		return ctx.App.Nav.Request(outcome.Path)

	case nav.KindCancelled:
		// Aborting the picker is a normal termination.
		ctx.Logger.Debug("cd: selection cancelled")
		return nil

	default:
		if query == "" {
			// Interactive flow with an empty tree: benign.
			ctx.App.Output.Println("no directories found under", resolver.Root)
			return nil
		}
		return usage.NoMatches(query)
	}
}
