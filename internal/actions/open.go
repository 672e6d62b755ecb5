package actions

import (
	"strings"

	"github.com/dx-tools/cli/internal/dispatch"
	"github.com/dx-tools/cli/internal/nav"
	"github.com/dx-tools/cli/internal/usage"
)

// Open resolves a query like cd does, then launches the configured
// editor on the selected directory.
func Open(ctx *dispatch.Context) error {
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
		return launchEditor(ctx, outcome.Path)

	case nav.KindCancelled:
		return nil

	default:
		if query == "" {
			ctx.App.Output.Println("no directories found under", resolver.Root)
			return nil
		}
		return usage.NoMatches(query)
	}
}

func launchEditor(ctx *dispatch.Context, dir string) error {
	editor := ctx.OptionString("editor", "")
	if editor == "" {
		editor, _ = ctx.Config.Get("editor")
	}
	if editor == "" {
		return usage.ValidationRejected("open", "no editor configured (set $EDITOR or 'dx config set editor <cmd>')")
	}

	// The editor value may carry its own arguments ("code --wait").
	parts := strings.Fields(editor)
	args := append(parts[1:], dir)

	ctx.Logger.Info("open: launching %s %s", parts[0], dir)
	return ctx.App.Tools.Run(parts[0], args...)
}
