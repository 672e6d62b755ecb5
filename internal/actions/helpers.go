package actions

import (
	"github.com/dx-tools/cli/internal/dispatch"
	"github.com/dx-tools/cli/internal/paths"
)

// sourceRoot returns the effective source tree root for a command:
// the --root option, then configuration, then the ~/src convention.
func sourceRoot(ctx *dispatch.Context) string {
	if root := ctx.OptionString("root", ""); root != "" {
		return root
	}
	if ctx.Config != nil {
		if root, ok := ctx.Config.Get("source.root"); ok && root != "" {
			return root
		}
	}
	return paths.DefaultSourceRoot()
}

// requireTool builds a Validate hook that vetoes execution when the
// named executable is missing from PATH.
func requireTool(tool string) dispatch.HookFunc {
	return func(ctx *dispatch.Context) error {
		if !ctx.App.Tools.IsInstalled(tool) {
			return &toolMissingError{tool: tool}
		}
		return nil
	}
}

type toolMissingError struct {
	tool string
}

func (e *toolMissingError) Error() string {
	return e.tool + " is not installed"
}
