package actions

import "github.com/dx-tools/cli/internal/dispatch"

// Version prints the build version.
func Version(ctx *dispatch.Context) error {
	_, err := ctx.App.Output.Printf("dx version %s\n", ctx.App.Version)
	return err
}
