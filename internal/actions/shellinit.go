package actions

import (
	"github.com/dx-tools/cli/internal/dispatch"
	"github.com/dx-tools/cli/internal/shell"
)

// ShellInit prints the shell wrapper function, or with --install appends
// the eval line to the user's rc file.
func ShellInit(ctx *dispatch.Context) error {
	if ctx.OptionBool("install") {
		rcPath, err := shell.RCFile()
		if err != nil {
			return err
		}
		changed, err := shell.Install(rcPath)
		if err != nil {
			return err
		}
		if !changed {
			_, err := ctx.App.Output.Printf("already installed in %s\n", rcPath)
			return err
		}
		ctx.Logger.Success("shell-init: installed into %s", rcPath)
		_, err = ctx.App.Output.Printf("installed into %s; restart your shell or run 'source %s'\n", rcPath, rcPath)
		return err
	}

	_, err := ctx.App.Output.Write([]byte(shell.Script))
	return err
}
