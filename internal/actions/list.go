package actions

import (
	"encoding/json"
	"strings"

	"github.com/dx-tools/cli/internal/dispatch"
	"github.com/dx-tools/cli/internal/scan"
)

// List prints every repository directory found under the source root.
func List(ctx *dispatch.Context) error {
	root := sourceRoot(ctx)
	repos := scan.Scan(root)

	if ctx.OptionString("format", "text") == "json" {
		out, err := json.MarshalIndent(repos, "", "  ")
		if err != nil {
			return err
		}
		_, err = ctx.App.Output.Println(string(out))
		return err
	}

	if len(repos) == 0 {
		_, err := ctx.App.Output.Println("no directories found under", root)
		return err
	}

	var b strings.Builder
	for _, repo := range repos {
		b.WriteString(repo)
		b.WriteString("\n")
	}
	ctx.App.Output.Pager(b.String())
	return nil
}
