package actions

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/dx-tools/cli/internal/dispatch"
	"github.com/dx-tools/cli/internal/usage"
)

var configActions = []string{"get", "set", "unset", "list"}

// ValidateConfig gates the config command on a well-formed action and
// the arguments that action needs.
func ValidateConfig(ctx *dispatch.Context) error {
	action, _ := ctx.Arg("action")

	found := false
	for _, a := range configActions {
		if action == a {
			found = true
			break
		}
	}
	if !found {
		return usage.ValidationRejected("config",
			"unknown action '"+action+"' (expected "+strings.Join(configActions, ", ")+")")
	}

	key, hasKey := ctx.Arg("key")
	switch action {
	case "get", "unset":
		if !hasKey || key == "" {
			return usage.MissingArgument("key")
		}
	case "set":
		if !hasKey || key == "" {
			return usage.MissingArgument("key")
		}
		if value, ok := ctx.Arg("value"); !ok || value == "" {
			return usage.MissingArgument("value")
		}
	}
	return nil
}

// Config reads and writes dot-path configuration keys.
func Config(ctx *dispatch.Context) error {
	action, _ := ctx.Arg("action")

	switch action {
	case "get":
		key, _ := ctx.Arg("key")
		value, ok := ctx.Config.Get(key)
		if !ok {
			_, err := ctx.App.Output.Printf("%s is not set\n", key)
			return err
		}
		_, err := ctx.App.Output.Println(value)
		return err

	case "set":
		key, _ := ctx.Arg("key")
		value, _ := ctx.Arg("value")
		if err := ctx.Config.Set(key, value); err != nil {
			return err
		}
		ctx.Logger.Info("config: set %s", key)
		return nil

	case "unset":
		key, _ := ctx.Arg("key")
		if err := ctx.Config.Unset(key); err != nil {
			return err
		}
		ctx.Logger.Info("config: unset %s", key)
		return nil

	default: // list
		return configList(ctx)
	}
}

func configList(ctx *dispatch.Context) error {
	all := ctx.Config.GetAll()

	if ctx.OptionString("format", "text") == "json" {
		out, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		_, err = ctx.App.Output.Println(string(out))
		return err
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(all[k])
		b.WriteString("\n")
	}
	ctx.App.Output.Pager(b.String())
	return nil
}
