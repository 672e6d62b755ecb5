package cli

import (
	"fmt"
	"strings"

	"github.com/dx-tools/cli/internal/dispatch"
)

func helpDescriptor(reg *dispatch.Registry) *dispatch.Descriptor {
	return &dispatch.Descriptor{
		Name:        "help",
		Description: "show help for dx or a command",
		Usage:       "dx help [command]",
		Args: []dispatch.ArgSpec{
			{Name: "command", Description: "command to describe"},
		},
		Run: func(ctx *dispatch.Context) error {
			name, ok := ctx.Arg("command")
			if !ok || name == "" {
				_, err := ctx.App.Output.Write([]byte(RootHelp(reg, ctx.App.Styler.Header)))
				return err
			}

			desc, uerr := reg.Resolve(name)
			if uerr != nil {
				return uerr
			}
			_, err := ctx.App.Output.Write([]byte(CommandHelp(desc, ctx.App.Styler.Header)))
			return err
		},
	}
}

// RootHelp renders the top-level listing: every visible command with its
// aliases and one-line description.
func RootHelp(reg *dispatch.Registry, header func(string) string) string {
	var b strings.Builder

	b.WriteString("dx - personal development environment\n\n")
	b.WriteString(header("Usage:"))
	b.WriteString("\n  dx <command> [arguments] [options]\n\n")
	b.WriteString(header("Commands:"))
	b.WriteString("\n")

	for _, d := range reg.List(false) {
		name := d.Name
		if len(d.Aliases) > 0 {
			name += " (" + strings.Join(d.Aliases, ", ") + ")"
		}
		fmt.Fprintf(&b, "  %-16s %s\n", name, d.Description)
	}

	b.WriteString("\nRun 'dx help <command>' for details on a command.\n")
	return b.String()
}

// CommandHelp renders the detailed view of one command: usage line,
// long help, arguments, and options.
func CommandHelp(d *dispatch.Descriptor, header func(string) string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - %s\n\n", d.Name, d.Description)
	b.WriteString(header("Usage:"))
	fmt.Fprintf(&b, "\n  %s\n", d.Usage)

	if d.Help != "" {
		b.WriteString("\n")
		for _, line := range strings.Split(d.Help, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	if len(d.Args) > 0 {
		b.WriteString("\n")
		b.WriteString(header("Arguments:"))
		b.WriteString("\n")
		for _, a := range d.Args {
			name := a.Name
			switch {
			case a.Variadic:
				name = "[" + name + "...]"
			case a.Required:
				name = "<" + name + ">"
			default:
				name = "[" + name + "]"
			}
			fmt.Fprintf(&b, "  %-16s %s\n", name, a.Description)
		}
	}

	if len(d.Options) > 0 {
		b.WriteString("\n")
		b.WriteString(header("Options:"))
		b.WriteString("\n")
		for _, o := range d.Options {
			flags := strings.Join(o.Flags, ", ")
			if o.ValueHint != "" {
				flags += " " + o.ValueHint
			}
			fmt.Fprintf(&b, "  %-24s %s\n", flags, o.Description)
		}
	}

	if len(d.Aliases) > 0 {
		b.WriteString("\n")
		b.WriteString(header("Aliases:"))
		fmt.Fprintf(&b, "\n  %s\n", strings.Join(d.Aliases, ", "))
	}

	return b.String()
}
