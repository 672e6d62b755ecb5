// Package cli assembles the command registry: every descriptor the
// binary exposes, with its arguments, options, and lifecycle hooks.
package cli

import (
	"github.com/dx-tools/cli/internal/actions"
	"github.com/dx-tools/cli/internal/dispatch"
)

// BuildRegistry registers the full command surface. A malformed
// descriptor or a name collision surfaces here, before any dispatch.
func BuildRegistry() (*dispatch.Registry, error) {
	reg := dispatch.NewRegistry()

	rootOption := dispatch.OptionSpec{
		Name:        "root",
		Flags:       []string{"--root"},
		ValueHint:   "<dir>",
		Description: "override the source tree root",
	}
	formatOption := dispatch.OptionSpec{
		Name:        "format",
		Flags:       []string{"--format", "-f"},
		ValueHint:   "<format>",
		Description: "output format",
		Choices:     []string{"text", "json"},
		Default:     "text",
		HasDefault:  true,
	}

	descriptors := []*dispatch.Descriptor{
		{
			Name:        "cd",
			Aliases:     []string{"j"},
			Description: "jump to a repository directory",
			Usage:       "dx cd [query]",
			Help: "Fuzzy-matches query against <host>/<org>/<repo> paths under\n" +
				"the source root. A single match jumps straight there; several\n" +
				"matches open an interactive picker. Requires the shell wrapper\n" +
				"(see 'dx shell-init').",
			Args: []dispatch.ArgSpec{
				{Name: "query", Description: "fuzzy directory query"},
			},
			Options: []dispatch.OptionSpec{rootOption},
			Run:     actions.Cd,
		},
		{
			Name:        "clone",
			Aliases:     []string{"cl"},
			Description: "clone a repository into the source tree",
			Usage:       "dx clone <repo> [dir]",
			Help: "Accepts a full URL (https or ssh) or the org/repo shorthand,\n" +
				"expanded with the configured default host. The clone lands in\n" +
				"its <host>/<org>/<repo> slot unless dir overrides it.",
			Args: []dispatch.ArgSpec{
				{Name: "repo", Description: "repository URL or org/repo", Required: true},
				{Name: "dir", Description: "explicit target directory"},
			},
			Options:  []dispatch.OptionSpec{rootOption},
			Validate: actions.ValidateClone,
			Run:      actions.Clone,
		},
		{
			Name:        "open",
			Aliases:     []string{"o"},
			Description: "open a repository in the editor",
			Usage:       "dx open [query]",
			Help: "Resolves query like 'dx cd' does, then launches the editor\n" +
				"(--editor, then the 'editor' config key) on the selection.",
			Args: []dispatch.ArgSpec{
				{Name: "query", Description: "fuzzy directory query"},
			},
			Options: []dispatch.OptionSpec{
				rootOption,
				{
					Name:        "editor",
					Flags:       []string{"--editor", "-e"},
					ValueHint:   "<cmd>",
					Description: "editor command to launch",
				},
			},
			Run: actions.Open,
		},
		{
			Name:        "list",
			Aliases:     []string{"ls"},
			Description: "list repositories under the source root",
			Usage:       "dx list [--format text|json]",
			Args:        nil,
			Options:     []dispatch.OptionSpec{rootOption, formatOption},
			Run:         actions.List,
		},
		{
			Name:        "up",
			Description: "install the project toolchain via mise",
			Usage:       "dx up [tools...]",
			Help: "With no arguments installs everything the project's mise\n" +
				"configuration declares; explicit tool names narrow the install.",
			Args: []dispatch.ArgSpec{
				{Name: "tools", Description: "tools to install", Variadic: true},
			},
			Validate: actions.ValidateMise,
			Run:      actions.Up,
		},
		{
			Name:        "run",
			Description: "run a project task via mise",
			Usage:       "dx run <task> [-- args...]",
			Help:        "Tokens after '--' pass through to the task untouched.",
			Args: []dispatch.ArgSpec{
				{Name: "task", Description: "task name", Required: true},
				{Name: "args", Description: "extra task arguments", Variadic: true},
			},
			Validate: actions.ValidateMise,
			Run:      actions.Run,
		},
		{
			Name:        "auth",
			Description: "authenticate with a development service",
			Usage:       "dx auth [service]",
			Help:        "Supported services: github (default, via gh), gcloud.",
			Args: []dispatch.ArgSpec{
				{Name: "service", Description: "service to authenticate with", Default: "github", HasDefault: true},
			},
			Validate: actions.ValidateAuth,
			Run:      actions.Auth,
		},
		{
			Name:        "config",
			Description: "read and write configuration",
			Usage:       "dx config <get|set|unset|list> [key] [value]",
			Help: "Keys use dot paths, e.g. 'clone.default_host'. Local values\n" +
				"override remote defaults, which override built-ins.",
			Args: []dispatch.ArgSpec{
				{Name: "action", Description: "get, set, unset, or list", Required: true},
				{Name: "key", Description: "dot-path configuration key"},
				{Name: "value", Description: "value to set"},
			},
			Options:  []dispatch.OptionSpec{formatOption},
			Validate: actions.ValidateConfig,
			Run:      actions.Config,
		},
		{
			Name:        "history",
			Description: "show past command runs",
			Usage:       "dx history [--limit n] [--command name] [--failed]",
			Args:        nil,
			Options: []dispatch.OptionSpec{
				{
					Name:        "limit",
					Flags:       []string{"--limit", "-n"},
					ValueHint:   "<n>",
					Description: "maximum runs to show",
					Parse:       actions.ParseLimit,
				},
				{
					Name:        "command",
					Flags:       []string{"--command", "-c"},
					ValueHint:   "<name>",
					Description: "only runs of this command",
				},
				{
					Name:        "failed",
					Flags:       []string{"--failed"},
					Description: "only failed runs",
					Bool:        true,
				},
				{
					Name:        "since",
					Flags:       []string{"--since"},
					ValueHint:   "<yyyy-mm-dd>",
					Description: "only runs on or after this date",
				},
				{
					Name:        "prune-before",
					Flags:       []string{"--prune-before"},
					ValueHint:   "<yyyy-mm-dd>",
					Description: "delete runs older than this date and exit",
				},
				formatOption,
			},
			Run: actions.History,
		},
		{
			Name:        "version",
			Description: "print the dx version",
			Usage:       "dx version",
			Run:         actions.Version,
		},
		{
			Name:        "shell-init",
			Description: "print the shell integration wrapper",
			Usage:       "dx shell-init [--install]",
			Hidden:      true,
			Options: []dispatch.OptionSpec{
				{
					Name:        "install",
					Flags:       []string{"--install"},
					Description: "append the eval line to the shell rc file",
					Bool:        true,
				},
			},
			Run: actions.ShellInit,
		},
	}

	for _, d := range descriptors {
		if err := reg.Register(d); err != nil {
			return nil, err
		}
	}

	// help closes over the registry it lists.
	if err := reg.Register(helpDescriptor(reg)); err != nil {
		return nil, err
	}

	return reg, nil
}
