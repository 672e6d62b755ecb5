// Command dx is a personal development environment CLI: fuzzy
// navigation over a <host>/<org>/<repo> source tree, cloning, editor
// launching, toolchain and task delegation, and local run history.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/dx-tools/cli/internal/app"
	"github.com/dx-tools/cli/internal/cli"
	"github.com/dx-tools/cli/internal/dispatch"
	"github.com/dx-tools/cli/internal/domain"
	"github.com/dx-tools/cli/internal/nav"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	tokens, optionTokens, tail := splitArgs(argv)
	opts := dispatch.NewParsedOptions(optionTokens)

	switch {
	case opts.HasAny("--version", "-v") && len(tokens) == 0:
		tokens = []string{"version"}
	case opts.HasAny("--help", "-h"):
		tokens = append([]string{"help"}, tokens...)
	case len(tokens) == 0:
		tokens = []string{"help"}
	}

	application, err := app.New(app.Options{
		PagerDisabled: opts.Has("--no-pager"),
		PagerOverride: opts.String("--pager", ""),
		StyleEnabled:  styleEnabled(opts),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dx: %v\n", err)
		return 1
	}
	defer func() { _ = app.Close(application) }()

	reg, err := cli.BuildRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dx: %v\n", err)
		return 1
	}

	started := time.Now()
	outcome := dispatch.Dispatch(reg, tokens, tail, opts, application)
	recordRun(application, outcome, tokens, started)

	if outcome.Message != "" {
		fmt.Fprintln(os.Stderr, outcome.Message)
	}

	// The shell wrapper watches stdout for exactly one CD: line.
	if outcome.Succeeded() {
		if pending, ok := application.Nav.Pending(); ok {
			fmt.Println(nav.Sentinel(pending))
		}
	}

	return outcome.ExitCode
}

// splitArgs separates an invocation into positional tokens, option
// tokens (anything starting with '-'), and the pass-through tail after
// the first bare "--".
func splitArgs(argv []string) (tokens, options, tail []string) {
	for i, arg := range argv {
		if arg == "--" {
			tail = append(tail, argv[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "-") && arg != "-" {
			options = append(options, arg)
			continue
		}
		tokens = append(tokens, arg)
	}
	return tokens, options, tail
}

func styleEnabled(opts *dispatch.ParsedOptions) bool {
	if opts.Has("--no-color") {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// recordRun appends one history row. History bookkeeping never affects
// the command's own outcome.
func recordRun(application *domain.Application, outcome dispatch.Outcome, tokens []string, started time.Time) {
	if application.Store == nil || outcome.Command == "" {
		return
	}

	rec := domain.RunRecord{
		ID:        uuid.NewString(),
		Command:   outcome.Command,
		Args:      tokens[1:],
		ExitCode:  outcome.ExitCode,
		Duration:  time.Since(started),
		StartedAt: started,
	}
	if err := application.Store.Record(rec); err != nil {
		application.Logger.Warn("history: record failed: %v", err)
	}
}
