package actions

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dx-tools/cli/internal/dispatch"
	"github.com/dx-tools/cli/internal/domain"
)

// ParseLimit is the custom parser for the --limit option.
func ParseLimit(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("expected a number")
	}
	if n < 0 {
		return nil, fmt.Errorf("expected a non-negative number")
	}
	return n, nil
}

// History lists past command runs from the local database.
func History(ctx *dispatch.Context) error {
	if before := ctx.Raw().Date("--prune-before"); before != nil {
		pruned, err := ctx.App.Store.Prune(*before)
		if err != nil {
			return err
		}
		_, err = ctx.App.Output.Printf("pruned %d runs\n", pruned)
		return err
	}

	limit := ctx.OptionInt("limit", 0)
	if limit == 0 {
		if v, ok := ctx.Config.Get("history.limit"); ok {
			limit, _ = strconv.Atoi(v)
		}
	}

	filter := domain.RunFilter{
		Command:    ctx.OptionString("command", ""),
		FailedOnly: ctx.OptionBool("failed"),
		Limit:      limit,
	}
	if since := ctx.Raw().Date("--since"); since != nil {
		filter.Since = since
	}

	runs, err := ctx.App.Store.List(filter)
	if err != nil {
		return err
	}

	if ctx.OptionString("format", "text") == "json" {
		out, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return err
		}
		_, err = ctx.App.Output.Println(string(out))
		return err
	}

	if len(runs) == 0 {
		_, err := ctx.App.Output.Println("no runs recorded")
		return err
	}

	var b strings.Builder
	for _, r := range runs {
		b.WriteString(formatRun(ctx.App.Styler, r))
		b.WriteString("\n")
	}
	ctx.App.Output.Pager(b.String())
	return nil
}

func formatRun(styler domain.Styler, r domain.RunRecord) string {
	status := styler.Success("ok")
	if r.ExitCode != 0 {
		status = styler.Error(fmt.Sprintf("exit %d", r.ExitCode))
	}

	line := fmt.Sprintf("%s  %-10s %s  %s  %s",
		styler.Muted(r.StartedAt.Local().Format("2006-01-02 15:04:05")),
		r.Command,
		strings.Join(r.Args, " "),
		status,
		styler.Muted(formatDuration(r.Duration)),
	)
	return strings.TrimRight(line, " ")
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(100 * time.Millisecond).String()
}
