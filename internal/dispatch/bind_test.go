package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dx-tools/cli/internal/usage"
)

func TestBind_Positionals(t *testing.T) {
	d := &Descriptor{
		Name: "clone",
		Args: []ArgSpec{
			{Name: "repo", Required: true},
			{Name: "dir"},
		},
		Run: nopHandler,
	}

	ctx, uerr := Bind(d, []string{"acme/widgets", "/tmp/widgets"}, nil, nil, nil)
	require.Nil(t, uerr)

	repo, ok := ctx.Arg("repo")
	require.True(t, ok)
	require.Equal(t, "acme/widgets", repo)

	dir, ok := ctx.Arg("dir")
	require.True(t, ok)
	require.Equal(t, "/tmp/widgets", dir)
}

func TestBind_MissingRequiredArgument(t *testing.T) {
	d := &Descriptor{
		Name: "clone",
		Args: []ArgSpec{{Name: "repo", Required: true}},
		Run:  nopHandler,
	}

	_, uerr := Bind(d, nil, nil, nil, nil)
	require.NotNil(t, uerr)
	require.Equal(t, usage.ErrMissingArgument, uerr.Kind)
	require.Contains(t, uerr.Message, "'repo'")
	require.Equal(t, 2, uerr.GetExitCode())
}

func TestBind_OptionalDefaultAndAbsence(t *testing.T) {
	d := &Descriptor{
		Name: "auth",
		Args: []ArgSpec{
			{Name: "service", Default: "github", HasDefault: true},
		},
		Run: nopHandler,
	}

	ctx, uerr := Bind(d, nil, nil, nil, nil)
	require.Nil(t, uerr)

	service, ok := ctx.Arg("service")
	require.True(t, ok)
	require.Equal(t, "github", service)

	// No default: the slot is absent, not empty.
	d2 := &Descriptor{
		Name: "cd",
		Args: []ArgSpec{{Name: "query"}},
		Run:  nopHandler,
	}
	ctx, uerr = Bind(d2, nil, nil, nil, nil)
	require.Nil(t, uerr)
	_, ok = ctx.Arg("query")
	require.False(t, ok)
}

func TestBind_VariadicAbsorbsRestAndTail(t *testing.T) {
	d := &Descriptor{
		Name: "run",
		Args: []ArgSpec{
			{Name: "task", Required: true},
			{Name: "args", Variadic: true},
		},
		Run: nopHandler,
	}

	ctx, uerr := Bind(d, []string{"test", "unit"}, []string{"-run", "TestFoo"}, nil, nil)
	require.Nil(t, uerr)

	task, _ := ctx.Arg("task")
	require.Equal(t, "test", task)
	require.Equal(t, []string{"unit", "-run", "TestFoo"}, ctx.ArgSlice("args"))
}

func TestBind_VariadicBindsEmptySliceNeverAbsent(t *testing.T) {
	d := &Descriptor{
		Name: "up",
		Args: []ArgSpec{{Name: "tools", Variadic: true}},
		Run:  nopHandler,
	}

	ctx, uerr := Bind(d, nil, nil, nil, nil)
	require.Nil(t, uerr)

	tools := ctx.ArgSlice("tools")
	require.NotNil(t, tools)
	require.Empty(t, tools)
}

func TestBind_ExactTokensForRequired(t *testing.T) {
	d := &Descriptor{
		Name: "config",
		Args: []ArgSpec{
			{Name: "action", Required: true},
			{Name: "key", Required: true},
		},
		Run: nopHandler,
	}

	ctx, uerr := Bind(d, []string{"get", "editor"}, nil, nil, nil)
	require.Nil(t, uerr)

	action, _ := ctx.Arg("action")
	key, _ := ctx.Arg("key")
	require.Equal(t, "get", action)
	require.Equal(t, "editor", key)
}

func TestBind_BoolOption(t *testing.T) {
	d := &Descriptor{
		Name: "history",
		Options: []OptionSpec{
			{Name: "failed", Flags: []string{"--failed"}, Bool: true},
		},
		Run: nopHandler,
	}

	ctx, uerr := Bind(d, nil, nil, NewParsedOptions([]string{"--failed"}), nil)
	require.Nil(t, uerr)
	require.True(t, ctx.OptionBool("failed"))

	ctx, uerr = Bind(d, nil, nil, NewParsedOptions(nil), nil)
	require.Nil(t, uerr)
	require.False(t, ctx.OptionBool("failed"))
}

func TestBind_MissingRequiredOption(t *testing.T) {
	d := &Descriptor{
		Name: "x",
		Options: []OptionSpec{
			{Name: "out", Flags: []string{"--out"}, Required: true},
		},
		Run: nopHandler,
	}

	_, uerr := Bind(d, nil, nil, NewParsedOptions(nil), nil)
	require.NotNil(t, uerr)
	require.Equal(t, usage.ErrInvalidOption, uerr.Kind)
	require.Equal(t, 2, uerr.GetExitCode())
}

func TestBind_OptionChoices(t *testing.T) {
	d := &Descriptor{
		Name: "list",
		Options: []OptionSpec{
			{Name: "format", Flags: []string{"--format"}, Choices: []string{"text", "json"}, Default: "text", HasDefault: true},
		},
		Run: nopHandler,
	}

	ctx, uerr := Bind(d, nil, nil, NewParsedOptions([]string{"--format=json"}), nil)
	require.Nil(t, uerr)
	require.Equal(t, "json", ctx.OptionString("format", ""))

	// Default applies when the flag is absent.
	ctx, uerr = Bind(d, nil, nil, NewParsedOptions(nil), nil)
	require.Nil(t, uerr)
	require.Equal(t, "text", ctx.OptionString("format", ""))

	_, uerr = Bind(d, nil, nil, NewParsedOptions([]string{"--format=yaml"}), nil)
	require.NotNil(t, uerr)
	require.Equal(t, usage.ErrInvalidOption, uerr.Kind)
	require.Contains(t, uerr.Message, "yaml")
	require.Contains(t, uerr.Message, "text, json")
}

func TestBind_OptionParser(t *testing.T) {
	parsePositive := func(raw string) (any, error) {
		if raw == "7" {
			return 7, nil
		}
		return nil, errors.New("expected a number")
	}

	d := &Descriptor{
		Name: "history",
		Options: []OptionSpec{
			{Name: "limit", Flags: []string{"--limit", "-n"}, Parse: parsePositive},
		},
		Run: nopHandler,
	}

	ctx, uerr := Bind(d, nil, nil, NewParsedOptions([]string{"-n=7"}), nil)
	require.Nil(t, uerr)
	require.Equal(t, 7, ctx.OptionInt("limit", 0))

	_, uerr = Bind(d, nil, nil, NewParsedOptions([]string{"--limit=x"}), nil)
	require.NotNil(t, uerr)
	require.Equal(t, usage.ErrInvalidOption, uerr.Kind)
	require.Contains(t, uerr.Message, "expected a number")
}
