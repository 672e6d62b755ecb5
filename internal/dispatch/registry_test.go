package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dx-tools/cli/internal/usage"
)

func nopHandler(ctx *Context) error { return nil }

func TestRegister_NameCollision(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(&Descriptor{Name: "cd", Run: nopHandler}))

	err := reg.Register(&Descriptor{Name: "cd", Run: nopHandler})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}

func TestRegister_AliasCollidesWithName(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(&Descriptor{Name: "list", Run: nopHandler}))

	err := reg.Register(&Descriptor{Name: "other", Aliases: []string{"list"}, Run: nopHandler})
	require.Error(t, err)
}

func TestRegister_AliasCollidesWithAlias(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(&Descriptor{Name: "cd", Aliases: []string{"j"}, Run: nopHandler}))

	err := reg.Register(&Descriptor{Name: "jump", Aliases: []string{"j"}, Run: nopHandler})
	require.Error(t, err)
}

func TestRegister_RejectsMalformedDescriptors(t *testing.T) {
	tests := []struct {
		name string
		desc *Descriptor
	}{
		{
			name: "no name",
			desc: &Descriptor{Run: nopHandler},
		},
		{
			name: "variadic not last",
			desc: &Descriptor{
				Name: "bad",
				Args: []ArgSpec{
					{Name: "rest", Variadic: true},
					{Name: "after", Required: true},
				},
				Run: nopHandler,
			},
		},
		{
			name: "required after optional",
			desc: &Descriptor{
				Name: "bad",
				Args: []ArgSpec{
					{Name: "maybe"},
					{Name: "must", Required: true},
				},
				Run: nopHandler,
			},
		},
		{
			name: "default on required argument",
			desc: &Descriptor{
				Name: "bad",
				Args: []ArgSpec{
					{Name: "must", Required: true, Default: "x", HasDefault: true},
				},
				Run: nopHandler,
			},
		},
		{
			name: "default on variadic argument",
			desc: &Descriptor{
				Name: "bad",
				Args: []ArgSpec{
					{Name: "rest", Variadic: true, Default: "x", HasDefault: true},
				},
				Run: nopHandler,
			},
		},
		{
			name: "option without flags",
			desc: &Descriptor{
				Name:    "bad",
				Options: []OptionSpec{{Name: "limit"}},
				Run:     nopHandler,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Register(tt.desc)
			require.Error(t, err)

			var ue *usage.Error
			require.ErrorAs(t, err, &ue)
			require.Equal(t, usage.ErrInvalidDefinition, ue.Kind)
		})
	}
}

func TestResolve_NamePrecedesAlias(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Descriptor{Name: "cd", Aliases: []string{"j"}, Run: nopHandler}))
	require.NoError(t, reg.Register(&Descriptor{Name: "clone", Aliases: []string{"cl"}, Run: nopHandler}))

	d, uerr := reg.Resolve("cd")
	require.Nil(t, uerr)
	require.Equal(t, "cd", d.Name)

	d, uerr = reg.Resolve("cl")
	require.Nil(t, uerr)
	require.Equal(t, "clone", d.Name)
}

func TestResolve_UnknownIsTyped(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Descriptor{Name: "list", Run: nopHandler}))

	_, uerr := reg.Resolve("lst")
	require.NotNil(t, uerr)
	require.Equal(t, usage.ErrUnknownCommand, uerr.Kind)
	require.Contains(t, uerr.Message, "'lst' is not a dx command")
	require.Contains(t, uerr.Message, "list")
}

func TestList_HidesHiddenByDefault(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Descriptor{Name: "cd", Run: nopHandler}))
	require.NoError(t, reg.Register(&Descriptor{Name: "shell-init", Hidden: true, Run: nopHandler}))

	visible := reg.List(false)
	require.Len(t, visible, 1)
	require.Equal(t, "cd", visible[0].Name)

	all := reg.List(true)
	require.Len(t, all, 2)

	// Hidden commands still resolve by exact name.
	d, uerr := reg.Resolve("shell-init")
	require.Nil(t, uerr)
	require.Equal(t, "shell-init", d.Name)
}
