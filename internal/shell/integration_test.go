package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScript_InterceptsSentinel(t *testing.T) {
	// The wrapper's contract: run the binary, cd on a CD: line, forward
	// everything else.
	require.Contains(t, Script, `case "$out" in`)
	require.Contains(t, Script, "CD:*")
	require.Contains(t, Script, `cd "${out#CD:}"`)
	require.Contains(t, Script, "complete -F _dx_complete dx")
	require.True(t, strings.HasPrefix(strings.TrimSpace(Script), "# dx shell integration"))
}

func TestRCFile_PerShell(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		shell string
		want  string
	}{
		{"/bin/zsh", ".zshrc"},
		{"/usr/bin/bash", ".bashrc"},
		{"/bin/dash", ".profile"},
		{"", ".profile"},
	}

	for _, tt := range tests {
		t.Setenv("SHELL", tt.shell)
		got, err := RCFile()
		require.NoError(t, err)
		require.Equal(t, filepath.Join(home, tt.want), got, "SHELL=%q", tt.shell)
	}
}

func TestInstall_AppendsOnce(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".zshrc")
	require.NoError(t, os.WriteFile(rc, []byte("export PATH=$PATH:~/bin\n"), 0644))

	changed, err := Install(rc)
	require.NoError(t, err)
	require.True(t, changed)

	content, err := os.ReadFile(rc)
	require.NoError(t, err)
	require.Contains(t, string(content), "export PATH") // existing content kept
	require.Contains(t, string(content), installLine)

	// A second install is a no-op.
	changed, err = Install(rc)
	require.NoError(t, err)
	require.False(t, changed)

	again, err := os.ReadFile(rc)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(again), installLine))
}

func TestInstall_CreatesMissingRCFile(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".profile")

	changed, err := Install(rc)
	require.NoError(t, err)
	require.True(t, changed)

	content, err := os.ReadFile(rc)
	require.NoError(t, err)
	require.Contains(t, string(content), installLine)
}
