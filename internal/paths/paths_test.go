package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := AppDataDir()
	require.True(t, strings.HasSuffix(dir, string(filepath.Separator)+"dx"))
	require.DirExists(t, dir)
}

func TestFilePathsLiveInAppDataDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := AppDataDir()
	require.Equal(t, filepath.Join(dir, "config.json"), ConfigFilePath())
	require.Equal(t, filepath.Join(dir, "remote-config.json"), RemoteCachePath())
	require.Equal(t, filepath.Join(dir, "dx.db"), DBPath())
	require.Equal(t, filepath.Join(dir, "dx.log"), LogFilePath())
}

func TestDefaultSourceRoot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, filepath.Join(home, "src"), DefaultSourceRoot())
}
