package config

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dx-tools/cli/internal/log"
)

func TestManager_RemoteDefaultsLayer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"clone": {"default_host": "git.corp.example"}, "team": {"name": "platform"}}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	m, err := NewManager(Options{
		Path:            filepath.Join(dir, "config.json"),
		RemoteURL:       srv.URL,
		RemoteCachePath: filepath.Join(dir, "remote.json"),
		Logger:          log.NopLogger{},
	})
	require.NoError(t, err)

	// Remote overrides the in-code default.
	host, ok := m.Get("clone.default_host")
	require.True(t, ok)
	require.Equal(t, "git.corp.example", host)

	name, ok := m.Get("team.name")
	require.True(t, ok)
	require.Equal(t, "platform", name)

	// Local overrides remote.
	require.NoError(t, m.Set("clone.default_host", "github.com"))
	host, _ = m.Get("clone.default_host")
	require.Equal(t, "github.com", host)

	// The fetched document was cached for the next startup.
	_, err = os.Stat(filepath.Join(dir, "remote.json"))
	require.NoError(t, err)
}

func TestManager_FreshCacheSkipsFetch(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		_, _ = w.Write([]byte(`{"team": {"name": "platform"}}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cache := filepath.Join(dir, "remote.json")
	require.NoError(t, os.WriteFile(cache, []byte(`{"team": {"name": "cached"}}`), 0600))

	m, err := NewManager(Options{
		Path:            filepath.Join(dir, "config.json"),
		RemoteURL:       srv.URL,
		RemoteCachePath: cache,
		Logger:          log.NopLogger{},
	})
	require.NoError(t, err)

	name, ok := m.Get("team.name")
	require.True(t, ok)
	require.Equal(t, "cached", name)
	require.Zero(t, fetches)
}

func TestManager_FetchFailureDegradesToStaleCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	cache := filepath.Join(dir, "remote.json")
	require.NoError(t, os.WriteFile(cache, []byte(`{"team": {"name": "stale"}}`), 0600))
	// Age the cache past its TTL so a fetch is attempted.
	aged := time.Now().Add(-2 * remoteCacheTTL)
	require.NoError(t, os.Chtimes(cache, aged, aged))

	m, err := NewManager(Options{
		Path:            filepath.Join(dir, "config.json"),
		RemoteURL:       srv.URL,
		RemoteCachePath: cache,
		Logger:          log.NopLogger{},
	})
	require.NoError(t, err)

	name, ok := m.Get("team.name")
	require.True(t, ok)
	require.Equal(t, "stale", name)
}
