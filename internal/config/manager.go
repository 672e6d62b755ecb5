// Package config implements the dx configuration manager: a local
// hand-editable JSON file layered over remote team defaults and in-code
// fallbacks. Lookup precedence is local > remote > Defaults.
//
// The manager is constructed once at process start and passed by
// reference to whatever needs it; there is no module-level cache.
package config

import (
	"sync"

	"github.com/dx-tools/cli/internal/domain"
)

// Manager implements domain.ConfigManager over a nested document.
type Manager struct {
	mu     sync.RWMutex
	path   string
	local  map[string]any
	remote map[string]any
	logger domain.Logger
}

// Options configures manager construction.
type Options struct {
	// Path is the local config file location.
	Path string

	// RemoteURL, when set, points at a JSON document of shared defaults.
	RemoteURL string

	// RemoteCachePath is where the fetched remote document is cached.
	RemoteCachePath string

	Logger domain.Logger
}

// NewManager loads the local file (and, if configured, the remote
// defaults) once and returns the manager. A corrupt local file is
// surfaced as an error rather than silently dropped.
func NewManager(opts Options) (*Manager, error) {
	local, err := readDocument(opts.Path)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		path:   opts.Path,
		local:  local,
		logger: opts.Logger,
	}

	// The remote URL may itself live in the local file.
	url := opts.RemoteURL
	if url == "" {
		url, _ = lookup(local, "remote.url")
	}
	m.remote = loadRemote(url, opts.RemoteCachePath, opts.Logger)

	return m, nil
}

// Get returns the value for a dot-path key, checking local config,
// then remote defaults, then in-code defaults.
func (m *Manager) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := lookup(m.local, key); ok {
		return v, true
	}
	if v, ok := lookup(m.remote, key); ok {
		return v, true
	}
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	return "", false
}

// Has reports whether the key resolves to a value at any layer.
func (m *Manager) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// GetAll returns every known key flattened to dot-paths, with the same
// precedence as Get.
func (m *Manager) GetAll() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string)
	for key, fn := range Defaults {
		out[key] = fn()
	}
	flatten(m.remote, "", out)
	flatten(m.local, "", out)
	return out
}

// Set writes a value into the local document and persists it.
func (m *Manager) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	put(m.local, key, value)
	return writeDocument(m.path, m.local)
}

// Unset removes a key from the local document and persists the change.
// Removing a key a remote or in-code default covers re-exposes that
// default; unsetting an unknown key is a no-op.
func (m *Manager) Unset(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !remove(m.local, key) {
		return nil
	}
	return writeDocument(m.path, m.local)
}

// Verify Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)
