package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dx-tools/cli/internal/domain"
)

const (
	// remoteCacheTTL is how long a fetched remote document stays fresh.
	remoteCacheTTL = 24 * time.Hour

	// remoteFetchTimeout keeps a slow endpoint from blocking startup.
	remoteFetchTimeout = 3 * time.Second
)

// loadRemote returns the team-shared remote defaults document. A fresh
// cache is used as-is; otherwise the URL is fetched and cached. Any
// failure degrades to the stale cache, then to an empty document.
// Remote config is an enrichment, never a requirement.
func loadRemote(url, cachePath string, logger domain.Logger) map[string]any {
	if url == "" {
		return map[string]any{}
	}

	if info, err := os.Stat(cachePath); err == nil && time.Since(info.ModTime()) < remoteCacheTTL {
		if doc, err := readDocument(cachePath); err == nil {
			return doc
		}
	}

	doc, err := fetchRemote(url)
	if err != nil {
		if logger != nil {
			logger.Warn("config: remote fetch failed: %v", err)
		}
		if stale, err := readDocument(cachePath); err == nil {
			return stale
		}
		return map[string]any{}
	}

	if err := writeDocument(cachePath, doc); err != nil && logger != nil {
		logger.Warn("config: could not cache remote config: %v", err)
	}
	return doc
}

func fetchRemote(url string) (map[string]any, error) {
	client := &http.Client{Timeout: remoteFetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch remote config (status %d)", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse remote config: %w", err)
	}
	return doc, nil
}
