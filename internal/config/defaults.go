package config

import (
	"os"

	"github.com/dx-tools/cli/internal/paths"
)

// Default configuration values (in code, not persisted). Keys are
// dot-paths into the nested document.
var Defaults = map[string]func() string{
	"source.root":        func() string { return paths.DefaultSourceRoot() },
	"clone.default_host": func() string { return "github.com" },
	"editor": func() string {
		if editor := os.Getenv("EDITOR"); editor != "" {
			return editor
		}
		return "vi"
	},
	"log.enabled":   func() string { return "true" },
	"log.level":     func() string { return "debug" },
	"history.limit": func() string { return "20" },
	"remote.url":    func() string { return "" },
	"pager":         func() string { return "less -FRSX" },
}
