package nav

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dx-tools/cli/internal/domain"
)

// Changer implements domain.DirChanger. Handlers request a directory
// change; main reads the pending path back and performs the one
// CD: emission before exiting.
type Changer struct {
	pending string
}

// NewChanger creates a directory-change collaborator.
func NewChanger() *Changer {
	return &Changer{}
}

// Request validates that path is an existing directory and records its
// absolute form as the pending change.
func (c *Changer) Request(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("no such directory: %s", abs)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", abs)
	}

	c.pending = abs
	return nil
}

// Pending returns the recorded absolute path, if any.
func (c *Changer) Pending() (string, bool) {
	return c.pending, c.pending != ""
}

// Sentinel formats the line the shell wrapper watches for.
func Sentinel(path string) string {
	return "CD:" + path
}

// Verify Changer implements domain.DirChanger.
var _ domain.DirChanger = (*Changer)(nil)
