// Package tools delegates work to external developer-environment
// executables (mise, gh, gcloud). dx never reimplements their behavior;
// it only locates them and hands over the terminal.
package tools

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/dx-tools/cli/internal/domain"
)

// Runner implements domain.ToolRunner with passthrough stdio.
type Runner struct{}

// NewRunner creates a tool runner.
func NewRunner() *Runner {
	return &Runner{}
}

// IsInstalled checks if the named tool is on PATH.
func (r *Runner) IsInstalled(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

// Run executes the tool with inherited stdio and blocks until it exits.
// The tool's own exit status is surfaced as an error; its output is not
// captured.
func (r *Runner) Run(tool string, args ...string) error {
	path, err := exec.LookPath(tool)
	if err != nil {
		return fmt.Errorf("%s is not installed", tool)
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Verify Runner implements domain.ToolRunner.
var _ domain.ToolRunner = (*Runner)(nil)
