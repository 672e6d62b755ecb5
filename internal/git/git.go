package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dx-tools/cli/internal/domain"
)

// Provider implements domain.GitProvider by shelling out to git.
type Provider struct{}

// NewProvider creates a git provider.
func NewProvider() *Provider {
	return &Provider{}
}

// IsAvailable checks if git is installed and functional.
func (p *Provider) IsAvailable() bool {
	path, err := exec.LookPath("git")
	if err != nil {
		return false
	}
	return exec.Command(path, "--version").Run() == nil
}

// RepoRoot returns the root directory of the git repository containing
// the given path.
func (p *Provider) RepoRoot(path string) (string, error) {
	return runGit("-C", path, "rev-parse", "--show-toplevel")
}

// Clone clones a repository URL into the given directory. Progress goes
// straight to the user's terminal.
func (p *Provider) Clone(url, dir string) error {
	cmd := exec.Command("git", "clone", url, dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func runGit(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command("git", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Verify Provider implements domain.GitProvider.
var _ domain.GitProvider = (*Provider)(nil)
