package actions

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dx-tools/cli/internal/dispatch"
)

// ValidateClone vetoes the clone command when git is missing.
var ValidateClone = requireTool("git")

// Clone fetches a repository into its conventional slot under the
// source root and requests a directory change into it.
//
// The repo argument accepts a full URL (https or ssh) or the
// "org/repo" shorthand, expanded with the configured default host.
func Clone(ctx *dispatch.Context) error {
	repo, _ := ctx.Arg("repo")

	defaultHost, _ := ctx.Config.Get("clone.default_host")
	url, slot, err := cloneTarget(repo, defaultHost)
	if err != nil {
		return err
	}

	dir, ok := ctx.Arg("dir")
	if !ok || dir == "" {
		dir = filepath.Join(sourceRoot(ctx), filepath.FromSlash(slot))
	}

	ctx.Logger.Info("clone: %s -> %s", url, dir)
	if err := ctx.App.Git.Clone(url, dir); err != nil {
		return err
	}

	ctx.Logger.Success("clone: %s", slot)
	return ctx.App.Nav.Request(dir)
}

// cloneTarget normalizes a repo reference into a clone URL and the
// host/org/repo slot it belongs to in the source tree.
func cloneTarget(repo, defaultHost string) (url, slot string, err error) {
	switch {
	case strings.HasPrefix(repo, "git@"):
		// git@host:org/repo.git
		rest := strings.TrimPrefix(repo, "git@")
		host, path, ok := strings.Cut(rest, ":")
		if !ok {
			return "", "", fmt.Errorf("unrecognized repository reference: %s", repo)
		}
		return repo, host + "/" + trimGitSuffix(path), nil

	case strings.Contains(repo, "://"):
		// https://host/org/repo
		_, rest, _ := strings.Cut(repo, "://")
		parts := strings.SplitN(trimGitSuffix(rest), "/", 3)
		if len(parts) != 3 {
			return "", "", fmt.Errorf("unrecognized repository reference: %s", repo)
		}
		return repo, strings.Join(parts, "/"), nil

	default:
		// org/repo shorthand against the default host
		parts := strings.Split(trimGitSuffix(repo), "/")
		if len(parts) == 2 {
			slot = defaultHost + "/" + parts[0] + "/" + parts[1]
			return "https://" + slot + ".git", slot, nil
		}
		if len(parts) == 3 {
			slot = strings.Join(parts, "/")
			return "https://" + slot + ".git", slot, nil
		}
		return "", "", fmt.Errorf("unrecognized repository reference: %s (expected org/repo or a URL)", repo)
	}
}

func trimGitSuffix(s string) string {
	return strings.TrimSuffix(strings.TrimSuffix(s, "/"), ".git")
}
