// Package scan enumerates repository directories under a source root
// laid out by the <host>/<org>/<repo> convention.
package scan

import (
	"os"
	"path/filepath"
)

// Scan returns the relative paths of all directories exactly three
// levels below root (host/org/repo). The result is fully materialized
// and in filesystem-enumeration order; ranking is the matcher's job.
//
// A missing or unreadable root, or unreadable subtrees, contribute
// nothing rather than failing: callers surface an explicit "no
// directories found" condition when the result is empty.
func Scan(root string) []string {
	out := []string{}

	hosts, err := os.ReadDir(root)
	if err != nil {
		return out
	}

	for _, host := range hosts {
		if !host.IsDir() {
			continue
		}
		orgs, err := os.ReadDir(filepath.Join(root, host.Name()))
		if err != nil {
			continue
		}
		for _, org := range orgs {
			if !org.IsDir() {
				continue
			}
			repos, err := os.ReadDir(filepath.Join(root, host.Name(), org.Name()))
			if err != nil {
				continue
			}
			for _, repo := range repos {
				if !repo.IsDir() {
					continue
				}
				out = append(out, filepath.ToSlash(filepath.Join(host.Name(), org.Name(), repo.Name())))
			}
		}
	}

	return out
}
