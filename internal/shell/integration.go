// Package shell generates the wrapper function that lets dx change the
// calling shell's directory. The binary itself can only print the
// CD:<path> sentinel; the wrapper turns it into a real cd.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Script is the wrapper sourced into the user's shell. It runs the real
// binary, forwards normal output, and intercepts the CD sentinel.
const Script = `# dx shell integration
dx() {
    local out
    out="$(command dx "$@")" || {
        [ -n "$out" ] && printf '%s\n' "$out"
        return 1
    }
    case "$out" in
        CD:*)
            cd "${out#CD:}" || return 1
            ;;
        *)
            [ -n "$out" ] && printf '%s\n' "$out"
            ;;
    esac
}

if [ -n "$BASH_VERSION" ] || [ -n "$ZSH_VERSION" ]; then
    [ -n "$ZSH_VERSION" ] && autoload -Uz +X bashcompinit 2>/dev/null && bashcompinit 2>/dev/null
    _dx_complete() {
        COMPREPLY=($(compgen -W "cd clone open list up run auth config history version help" -- "${COMP_WORDS[COMP_CWORD]}"))
    }
    complete -F _dx_complete dx 2>/dev/null
fi
`

const installMarker = "# dx shell integration (added by 'dx shell-init --install')"
const installLine = `eval "$(command dx shell-init)"`

// RCFile picks the rc file for the user's login shell. Unknown shells
// fall back to .profile.
func RCFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	shellPath := os.Getenv("SHELL")
	switch filepath.Base(shellPath) {
	case "zsh":
		return filepath.Join(home, ".zshrc"), nil
	case "bash":
		return filepath.Join(home, ".bashrc"), nil
	default:
		return filepath.Join(home, ".profile"), nil
	}
}

// Install appends the eval line to rcPath unless it is already present.
// Returns true when the file was modified.
func Install(rcPath string) (bool, error) {
	existing, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read %s: %w", rcPath, err)
	}

	if strings.Contains(string(existing), installLine) {
		return false, nil
	}

	f, err := os.OpenFile(rcPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", rcPath, err)
	}
	defer func() { _ = f.Close() }()

	block := "\n" + installMarker + "\n" + installLine + "\n"
	if _, err := f.WriteString(block); err != nil {
		return false, fmt.Errorf("write %s: %w", rcPath, err)
	}
	return true, nil
}
