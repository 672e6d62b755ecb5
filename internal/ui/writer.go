// Package ui handles console output: a writer with optional pager
// support for long listings.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dx-tools/cli/internal/domain"
	"golang.org/x/term"
)

// Writer implements domain.OutputWriter for stdout.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfigGetter sets the config getter function.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager if appropriate: the output is
// a TTY, paging is not disabled, and a usable pager command resolves
// from override, config, $PAGER, or the less default.
func (w *Writer) Pager(content string) {
	if w.pagerDisabled {
		fmt.Fprint(w.out, content)
		return
	}

	f, ok := w.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w.out, content)
		return
	}

	pagerCmd := w.pagerOverride
	if pagerCmd == "" && w.configGetter != nil {
		if configPager, ok := w.configGetter("pager"); ok {
			pagerCmd = configPager
		}
	}
	if pagerCmd == "" && w.envGetter != nil {
		pagerCmd = w.envGetter("PAGER")
	}
	if pagerCmd == "" {
		pagerCmd = "less -FRSX"
	}

	if pagerCmd == "cat" {
		fmt.Fprint(w.out, content)
		return
	}

	parts := strings.Fields(pagerCmd)
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprint(w.out, content)
	}
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)
