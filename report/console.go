// Package report prints conversion progress for people watching a terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gookit/color"
	"golang.org/x/crypto/ssh/terminal"
)

// Console writes one line per discovered frame. It is safe for concurrent
// use.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	colors bool
	prefix string
}

// NewConsole returns a Console writing to f, colouring its output when f is
// a terminal.
func NewConsole(f *os.File) *Console {
	return NewConsoleWriter(f, terminal.IsTerminal(int(f.Fd())))
}

func NewConsoleWriter(w io.Writer, colors bool) *Console {
	return &Console{w: w, colors: colors}
}

// WithPrefix returns a Console sharing c's writer whose lines start with
// prefix. Used to tell apart interleaved batch jobs.
func (c *Console) WithPrefix(prefix string) *Console {
	return &Console{w: &lockedWriter{c: c}, colors: c.colors, prefix: prefix}
}

func (c *Console) FoundFrame(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.colors {
		fmt.Fprintf(c.w, "%sFound frame %s\n", color.FgCyan.Render(c.prefix), color.FgGreen.Render(path))
		return
	}
	fmt.Fprintf(c.w, "%sFound frame %s\n", c.prefix, path)
}

// lockedWriter serializes writes of derived consoles through the parent.
type lockedWriter struct{ c *Console }

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	return l.c.w.Write(p)
}
