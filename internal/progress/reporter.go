// Package progress reports batch progress for long CLI runs.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives progress updates. Implementations are safe for use
// from several goroutines.
type Reporter interface {
	Start(total int, description string)
	Done(item string)
	Finish()
}

// NewReporter returns a TerminalReporter for interactive runs, a LineReporter
// in CI, and a silent reporter when quiet is set.
func NewReporter(quiet bool) Reporter {
	switch {
	case quiet:
		return Nop{}
	case os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "":
		return &LineReporter{W: os.Stderr}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar on stderr.
type TerminalReporter struct {
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Done(item string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		r.bar.Describe(item)
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints one line per finished item, for logs.
type LineReporter struct {
	W io.Writer

	mu    sync.Mutex
	total int
	done  int
}

func (r *LineReporter) Start(total int, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total, r.done = total, 0
	fmt.Fprintf(r.W, "%s: %d items\n", description, total)
}

func (r *LineReporter) Done(item string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done++
	fmt.Fprintf(r.W, "[%d/%d] %s\n", r.done, r.total, item)
}

func (r *LineReporter) Finish() {}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int, string) {}
func (Nop) Done(string)       {}
func (Nop) Finish()           {}
