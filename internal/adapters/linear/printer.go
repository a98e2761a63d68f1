// Package linear prints catalog results as plain lines for pipes, scripts and CI.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/iconpick/internal/core/domain"
	"go.trai.ch/iconpick/internal/ui/output"
	"go.trai.ch/iconpick/internal/ui/style"
)

// Printer writes results to stdout and human hints to stderr, so stdout stays
// machine-readable.
type Printer struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output
}

// NewPrinter creates a Printer. Nil writers default to the process streams.
func NewPrinter(stdout, stderr io.Writer) *Printer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Printer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
	}
}

// List prints one stored value per line followed by a summary on stderr.
func (p *Printer) List(l domain.Listing) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if l.Total == 0 {
		p.hintLocked(style.Warning + " " + describe(l, "no icons"))
		return
	}

	for _, value := range l.Selections() {
		_, _ = fmt.Fprintln(p.stdout, value)
	}

	summary := fmt.Sprintf("showing %d of %d", len(l.Names), l.Total)
	p.hintLocked(describe(l, summary))
}

// Catalog prints one row per library with its icon count and fingerprint.
func (p *Printer) Catalog(infos []domain.LibraryInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	width := 0
	for _, info := range infos {
		width = max(width, len(info.Library))
	}

	total := 0
	for _, info := range infos {
		total += info.Count
		_, _ = fmt.Fprintf(p.stdout, "%-*s  %5d  %016x\n", width, info.Library, info.Count, info.Fingerprint)
	}
	p.hintLocked(fmt.Sprintf("%d icons in %d libraries", total, len(infos)))
}

// Value prints a single result line.
func (p *Printer) Value(value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintln(p.stdout, value)
}

// Markup prints an SVG document, terminated by a newline.
func (p *Printer) Markup(markup string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !strings.HasSuffix(markup, "\n") {
		markup += "\n"
	}
	_, _ = io.WriteString(p.stdout, markup)
}

// Success prints a confirmation on stderr.
func (p *Printer) Success(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	mark := p.output.String(style.Check).Foreground(p.output.Color(string(style.Green)))
	_, _ = fmt.Fprintf(p.stderr, "%s %s\n", mark, msg)
}

func (p *Printer) hintLocked(msg string) {
	_, _ = fmt.Fprintln(p.stderr, p.output.String(msg).Faint())
}

func describe(l domain.Listing, head string) string {
	var b strings.Builder
	b.WriteString(head)
	b.WriteString(" in ")
	b.WriteString(l.Library.String())
	if q := strings.TrimSpace(l.Query); q != "" {
		fmt.Fprintf(&b, " matching %q", q)
	}
	return b.String()
}
