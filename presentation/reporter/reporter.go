package reporter

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const (
	successPrefix  = "[+]"
	failurePrefix  = "[-]"
	progressPrefix = "[*]"
)

// Reporter writes one status line per event. Prefixes are colored only when out is a terminal.
type Reporter struct {
	out      io.Writer
	success  lipgloss.Style
	failure  lipgloss.Style
	progress lipgloss.Style
}

func New(out io.Writer) *Reporter {
	renderer := lipgloss.NewRenderer(out)
	return &Reporter{
		out:      out,
		success:  renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		failure:  renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		progress: renderer.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

func (r *Reporter) Success(format string, args ...any) {
	r.line(r.success, successPrefix, format, args...)
}

func (r *Reporter) Progress(format string, args ...any) {
	r.line(r.progress, progressPrefix, format, args...)
}

func (r *Reporter) Failure(format string, args ...any) {
	r.line(r.failure, failurePrefix, format, args...)
}

// Error reports err as a failure line, starting with a capital letter.
func (r *Reporter) Error(err error) {
	r.Failure("%s", capitalize(err.Error()))
}

func (r *Reporter) line(style lipgloss.Style, prefix, format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", style.Render(prefix), fmt.Sprintf(format, args...))
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
