package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/cardvice/tui/theme"
)

// PrettyLogger writes human-facing command output. Unlike component loggers
// it has no levels and never goes to the log file.
type PrettyLogger struct {
	w       io.Writer
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	path    lipgloss.Style
}

// NewPrettyLogger returns a PrettyLogger writing to stderr in the default
// theme.
func NewPrettyLogger() *PrettyLogger {
	t := theme.DefaultTheme
	value := lipgloss.NewStyle().Foreground(t.Colors.Cyan)
	return &PrettyLogger{
		w:       os.Stderr,
		success: t.Success,
		warning: lipgloss.NewStyle().Foreground(t.Colors.Yellow),
		failure: t.Error,
		label:   t.Muted,
		value:   value.Bold(true),
		path:    value.Italic(true),
	}
}

// WithWriter redirects the output to w.
func (p *PrettyLogger) WithWriter(w io.Writer) *PrettyLogger {
	p.w = w
	return p
}

func (p *PrettyLogger) Success(message string) {
	p.line(p.success, theme.IconSuccess, message)
}

func (p *PrettyLogger) WarnPretty(message string) {
	p.line(p.warning, theme.IconWarning, message)
}

// ErrorPretty prints message followed by err, when there is one.
func (p *PrettyLogger) ErrorPretty(message string, err error) {
	if err != nil {
		message += ": " + err.Error()
	}
	p.line(p.failure, theme.IconError, message)
}

// Field prints "label: value".
func (p *PrettyLogger) Field(label string, value interface{}) {
	fmt.Fprintf(p.w, "%s: %s\n", p.label.Render(label), p.value.Render(fmt.Sprint(value)))
}

// Path prints "label: path" with the path styled as one.
func (p *PrettyLogger) Path(label, path string) {
	fmt.Fprintf(p.w, "%s: %s\n", p.label.Render(label), p.path.Render(path))
}

func (p *PrettyLogger) line(style lipgloss.Style, icon, message string) {
	fmt.Fprintln(p.w, style.Render(icon+" "+message))
}
