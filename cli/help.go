package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/cardvice/tui/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const (
	helpMaxWidth = 60
	helpMinWidth = 40
)

var exampleMarkers = []string{"\nExamples:\n", "\nExample:\n", "\nEXAMPLES:\n", "\nEXAMPLE:\n"}

// helpWidth is the terminal width clamped to a readable column.
func helpWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < helpMinWidth || width > helpMaxWidth {
		return helpMaxWidth
	}
	return width
}

// wrapText wraps each paragraph of text at width, keeping existing line
// breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = helpMaxWidth
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			lines = append(lines, paragraph)
			continue
		}
		line := ""
		for _, word := range strings.Fields(paragraph) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// SetStyledHelp installs the cardvice help renderer on cmd.
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		renderHelp(c.OutOrStdout(), c, helpWidth()-2)
	})
}

// ApplyStyledHelpRecursive installs the help renderer on cmd and every
// subcommand and silences cobra's usage dump, since errors are reported by
// the ErrorHandler. Call it once the command tree is complete.
func ApplyStyledHelpRecursive(cmd *cobra.Command) {
	SetStyledHelp(cmd)
	cmd.SetUsageFunc(func(*cobra.Command) error { return nil })
	for _, sub := range cmd.Commands() {
		ApplyStyledHelpRecursive(sub)
	}
}

// parseDescription splits a Long text at its examples marker.
func parseDescription(long string) (description, examples string) {
	for _, marker := range exampleMarkers {
		if i := strings.Index(long, marker); i >= 0 {
			return strings.TrimSpace(long[:i]), strings.TrimSpace(long[i+len(marker):])
		}
	}
	return long, ""
}

type helpStyles struct {
	theme   *theme.Theme
	title   lipgloss.Style
	heading lipgloss.Style
	command lipgloss.Style
	sub     lipgloss.Style
	flag    lipgloss.Style
	summary lipgloss.Style
}

func newHelpStyles() helpStyles {
	t := theme.DefaultTheme
	return helpStyles{
		theme:   t,
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Orange),
		heading: lipgloss.NewStyle().Italic(true).Foreground(t.Colors.Orange),
		command: lipgloss.NewStyle().Foreground(t.Colors.Cyan),
		sub:     lipgloss.NewStyle().Foreground(t.Colors.Blue),
		flag:    lipgloss.NewStyle().Foreground(t.Colors.Violet),
		summary: lipgloss.NewStyle().Italic(true),
	}
}

func renderHelp(w io.Writer, cmd *cobra.Command, width int) {
	s := newHelpStyles()

	fmt.Fprintln(w, " "+s.title.Render(strings.ToUpper(cmd.CommandPath())))

	description, examples := cmd.Short, ""
	if cmd.Long != "" {
		description, examples = parseDescription(cmd.Long)
	}
	if cmd.Short != "" {
		writeIndented(w, wrapText(cmd.Short, width), s.summary)
	}
	if description != "" && description != cmd.Short {
		fmt.Fprintln(w)
		writeIndented(w, wrapText(description, width), lipgloss.NewStyle())
	}

	renderUsage(w, s, cmd)
	renderCommands(w, s, cmd)
	renderFlags(w, s, cmd)

	if cmd.Example != "" {
		examples = cmd.Example
	}
	if examples != "" {
		fmt.Fprintln(w, "\n "+s.heading.Render("EXAMPLES"))
		renderExamples(w, s, examples, strings.Fields(cmd.CommandPath())[0])
	}

	if cmd.HasSubCommands() {
		fmt.Fprintf(w, "\n Use \"%s [command] --help\" for more information.\n", cmd.CommandPath())
	}
}

func writeIndented(w io.Writer, text string, style lipgloss.Style) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(w, " "+style.Render(line))
	}
}

func renderUsage(w io.Writer, s helpStyles, cmd *cobra.Command) {
	if !cmd.Runnable() && !cmd.HasSubCommands() {
		return
	}
	fmt.Fprintln(w, "\n "+s.heading.Render("USAGE"))
	if cmd.Runnable() {
		fmt.Fprintf(w, " %s\n", cmd.UseLine())
	}
	if cmd.HasSubCommands() {
		fmt.Fprintf(w, " %s [command]\n", cmd.CommandPath())
	}
}

func renderCommands(w io.Writer, s helpStyles, cmd *cobra.Command) {
	if !cmd.HasAvailableSubCommands() {
		return
	}
	var subs []*cobra.Command
	width := 0
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			subs = append(subs, sub)
			width = max(width, len(sub.Name()))
		}
	}

	name := s.sub.Bold(true)
	fmt.Fprintln(w, "\n "+s.heading.Render("COMMANDS"))
	for _, sub := range subs {
		pad := strings.Repeat(" ", width-len(sub.Name()))
		fmt.Fprintf(w, " %s%s  %s\n", name.Render(sub.Name()), pad, sub.Short)
	}
}

// renderFlags lists local flags in a table, or on one muted line for
// commands with subcommands.
func renderFlags(w io.Writer, s helpStyles, cmd *cobra.Command) {
	var flags []*pflag.Flag
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			flags = append(flags, f)
		}
	})
	if len(flags) == 0 {
		return
	}

	if cmd.HasAvailableSubCommands() {
		names := make([]string, len(flags))
		for i, f := range flags {
			names[i] = "--" + f.Name
			if f.Shorthand != "" {
				names[i] = "-" + f.Shorthand + "/" + names[i]
			}
		}
		fmt.Fprintln(w, "\n "+s.theme.Muted.Render("Flags: "+strings.Join(names, ", ")))
		return
	}

	width := 0
	for _, f := range flags {
		width = max(width, len(formatFlagName(f)))
	}
	fmt.Fprintln(w, "\n "+s.heading.Render("FLAGS"))
	for _, f := range flags {
		name := formatFlagName(f)
		usage := f.Usage
		if hasDefault(f) {
			usage += s.theme.Muted.Render(fmt.Sprintf(" (default: %s)", f.DefValue))
		}
		fmt.Fprintf(w, " %s%s  %s\n", s.flag.Render(name), strings.Repeat(" ", width-len(name)), usage)
	}
}

func hasDefault(f *pflag.Flag) bool {
	switch f.DefValue {
	case "", "false", "[]", "0":
		return false
	}
	return true
}

// formatFlagName returns "-f, --flag", or "--flag" indented to line up.
func formatFlagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return "    --" + f.Name
}

// renderExamples mutes comment lines and colors the parts of command lines.
func renderExamples(w io.Writer, s helpStyles, examples, root string) {
	for _, line := range strings.Split(examples, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			fmt.Fprintln(w)
		case strings.HasPrefix(line, "#"):
			fmt.Fprintln(w, " "+s.theme.Muted.Render(line))
		default:
			fmt.Fprintln(w, "   "+styleExample(s, line, root))
		}
	}
}

func styleExample(s helpStyles, line, root string) string {
	parts := strings.Fields(line)
	for i, part := range parts {
		switch {
		case i == 0 && part == root:
			parts[i] = s.command.Render(part)
		case strings.HasPrefix(part, "-"):
			parts[i] = s.flag.Render(part)
		case i == 1:
			parts[i] = s.sub.Render(part)
		}
	}
	return strings.Join(parts, " ")
}
