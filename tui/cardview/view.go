package cardview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/grovetools/cardvice/pkg/transition"
	"github.com/grovetools/cardvice/tui/theme"
)

const (
	// sidebarWidth includes the border.
	sidebarWidth = 28
	// sidebarFirstRow is the screen row of the "All" entry.
	sidebarFirstRow = 2

	defaultWidth  = 80
	defaultHeight = 24
	maxCardWidth  = 60
)

// View renders the card view.
func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = defaultWidth, defaultHeight
	}

	sidebar := m.renderSidebar(height)
	mainWidth := width - sidebarWidth - 2
	if mainWidth < 20 {
		mainWidth = 20
	}
	main := m.renderMain(mainWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main)
	footer := m.help.View()
	return lipgloss.JoinVertical(lipgloss.Left, body, "", footer)
}

func (m Model) renderSidebar(height int) string {
	counts := m.deck.Counts()
	scope := m.deck.Scope()

	var total int
	for _, n := range counts {
		total += n
	}

	lines := []string{
		m.theme.Bold.Render("Categories"),
		"",
		m.sidebarRow(scope.IsAll(), "", "All", total),
	}
	for _, c := range advice.AllCategories() {
		lines = append(lines, m.sidebarRow(!scope.IsAll() && scope.Selected(c), c.Icon(), c.String(), counts[c]))
	}
	lines = append(lines, "", m.theme.Muted.Render(fmt.Sprintf("mode: %s", m.deck.Mode())))

	content := strings.Join(lines, "\n")
	style := m.theme.Sidebar.Width(sidebarWidth - 1)
	if h := height - 2; h > lipgloss.Height(content) {
		style = style.Height(h)
	}
	return style.Render(content)
}

func (m Model) sidebarRow(selected bool, icon, label string, count int) string {
	mark := theme.IconUnselect
	style := m.theme.Normal
	if selected {
		mark = theme.IconSelect
		style = m.theme.Highlight
	}
	if icon != "" {
		label = icon + " " + label
	}
	countStr := m.theme.Muted.Render(fmt.Sprintf("(%d)", count))
	return fmt.Sprintf("%s %s %s", style.Render(mark), style.Render(label), countStr)
}

func (m Model) renderMain(width int) string {
	cardWidth := width
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}

	title := m.theme.Header.Render(fmt.Sprintf("%s cardvice", theme.IconCards))
	parts := []string{
		title,
		m.renderCard(cardWidth),
		m.renderStack(cardWidth),
		"",
		m.renderButton(),
		"",
		m.renderStatus(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderCard draws the displayed item. The text fades while leaving and is
// highlighted while entering.
func (m Model) renderCard(width int) string {
	item := m.deck.Displayed()

	header := m.theme.Muted.Render("—")
	if item.Category != "" {
		header = lipgloss.NewStyle().Foreground(m.theme.CategoryColor(item.Category)).Bold(true).
			Render(fmt.Sprintf("%s %s", item.Category.Icon(), item.Category))
	}

	textStyle := m.theme.Bold
	switch m.deck.State() {
	case transition.Leaving:
		textStyle = m.theme.Muted
	case transition.Entering:
		textStyle = m.theme.Accent
	}
	if item == advice.NoAdvice {
		textStyle = m.theme.Muted.Italic(true)
	}

	// Card has a border (2) and horizontal padding (6).
	inner := width - 8
	if inner < 10 {
		inner = 10
	}
	text := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(textStyle.Render(item.Text))
	content := lipgloss.JoinVertical(lipgloss.Center, header, "", text)
	return m.theme.Card.Width(width - 2).Render(content)
}

// renderStack draws the edges of the cards underneath.
func (m Model) renderStack(width int) string {
	var lines []string
	for i := 1; i <= 2; i++ {
		inset := 2 * i
		if width-2*inset < 4 {
			break
		}
		edge := strings.Repeat(" ", inset) + "╰" + strings.Repeat("─", width-2*inset-2) + "╯"
		lines = append(lines, m.theme.CardShadow.Render(edge))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderButton() string {
	label := fmt.Sprintf("press %s for a new card", m.keys.Next.Help().Key)
	if m.deck.Busy() {
		return m.theme.Muted.Render("[ " + label + " ]")
	}
	return m.theme.Button.Render(label)
}

func (m Model) renderStatus() string {
	scope := m.deck.Scope()
	segments := []string{
		fmt.Sprintf("%s %s", theme.IconFilter, scope),
		fmt.Sprintf("%d/%d left in cycle", m.deck.Remaining(), m.deck.Size()),
	}
	if m.source != "" {
		segments = append(segments, m.source)
	}
	status := m.theme.Muted.Render(strings.Join(segments, " · "))
	if m.notice != "" {
		status += "  " + m.theme.Success.Render(fmt.Sprintf("%s %s", theme.IconReloading, m.notice))
	}
	return status
}
