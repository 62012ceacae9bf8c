package tui

import (
	"fmt"
	"strings"

	"nomi/src/catalog"
	"nomi/src/clipboard"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		body, _ := m.bodyView()
		return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.footerView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView())
}

func (m Model) headerView() string {
	mode := "Light Mode"
	if m.dark {
		mode = "Dark Mode"
	}

	title := m.styles.title.Render("Nomi.ai Appearance Shared Note Tool")
	right := m.styles.link.Render("✉ "+profileTitle) + "  " + m.styles.theme.Render(mode)
	intro := m.styles.intro.Render("Name your Nomi and select multiple features to generate a descriptive tag list!")

	return lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+right,
		m.styles.help.Render(profileURL),
		intro,
		"",
	)
}

func (m Model) footerView() string {
	var help string
	switch m.focus {
	case focusName:
		help = "type a name • enter/↓ features • tab next • ctrl+c quit"
	case focusGrid:
		help = "←↑↓→ move • space toggle • [ ] category • g generate • y copy • x clear • t theme • q quit"
	default:
		help = "←→ choose • enter press • g generate • y copy • x clear • t theme • q quit"
	}
	return m.styles.help.Render(help)
}

// bodyView renders the scrollable part of the form and returns the line
// holding the focused element.
func (m Model) bodyView() (string, int) {
	var b strings.Builder
	line := 0
	focusLine := 0

	write := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
		line += lineCount(s)
	}

	nameBox := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.heading.Render("Nomi Name"),
		m.name.View(),
	)
	if m.focus == focusName {
		focusLine = line + 2
	}
	write(m.styles.section.Render(nameBox))

	for i, cat := range m.categories {
		grid, row := m.gridView(i, cat)
		box := lipgloss.JoinVertical(lipgloss.Left, m.styles.heading.Render(cat.Name), grid)
		if m.focus == focusGrid && i == m.cat {
			// border + heading
			focusLine = line + 2 + row
		}
		write(m.styles.section.Render(box))
	}

	write("")
	if m.focus == focusButtons {
		focusLine = line
	}
	write(m.buttonsView())

	if m.session.HasDescription() {
		write("")
		panel := []string{
			m.styles.heading.Render("Generated Description:"),
			m.styles.body.Render(m.session.Description),
		}
		if fb := m.feedbackView(); fb != "" {
			panel = append(panel, fb)
		}
		write(m.styles.result.Render(lipgloss.JoinVertical(lipgloss.Left, panel...)))
	} else if fb := m.feedbackView(); fb != "" {
		write(fb)
	}

	return strings.TrimSuffix(b.String(), "\n"), focusLine
}

// gridView renders one category's checkboxes and returns the row of the
// cursor within the grid.
func (m Model) gridView(catIndex int, cat catalog.Category) (string, int) {
	var rows []string
	var cells []string
	cursorRow := 0

	for j, feature := range cat.Features {
		box := "[ ]"
		style := m.styles.label
		if m.session.State.IsSelected(cat.Name, feature) {
			box = "[x]"
			style = m.styles.checked
		}
		cell := style.Render(fmt.Sprintf("%s %s", box, catalog.DisplayLabel(feature)))
		cell = lipgloss.NewStyle().Width(cellWidth).Render(cell)
		if m.focus == focusGrid && catIndex == m.cat && j == m.item {
			cell = m.styles.cursor.Render(cell)
			cursorRow = j / gridColumns
		}
		cells = append(cells, cell)

		if len(cells) == gridColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n"), cursorRow
}

func (m Model) buttonsView() string {
	var out []string
	for b := buttonGenerate; b < buttonCount; b++ {
		style := m.styles.button
		if m.focus == focusButtons && b == m.button {
			style = m.styles.active
		}
		out = append(out, style.Render(b.String()))
	}
	return strings.Join(out, "  ")
}

func (m Model) feedbackView() string {
	fb := m.session.Feedback
	if fb == "" {
		return ""
	}
	if m.session.Outcome == clipboard.Success {
		return m.styles.success.Render(fb)
	}
	return m.styles.failure.Render(fb)
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
