package ui

import "strings"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("hsize — interactive converter"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("type a size • esc: quit"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Box.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.parseErr != nil:
		b.WriteString(m.styles.Error.Render("✗ " + m.parseErr.Error()))
		b.WriteString("\n")
	case len(m.rows) == 0:
		b.WriteString(m.styles.Faint.Render("waiting for input"))
		b.WriteString("\n")
	default:
		for _, r := range m.rows {
			b.WriteString(m.styles.Label.Render(r.label))
			b.WriteString("  ")
			b.WriteString(m.styles.Value.Render(r.value))
			b.WriteString("\n")
		}
	}
	return b.String()
}
