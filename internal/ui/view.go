package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/ilkoid/stylematch/pkg/app"
)

// View рендерит TUI: хедер, вьюпорт результатов, поле ввода.
func (m MainModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	status := ""
	if m.processing {
		status = " matching..."
	}

	header := headerStyle.Render(fmt.Sprintf(" StyleMatch — %d items%s ", m.components.Graph.Len(), status))

	return fmt.Sprintf("%s\n%s\n\n%s", header, m.viewport.View(), m.input.View())
}

// renderMatches форматирует выдачу похожих вещей.
func (m MainModel) renderMatches(query string, matches []app.Match) string {
	var b strings.Builder

	b.WriteString(userMsgStyle("> " + query))
	b.WriteString("\n\n")

	if len(matches) == 0 {
		b.WriteString(systemMsgStyle("Catalog is empty — nothing to match."))
		return b.String()
	}

	for i, match := range matches {
		v := match.Vertex
		b.WriteString(fmt.Sprintf("%2d. %s  %s\n", i+1,
			itemNameStyle(v.Name),
			weightStyle(fmt.Sprintf("(score %.2f, $%.2f)", match.Weight, v.Price))))

		desc := wordwrap.String(v.Description, max(20, m.viewport.Width-6))
		for _, line := range strings.Split(desc, "\n") {
			b.WriteString("    " + line + "\n")
		}
		if v.SourceLink != "" {
			b.WriteString("    " + linkStyle(v.SourceLink) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderSearch форматирует результаты нечёткого поиска по названиям.
func (m MainModel) renderSearch(query string, records []recordView) string {
	var b strings.Builder

	b.WriteString(userMsgStyle("search> " + query))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(systemMsgStyle("No catalog items match that name."))
		return b.String()
	}

	for i, r := range records {
		b.WriteString(fmt.Sprintf("%2d. %s  %s\n", i+1,
			itemNameStyle(r.Name),
			weightStyle(fmt.Sprintf("($%.2f)", r.Price))))
		if r.Link != "" {
			b.WriteString("    " + linkStyle(r.Link) + "\n")
		}
	}

	return b.String()
}
