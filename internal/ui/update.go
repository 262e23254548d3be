package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilkoid/stylematch/pkg/utils"
)

// Update обрабатывает события Bubble Tea.
func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		inputCmd tea.Cmd
		vpCmd    tea.Cmd
	)

	m.input, inputCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 3
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.input.Width = msg.Width - 4
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.processing {
				return m, tea.Batch(inputCmd, vpCmd)
			}
			m.input.Reset()
			m.processing = true
			return m, tea.Batch(inputCmd, vpCmd, m.runQuery(query))
		}

	case matchResultMsg:
		m.processing = false
		if msg.err != nil {
			utils.Error("Match failed", "query", msg.query, "error", msg.err)
			m.viewport.SetContent(errorMsgStyle("Error: " + msg.err.Error()))
			return m, tea.Batch(inputCmd, vpCmd)
		}
		m.viewport.SetContent(m.renderMatches(msg.query, msg.matches))
		m.viewport.GotoTop()

	case searchResultMsg:
		m.processing = false
		m.viewport.SetContent(m.renderSearch(msg.query, msg.records))
		m.viewport.GotoTop()
	}

	return m, tea.Batch(inputCmd, vpCmd)
}

// runQuery выбирает режим: нечёткий поиск по названию или матчинг описания.
func (m MainModel) runQuery(query string) tea.Cmd {
	if name, ok := strings.CutPrefix(query, "search "); ok {
		return m.searchCmd(strings.TrimSpace(name))
	}
	return m.matchCmd(query)
}

// matchCmd вставляет запросную вершину и собирает топ-N соседей.
func (m MainModel) matchCmd(description string) tea.Cmd {
	return func() tea.Msg {
		matches, err := m.components.MatchQuery(description, m.topN)
		return matchResultMsg{query: description, matches: matches, err: err}
	}
}

// searchCmd — нечёткий поиск по названиям каталога.
func (m MainModel) searchCmd(name string) tea.Cmd {
	return func() tea.Msg {
		records := m.components.Search.FindTopMatches(name, m.topN)
		views := make([]recordView, len(records))
		for i, r := range records {
			views[i] = recordView{ID: r.ID, Name: r.Name, Price: r.Price, Link: r.SourceLink}
		}
		return searchResultMsg{query: name, records: views}
	}
}
