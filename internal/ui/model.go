// Package ui реализует Bubble Tea TUI подбора похожих вещей.
//
// Одно поле ввода и вьюпорт с результатами. Ввод трактуется как
// описание вещи; команда "search <название>" переключает на нечёткий
// поиск по названиям каталога.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilkoid/stylematch/pkg/app"
)

// matchResultMsg — результат матчинга для передачи в Update.
type matchResultMsg struct {
	query   string
	matches []app.Match
	err     error
}

// searchResultMsg — результат нечёткого поиска по названиям.
type searchResultMsg struct {
	query   string
	records []recordView
}

// recordView — плоское представление записи для рендера.
type recordView struct {
	ID    string
	Name  string
	Price float64
	Link  string
}

// MainModel представляет главную модель UI (Bubble Tea Model).
//
// Матчинг CPU-bound и быстрый, но выполняется через tea.Cmd, чтобы
// не блокировать event loop на больших каталогах.
type MainModel struct {
	input    textinput.Model
	viewport viewport.Model

	components *app.Components
	topN       int

	processing bool
	ready      bool
}

// InitialModel создает начальное состояние UI.
func InitialModel(components *app.Components) MainModel {
	ti := textinput.New()
	ti.Placeholder = "Опишите вещь (например: warm red jacket)..."
	ti.Focus()
	ti.Prompt = "┃ "
	ti.CharLimit = 500

	// Размеры (0,0) обновятся при первом событии WindowSizeMsg
	vp := viewport.New(0, 0)
	vp.SetContent(fmt.Sprintf("%s\n%s\n",
		systemMsgStyle(fmt.Sprintf("StyleMatch: catalog loaded, %d items.", components.Graph.Len())),
		systemMsgStyle(`Enter an item description, or "search <name>". Esc to quit.`),
	))

	return MainModel{
		input:      ti,
		viewport:   vp,
		components: components,
		topN:       components.Config.Matching.GetDefaults().TopN,
	}
}

// Init запускается один раз при старте Bubble Tea программы.
func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}
