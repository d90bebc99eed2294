// Package moodlist содержит модель экрана выбора настроения для TUI
package moodlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/moodvibe/internal/catalog"
	"github.com/hazadus/moodvibe/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// MoodSelectedMsg отправляется при выборе настроения
type MoodSelectedMsg struct {
	Mood string
}

// QuitMsg отправляется при выходе с экрана выбора
type QuitMsg struct{}

// moodItem реализует интерфейс list.Item для настроения
type moodItem struct {
	mood   string
	tracks int
}

func (i moodItem) FilterValue() string {
	return i.mood
}

// moodItemDelegate реализует отображение элементов списка
type moodItemDelegate struct{}

func (d moodItemDelegate) Height() int                             { return 1 }
func (d moodItemDelegate) Spacing() int                            { return 0 }
func (d moodItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d moodItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(moodItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%-24s %s", utils.TruncateString(i.mood, 24), formatTrackCount(i.tracks))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана выбора настроения
type Model struct {
	list list.Model
}

// NewModel создает модель со всеми настроениями каталога
func NewModel(cat *catalog.Catalog) *Model {
	moods := cat.AllMoods()

	// Преобразуем настроения в элементы списка
	items := make([]list.Item, len(moods))
	for i, mood := range moods {
		items[i] = moodItem{mood: mood, tracks: len(cat.TracksForMood(mood))}
	}

	l := list.New(items, moodItemDelegate{}, 0, 0)
	l.Title = "Выберите настроение"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{list: l}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Selected возвращает настроение под курсором
func (m *Model) Selected() string {
	if item, ok := m.list.SelectedItem().(moodItem); ok {
		return item.mood
	}
	return ""
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для заголовка и справки
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра клавиши принадлежат списку
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q":
			return m, func() tea.Msg { return QuitMsg{} }

		case "enter":
			if mood := m.Selected(); mood != "" {
				return m, func() tea.Msg {
					return MoodSelectedMsg{Mood: mood}
				}
			}
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	view := m.list.View()
	extraHelp := helpStyle.Render("Enter: подобрать музыку • /: поиск • q: выход")
	return view + "\n" + extraHelp
}

func formatTrackCount(n int) string {
	switch {
	case n%10 == 1 && n%100 != 11:
		return fmt.Sprintf("%d трек", n)
	case n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14):
		return fmt.Sprintf("%d трека", n)
	default:
		return fmt.Sprintf("%d треков", n)
	}
}
