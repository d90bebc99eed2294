// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/moodvibe/internal/catalog"
	"github.com/hazadus/moodvibe/internal/session"
	"github.com/hazadus/moodvibe/internal/tui/moodlist"
	tuiPlayer "github.com/hazadus/moodvibe/internal/tui/player"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// MoodScreen - экран выбора настроения
	MoodScreen ScreenType = iota
	// PlayerScreen - экран воспроизведения
	PlayerScreen
)

// MainModel представляет главную модель TUI.
// Все действия с сеансом выполняются в Update, поэтому они сериализованы.
type MainModel struct {
	session       *session.Session
	output        tuiPlayer.Output
	currentScreen ScreenType
	moodModel     *moodlist.Model
	playerModel   *tuiPlayer.Model
	width         int
	height        int
}

// NewMainModel создает новую главную модель
func NewMainModel(cat *catalog.Catalog, sess *session.Session, output tuiPlayer.Output) *MainModel {
	return &MainModel{
		session:       sess,
		output:        output,
		currentScreen: MoodScreen,
		moodModel:     moodlist.NewModel(cat),
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(
		m.moodModel.Init(),
		tuiPlayer.ListenForProgress(m.output),
	)
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		if msg.String() == "ctrl+c" {
			return m.exit()
		}

	case moodlist.QuitMsg, tuiPlayer.ExitMsg:
		return m.exit()

	case moodlist.MoodSelectedMsg:
		np, err := m.session.Start(msg.Mood)
		m.showPlayer(np, err)
		return m, nil

	case tuiPlayer.AnotherSongMsg:
		np, err := m.session.AnotherSong()
		m.showPlayer(np, err)
		return m, nil

	case tuiPlayer.ChangeMoodMsg:
		_ = m.session.ChangeMood()
		m.currentScreen = MoodScreen
		m.playerModel = nil
		return m, nil

	case tuiPlayer.ProgressMsg, tuiPlayer.PlaybackFinishedMsg:
		// Слушатель прогресса один на всё приложение
		var cmd tea.Cmd
		if m.currentScreen == PlayerScreen && m.playerModel != nil {
			_, cmd = m.playerModel.Update(msg)
		}
		return m, tea.Batch(cmd, tuiPlayer.ListenForProgress(m.output))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.moodModel, cmd = m.moodModel.Update(msg)
		if m.playerModel != nil {
			m.playerModel.Update(msg)
		}
		return m, cmd
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case MoodScreen:
		m.moodModel, cmd = m.moodModel.Update(msg)

	case PlayerScreen:
		if m.playerModel != nil {
			_, cmd = m.playerModel.Update(msg)
		}
	}

	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case MoodScreen:
		return m.moodModel.View()

	case PlayerScreen:
		if m.playerModel != nil {
			return m.playerModel.View()
		}
		return "Ошибка: модель плеера не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

// showPlayer переключает на экран воспроизведения с результатом выбора трека
func (m *MainModel) showPlayer(np session.NowPlaying, err error) {
	if m.playerModel == nil {
		m.playerModel = tuiPlayer.NewModel(np, err, m.output)
		if m.width > 0 {
			m.playerModel.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
	} else {
		m.playerModel.SetNowPlaying(np, err)
	}
	m.currentScreen = PlayerScreen
}

// exit останавливает воспроизведение и завершает программу
func (m *MainModel) exit() (tea.Model, tea.Cmd) {
	m.session.Exit()
	return m, tea.Quit
}
