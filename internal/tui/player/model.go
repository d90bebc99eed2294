// Package player содержит модель экрана воспроизведения для TUI
package player

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/moodvibe/internal/player"
	"github.com/hazadus/moodvibe/internal/session"
	"github.com/hazadus/moodvibe/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff")).
			MarginBottom(1)

	trackInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)
)

// Output - вывод звука, которым управляет TUI
type Output interface {
	Play(path string) error
	Stop()
	Pause()
	Progress() <-chan player.Status
	Done() <-chan bool
}

// AnotherSongMsg запрашивает другой трек того же настроения
type AnotherSongMsg struct{}

// ChangeMoodMsg запрашивает возврат к выбору настроения
type ChangeMoodMsg struct{}

// ExitMsg запрашивает остановку и выход
type ExitMsg struct{}

// ProgressMsg содержит обновления прогресса воспроизведения
type ProgressMsg struct {
	Status player.Status
}

// PlaybackFinishedMsg отправляется при завершении трека
type PlaybackFinishedMsg struct{}

// Model представляет модель экрана воспроизведения
type Model struct {
	nowPlaying  session.NowPlaying
	output      Output
	progressBar progress.Model
	status      player.Status
	isPlaying   bool
	finished    bool
	error       error
	width       int
	height      int
}

// NewModel создает модель экрана для результата Start/AnotherSong
func NewModel(np session.NowPlaying, err error, output Output) *Model {
	// Создаем прогресс-бар
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	m := &Model{
		output:      output,
		progressBar: prog,
	}
	m.SetNowPlaying(np, err)
	return m
}

// SetNowPlaying обновляет экран после нового выбора трека
func (m *Model) SetNowPlaying(np session.NowPlaying, err error) {
	m.nowPlaying = np
	m.error = err
	m.isPlaying = err == nil
	m.finished = false
	m.status = player.Status{}
	m.progressBar.SetPercent(0)
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Обновляем ширину прогресс-бара
		m.progressBar.Width = min(60, msg.Width-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "n", "enter":
			return m, func() tea.Msg { return AnotherSongMsg{} }

		case "m", "esc":
			return m, func() tea.Msg { return ChangeMoodMsg{} }

		case "q":
			return m, func() tea.Msg { return ExitMsg{} }

		case " ", "space":
			// Пауза/воспроизведение
			if m.error == nil && !m.finished {
				m.output.Pause()
				m.isPlaying = !m.isPlaying
			}
			return m, nil
		}

	case ProgressMsg:
		if m.error != nil {
			return m, nil
		}
		m.status = msg.Status
		m.isPlaying = msg.Status.IsPlaying

		// Вычисляем прогресс в процентах
		var percent float64
		if msg.Status.Total > 0 {
			percent = float64(msg.Status.Current) / float64(msg.Status.Total)
		}
		return m, m.progressBar.SetPercent(percent)

	case PlaybackFinishedMsg:
		if m.error == nil {
			m.isPlaying = false
			m.finished = true
			m.status.Current = m.status.Total
		}
		return m, m.progressBar.SetPercent(1)

	case progress.FrameMsg:
		// Обновляем прогресс-бар
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// View отображает модель
func (m *Model) View() string {
	controls := controlsStyle.Render(
		"n/enter: другой трек • m/esc: сменить настроение • пробел: пауза • q: стоп и выход",
	)

	if m.error != nil {
		return fmt.Sprintf(
			"%s\n\n%s\n\n%s\n\n%s",
			titleStyle.Render("⚠️  Не удалось воспроизвести трек"),
			trackInfoStyle.Render(fmt.Sprintf("🌈 Настроение: %s", m.nowPlayingMood())),
			errorStyle.Render(m.error.Error()),
			controls,
		)
	}

	// Заголовок
	title := titleStyle.Render("🎵 Сейчас играет")

	// Информация о треке
	trackInfo := trackInfoStyle.Render(fmt.Sprintf(
		"🎧 %s\n🌈 Настроение: %s",
		m.nowPlaying.Track.Title,
		m.nowPlaying.Mood,
	))

	statusText := statusStyle.Render(formatStatus(m.isPlaying, m.finished))

	// Время
	timeText := fmt.Sprintf(
		"%s / %s",
		utils.FormatDuration(m.status.Current),
		utils.FormatDuration(m.status.Total),
	)

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\n%s\n%s\n\n%s",
		title,
		trackInfo,
		statusText,
		m.progressBar.View(),
		timeText,
		controls,
	)
}

// nowPlayingMood возвращает настроение, для которого выбирался трек
func (m *Model) nowPlayingMood() string {
	var playErr *session.PlaybackError
	if m.nowPlaying.Mood == "" && errors.As(m.error, &playErr) {
		return playErr.Mood
	}
	return m.nowPlaying.Mood
}

// ListenForProgress слушает обновления прогресса от вывода звука
func ListenForProgress(output Output) tea.Cmd {
	return func() tea.Msg {
		select {
		case status, ok := <-output.Progress():
			if !ok {
				return PlaybackFinishedMsg{}
			}
			return ProgressMsg{Status: status}

		case <-output.Done():
			return PlaybackFinishedMsg{}
		}
	}
}

// Вспомогательные функции

func formatStatus(isPlaying, finished bool) string {
	switch {
	case finished:
		return "⏹️  Трек закончился"
	case isPlaying:
		return "▶️  Воспроизведение"
	default:
		return "⏸️  Пауза"
	}
}
