// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/moodvibe/internal/catalog"
	"github.com/hazadus/moodvibe/internal/session"
	"github.com/hazadus/moodvibe/internal/tui/app"
	tuiPlayer "github.com/hazadus/moodvibe/internal/tui/player"
)

// App представляет основное TUI приложение
type App struct {
	catalog *catalog.Catalog
	output  tuiPlayer.Output
	logger  *log.Logger
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(cat *catalog.Catalog, output tuiPlayer.Output, logger *log.Logger) *App {
	return &App{
		catalog: cat,
		output:  output,
		logger:  logger,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	sess := session.New(tuiApp.catalog, tuiApp.output, nil, tuiApp.logger)
	model := app.NewMainModel(tuiApp.catalog, sess, tuiApp.output)

	// Создаем программу Bubble Tea
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()

	// Останавливаем звук, даже если программа завершилась с ошибкой
	sess.Exit()

	return err
}
