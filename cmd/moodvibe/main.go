package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/moodvibe/internal/catalog"
	"github.com/hazadus/moodvibe/internal/config"
	"github.com/hazadus/moodvibe/internal/player"
	tuiPlayer "github.com/hazadus/moodvibe/internal/tui/player"
)

const (
	defaultConfigPath = "~/.moodvibe.yaml"
)

// audioOutput - вывод звука, который команды создают на время работы
type audioOutput interface {
	tuiPlayer.Output
	Close() error
}

// Application хранит состояние, общее для всех команд
type Application struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Logger  *log.Logger

	// newOutput создает вывод звука; в тестах подменяется
	newOutput func() audioOutput
}

// newApplication создает приложение с настоящим выводом звука
func newApplication(logger *log.Logger) *Application {
	return &Application{
		Logger: logger,
		newOutput: func() audioOutput {
			return player.NewPlayer()
		},
	}
}

// load загружает конфигурацию и строит каталог.
// Некорректная таблица настроений не дает приложению запуститься.
func (app *Application) load(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	cat, err := cfg.BuildCatalog()
	if err != nil {
		return err
	}

	app.Config = cfg
	app.Catalog = cat
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApplication(log.New(os.Stderr, "", log.LstdFlags))
	rootCmd := app.createRootCommand(ctx)

	if err := rootCmd.Execute(); err != nil {
		stop()
		log.Fatalf("❌ %v", err)
	}
}

// discardLogger нужен там, где вывод в stderr ломает интерфейс
func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
