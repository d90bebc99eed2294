package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hazadus/moodvibe/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for choosing a mood and listening.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI(logFile)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write diagnostics to this file")

	return cmd
}

func (app *Application) launchTUI(logFile string) error {
	// Во время работы TUI stderr занят интерфейсом
	logger := discardLogger()
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "moodvibe")
		if err != nil {
			return fmt.Errorf("ошибка открытия файла журнала: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	output := app.newOutput()
	defer output.Close()

	return tui.NewApp(app.Catalog, output, logger).Run()
}
