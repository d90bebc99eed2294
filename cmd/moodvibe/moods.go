package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// createMoodsCommand создает команду moods с привязкой к экземпляру приложения
func (app *Application) createMoodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List available moods",
		Long:  `Display all moods of the catalog in alphabetical order.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.listMoods(cmd.OutOrStdout())
		},
	}
}

func (app *Application) listMoods(w io.Writer) {
	moods := app.Catalog.AllMoods()
	fmt.Fprintf(w, "🌈 Настроений: %d\n\n", len(moods))

	for i, mood := range moods {
		fmt.Fprintf(w, "%3d. %-20s треков: %d\n", i+1, mood, len(app.Catalog.TracksForMood(mood)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "💡 Используйте 'moodvibe play [настроение]' для воспроизведения")
}
