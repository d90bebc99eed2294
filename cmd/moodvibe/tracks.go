package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/moodvibe/internal/metadata"
	"github.com/hazadus/moodvibe/internal/utils"
)

// createTracksCommand создает команду tracks с привязкой к экземпляру приложения
func (app *Application) createTracksCommand() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "tracks [mood]",
		Short: "List tracks of a mood",
		Long:  `Display the tracks the catalog holds for a mood. Unknown moods show the default track.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.listTracks(cmd.OutOrStdout(), args[0], details)
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "show duration, size and tags of each file")

	return cmd
}

func (app *Application) listTracks(w io.Writer, mood string, details bool) {
	tracks := app.Catalog.TracksForMood(mood)
	fmt.Fprintf(w, "🎧 Треки настроения %s: %d\n\n", mood, len(tracks))

	if !details {
		for _, track := range tracks {
			fmt.Fprintf(w, "   %-30s %s\n", utils.TruncateString(track.Title, 28), track.Path)
		}
		return
	}

	// Выводим заголовок таблицы
	fmt.Fprintf(w, "%-30s %-10s %-10s %-20s %s\n", "Название", "Длит.", "Размер", "Исполнитель", "Файл")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	extractor := metadata.NewExtractor()
	for _, track := range tracks {
		info := extractor.Describe(track)

		duration, size := "N/A", "N/A"
		if info.Missing {
			size = "нет файла"
		} else {
			size = utils.FormatFileSize(info.Size)
			if info.Duration > 0 {
				duration = utils.FormatDuration(info.Duration)
			}
		}

		fmt.Fprintf(w, "%-30s %-10s %-10s %-20s %s\n",
			utils.TruncateString(track.Title, 28),
			duration,
			size,
			utils.TruncateString(info.Artist, 18),
			track.Path)
	}
}
