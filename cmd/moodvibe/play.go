package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/moodvibe/internal/session"
)

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "play [mood]",
		Short: "Play a random track for a mood",
		Long: `Play a random track for a mood and wait for the next action:
another song, change mood, or stop and exit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var mood string
			if len(args) == 1 {
				mood = args[0]
			}
			return app.playLoop(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), mood)
		},
	}
}

// playLoop ведет сеанс воспроизведения по строкам из in.
// Все действия с сеансом выполняются в этой горутине.
func (app *Application) playLoop(ctx context.Context, in io.Reader, w io.Writer, mood string) error {
	output := app.newOutput()
	defer output.Close()

	sess := session.New(app.Catalog, output, nil, app.Logger)
	defer sess.Exit()

	// Читаем строки в отдельной горутине, чтобы реагировать на отмену
	lines := make(chan string)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-quit:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	next := func() (string, bool) {
		for {
			select {
			case line, ok := <-lines:
				return strings.TrimSpace(line), ok
			case <-output.Done():
				fmt.Fprintln(w, "\n✅ Трек закончился")
			case <-ctx.Done():
				fmt.Fprintln(w, "\n🚫 Операция отменена")
				return "", false
			}
		}
	}

	if mood == "" {
		var ok bool
		if mood, ok = app.chooseMood(w, next); !ok {
			return nil
		}
	}
	np, err := sess.Start(mood)
	reportSelection(w, np, err)

	for {
		fmt.Fprint(w, "[n] другой трек • [m] сменить настроение • [q] стоп и выход > ")

		line, ok := next()
		if !ok {
			fmt.Fprintln(w)
			return nil
		}

		switch strings.ToLower(line) {
		case "n", "":
			np, err := sess.AnotherSong()
			reportSelection(w, np, err)

		case "m":
			if err := sess.ChangeMood(); err != nil {
				return err
			}
			mood, ok := app.chooseMood(w, next)
			if !ok {
				return nil
			}
			np, err := sess.Start(mood)
			reportSelection(w, np, err)

		case "q":
			fmt.Fprintln(w, "⏹️  Воспроизведение остановлено пользователем")
			return nil

		default:
			fmt.Fprintf(w, "❓ Неизвестная команда: %s\n", line)
		}
	}
}

// chooseMood выводит нумерованный список настроений и читает выбор.
// Принимается номер из списка или название; незнакомое название тоже допустимо.
func (app *Application) chooseMood(w io.Writer, next func() (string, bool)) (string, bool) {
	moods := app.Catalog.AllMoods()

	fmt.Fprintln(w, "🌈 Выберите настроение:")
	for i, mood := range moods {
		fmt.Fprintf(w, "%3d. %s\n", i+1, mood)
	}

	for {
		fmt.Fprint(w, "Номер или название > ")

		line, ok := next()
		if !ok {
			return "", false
		}
		if line == "" {
			continue
		}

		if n, err := strconv.Atoi(line); err == nil {
			if n >= 1 && n <= len(moods) {
				return moods[n-1], true
			}
			fmt.Fprintf(w, "❓ Нет настроения с номером %d\n", n)
			continue
		}
		return line, true
	}
}

// reportSelection выводит выбранный трек или диагностику сбоя
func reportSelection(w io.Writer, np session.NowPlaying, err error) {
	if err != nil {
		fmt.Fprintf(w, "⚠️  %v\n", err)
		return
	}
	fmt.Fprintf(w, "🎵 Сейчас играет: %s\n", np.Track.Title)
	fmt.Fprintf(w, "   Настроение: %s\n", np.Mood)
}
