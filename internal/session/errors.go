package session

import (
	"errors"
	"fmt"

	"github.com/hazadus/moodvibe/internal/catalog"
)

var errEmptyMood = errors.New("для настроения нет треков")

// PlaybackError сообщает, что вывод звука не смог запустить трек.
// Ошибка не фатальна: сеанс остается готовым к следующему действию.
type PlaybackError struct {
	Mood  string
	Track catalog.Track
	Err   error
}

func (e *PlaybackError) Error() string {
	if e.Track.Path == "" {
		return fmt.Sprintf("ошибка воспроизведения (настроение %q): %v", e.Mood, e.Err)
	}
	return fmt.Sprintf("ошибка воспроизведения %q (настроение %q): %v", e.Track.Title, e.Mood, e.Err)
}

func (e *PlaybackError) Unwrap() error {
	return e.Err
}
