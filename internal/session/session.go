// Package session содержит сеанс воспроизведения: конечный автомат,
// который по настроению выбирает случайный трек и реагирует на действия пользователя
package session

import (
	"errors"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/hazadus/moodvibe/internal/catalog"
)

// Catalog предоставляет треки по настроению
type Catalog interface {
	TracksForMood(mood string) []catalog.Track
}

// AudioOutput - единственный на сеанс ресурс вывода звука.
// Stop должен быть идемпотентным, Play не должен паниковать.
type AudioOutput interface {
	Play(path string) error
	Stop()
}

// Picker возвращает равномерно распределенный индекс в диапазоне [0, n).
// *rand.Rand из math/rand/v2 удовлетворяет этому интерфейсу.
type Picker interface {
	IntN(n int) int
}

// globalPicker использует глобальный генератор math/rand/v2, безопасный для горутин
type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

var (
	// ErrNoMood возвращается, если настроение еще не выбрано
	ErrNoMood = errors.New("настроение не выбрано")
	// ErrExited возвращается после завершения сеанса
	ErrExited = errors.New("сеанс завершен")
)

// NowPlaying описывает выбранный трек для отображения
type NowPlaying struct {
	Mood  string
	Track catalog.Track
}

// Session управляет воспроизведением по настроению.
// Методы не синхронизированы: вызывающий код должен сериализовать действия.
type Session struct {
	id      string
	catalog Catalog
	output  AudioOutput
	picker  Picker
	logger  *log.Logger

	state   State
	mood    string
	current *catalog.Track
}

// New создает новый сеанс. Nil picker означает глобальный генератор,
// nil logger - log.Default().
func New(cat Catalog, out AudioOutput, picker Picker, logger *log.Logger) *Session {
	if picker == nil {
		picker = globalPicker{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		id:      uuid.NewString(),
		catalog: cat,
		output:  out,
		picker:  picker,
		logger:  logger,
		state:   Idle,
	}
}

// ID возвращает идентификатор сеанса
func (s *Session) ID() string {
	return s.id
}

// State возвращает текущее состояние
func (s *Session) State() State {
	return s.state
}

// Mood возвращает текущее настроение (пустая строка до первого выбора)
func (s *Session) Mood() string {
	return s.mood
}

// Current возвращает активный трек или nil
func (s *Session) Current() *catalog.Track {
	if s.current == nil {
		return nil
	}
	track := *s.current
	return &track
}

// Start выбирает случайный трек настроения и запускает его
func (s *Session) Start(mood string) (NowPlaying, error) {
	if s.state == Exited {
		return NowPlaying{}, ErrExited
	}
	if s.state == Playing {
		s.output.Stop()
		s.current = nil
	}
	return s.selectAndPlay(mood)
}

// AnotherSong останавливает текущий трек и выбирает новый для того же настроения.
// Повторный выбор того же трека допустим.
func (s *Session) AnotherSong() (NowPlaying, error) {
	if s.state == Exited {
		return NowPlaying{}, ErrExited
	}
	if s.mood == "" {
		return NowPlaying{}, ErrNoMood
	}
	s.output.Stop()
	s.current = nil
	return s.selectAndPlay(s.mood)
}

// ChangeMood останавливает воспроизведение и переводит сеанс в Idle.
// После выбора нового настроения вызывающий код вызывает Start.
func (s *Session) ChangeMood() error {
	if s.state == Exited {
		return ErrExited
	}
	s.output.Stop()
	s.current = nil
	s.state = Idle
	return nil
}

// SwitchMood - ChangeMood и последующий Start с новым настроением
func (s *Session) SwitchMood(mood string) (NowPlaying, error) {
	if err := s.ChangeMood(); err != nil {
		return NowPlaying{}, err
	}
	return s.Start(mood)
}

// Exit останавливает воспроизведение и завершает сеанс. Повторный вызов безопасен.
func (s *Session) Exit() {
	if s.state == Exited {
		return
	}
	s.output.Stop()
	s.current = nil
	s.state = Exited
}

// selectAndPlay выполняет переход Selecting -> Playing
func (s *Session) selectAndPlay(mood string) (NowPlaying, error) {
	s.state = Selecting
	s.mood = mood

	tracks := s.catalog.TracksForMood(mood)
	if len(tracks) == 0 {
		// Каталог гарантирует непустой список; сюда попадают только сторонние реализации
		s.state = Idle
		return NowPlaying{}, &PlaybackError{Mood: mood, Err: errEmptyMood}
	}

	track := tracks[s.picker.IntN(len(tracks))]

	if err := s.output.Play(track.Path); err != nil {
		s.state = Idle
		s.logger.Printf("⚠️  сеанс %s: не удалось воспроизвести %q (%s): %v", s.id, track.Title, track.Path, err)
		return NowPlaying{}, &PlaybackError{Mood: mood, Track: track, Err: err}
	}

	s.current = &track
	s.state = Playing
	return NowPlaying{Mood: mood, Track: track}, nil
}
