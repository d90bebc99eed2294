package session

import (
	"bytes"
	"errors"
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazadus/moodvibe/internal/catalog"
)

// fakeOutput записывает вызовы Play/Stop и отслеживает активный трек
type fakeOutput struct {
	calls    []string
	active   string
	failPath map[string]error
	overlaps int
}

func newFakeOutput() *fakeOutput {
	return &fakeOutput{failPath: make(map[string]error)}
}

func (f *fakeOutput) Play(path string) error {
	f.calls = append(f.calls, "play:"+path)
	if f.active != "" {
		f.overlaps++
	}
	if err, ok := f.failPath[path]; ok {
		return err
	}
	f.active = path
	return nil
}

func (f *fakeOutput) Stop() {
	f.calls = append(f.calls, "stop")
	f.active = ""
}

func (f *fakeOutput) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// fixedPicker возвращает индексы по очереди
type fixedPicker struct {
	indexes []int
	pos     int
}

func (p *fixedPicker) IntN(n int) int {
	idx := p.indexes[p.pos%len(p.indexes)] % n
	p.pos++
	return idx
}

func newTestSession(t *testing.T, out *fakeOutput, picker Picker) (*Session, *bytes.Buffer) {
	t.Helper()
	cat, err := catalog.NewCatalog(catalog.DefaultMoods(), "", "")
	if err != nil {
		t.Fatalf("Ошибка построения каталога: %v", err)
	}
	var logs bytes.Buffer
	return New(cat, out, picker, log.New(&logs, "", 0)), &logs
}

func TestNewSessionIsIdle(t *testing.T) {
	s, _ := newTestSession(t, newFakeOutput(), nil)

	if s.State() != Idle {
		t.Errorf("Ожидалось состояние idle, получено %s", s.State())
	}
	if s.Mood() != "" {
		t.Errorf("Настроение должно быть пустым, получено %q", s.Mood())
	}
	if s.Current() != nil {
		t.Error("Активного трека быть не должно")
	}
	if s.ID() == "" {
		t.Error("Идентификатор сеанса не должен быть пустым")
	}
}

func TestStartChill(t *testing.T) {
	out := newFakeOutput()
	s, _ := newTestSession(t, out, rand.New(rand.NewPCG(1, 2)))

	np, err := s.Start("Chill")
	if err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}

	if s.State() != Playing {
		t.Errorf("Ожидалось состояние playing, получено %s", s.State())
	}
	if s.Mood() != "Chill" || np.Mood != "Chill" {
		t.Errorf("Ожидалось настроение Chill, получено %q / %q", s.Mood(), np.Mood)
	}

	current := s.Current()
	if current == nil {
		t.Fatal("Ожидался активный трек")
	}
	if current.Title != "Chill Vibe" && current.Title != "Chilliirlie Vibe" {
		t.Errorf("Неожиданный трек: %q", current.Title)
	}
	if *current != np.Track {
		t.Errorf("Возвращенный трек %v не совпадает с активным %v", np.Track, *current)
	}
	if out.count("play:") != 1 {
		t.Errorf("Ожидался 1 вызов play, получено %d", out.count("play:"))
	}
	if out.calls[0] != "play:"+current.Path {
		t.Errorf("Неожиданный вызов: %s", out.calls[0])
	}
}

func TestStartUsesPickerIndex(t *testing.T) {
	out := newFakeOutput()
	s, _ := newTestSession(t, out, &fixedPicker{indexes: []int{1}})

	np, err := s.Start("Happy")
	if err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	if np.Track.Path != filepath.Join("music", "happygirlie.wav") {
		t.Errorf("Ожидался второй трек, получен %s", np.Track.Path)
	}
}

func TestAnotherSongTwice(t *testing.T) {
	out := newFakeOutput()
	s, _ := newTestSession(t, out, &fixedPicker{indexes: []int{0, 1, 1}})

	if _, err := s.Start("Happy"); err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	out.calls = nil

	if _, err := s.AnotherSong(); err != nil {
		t.Fatalf("Ошибка AnotherSong: %v", err)
	}
	np, err := s.AnotherSong()
	if err != nil {
		t.Fatalf("Ошибка AnotherSong: %v", err)
	}

	expected := []string{
		"stop",
		"play:" + filepath.Join("music", "happygirlie.wav"),
		"stop",
		"play:" + filepath.Join("music", "happygirlie.wav"),
	}
	if strings.Join(out.calls, ",") != strings.Join(expected, ",") {
		t.Errorf("Ожидалась последовательность %v, получено %v", expected, out.calls)
	}
	if out.overlaps != 0 {
		t.Errorf("Воспроизведение не должно перекрываться, перекрытий: %d", out.overlaps)
	}
	if np.Mood != "Happy" || s.State() != Playing {
		t.Errorf("Неожиданное состояние: %s, настроение %q", s.State(), np.Mood)
	}
}

func TestAnotherSongWithoutMood(t *testing.T) {
	out := newFakeOutput()
	s, _ := newTestSession(t, out, nil)

	if _, err := s.AnotherSong(); !errors.Is(err, ErrNoMood) {
		t.Errorf("Ожидалась ErrNoMood, получено %v", err)
	}
	if len(out.calls) != 0 {
		t.Errorf("Вызовов вывода быть не должно: %v", out.calls)
	}
}

func TestChangeMoodToUnknown(t *testing.T) {
	out := newFakeOutput()
	s, _ := newTestSession(t, out, nil)

	if _, err := s.Start("Happy"); err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	if err := s.ChangeMood(); err != nil {
		t.Fatalf("Ошибка ChangeMood: %v", err)
	}
	if s.State() != Idle {
		t.Errorf("Ожидалось состояние idle, получено %s", s.State())
	}
	if s.Current() != nil {
		t.Error("После смены настроения активного трека быть не должно")
	}
	if out.active != "" {
		t.Error("Вывод должен быть остановлен")
	}

	np, err := s.Start("Unknown")
	if err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	if np.Track.Title != "Default" {
		t.Errorf("Ожидался трек Default, получен %q", np.Track.Title)
	}
	if np.Track.Path != filepath.Join("music", "happygirl.wav") {
		t.Errorf("Неожиданный путь: %s", np.Track.Path)
	}
	if out.overlaps != 0 {
		t.Errorf("Воспроизведение не должно перекрываться, перекрытий: %d", out.overlaps)
	}
}

func TestSwitchMood(t *testing.T) {
	out := newFakeOutput()
	s, _ := newTestSession(t, out, nil)

	if _, err := s.Start("Happy"); err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	np, err := s.SwitchMood("Angry")
	if err != nil {
		t.Fatalf("Ошибка SwitchMood: %v", err)
	}
	if np.Mood != "Angry" || np.Track.Title != "Angry Vibe" {
		t.Errorf("Неожиданный результат: %+v", np)
	}
	if out.count("stop") != 1 || out.count("play:") != 2 {
		t.Errorf("Неожиданные вызовы: %v", out.calls)
	}
}

func TestRestartWhilePlayingStopsFirst(t *testing.T) {
	out := newFakeOutput()
	s, _ := newTestSession(t, out, nil)

	if _, err := s.Start("Happy"); err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	if _, err := s.Start("Moody"); err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	if out.calls[1] != "stop" {
		t.Errorf("Перед новым play ожидался stop, получено %v", out.calls)
	}
	if out.overlaps != 0 {
		t.Errorf("Воспроизведение не должно перекрываться, перекрытий: %d", out.overlaps)
	}
}

func TestPlaybackFailure(t *testing.T) {
	out := newFakeOutput()
	cause := errors.New("файл не найден")
	out.failPath[filepath.Join("music", "happygirl.wav")] = cause
	s, logs := newTestSession(t, out, &fixedPicker{indexes: []int{0, 1}})

	_, err := s.Start("Happy")
	if err == nil {
		t.Fatal("Ожидалась ошибка воспроизведения")
	}

	var playErr *PlaybackError
	if !errors.As(err, &playErr) {
		t.Fatalf("Ожидалась PlaybackError, получено %T", err)
	}
	if !errors.Is(err, cause) {
		t.Error("PlaybackError должна оборачивать исходную ошибку")
	}
	if playErr.Mood != "Happy" || playErr.Track.Title != "Happy Vibe" {
		t.Errorf("Неожиданные поля ошибки: %+v", playErr)
	}
	if s.Current() != nil {
		t.Error("После ошибки активного трека быть не должно")
	}
	if s.State() != Idle {
		t.Errorf("Ожидалось состояние idle, получено %s", s.State())
	}
	if !strings.Contains(logs.String(), s.ID()) {
		t.Errorf("Диагностика должна содержать ID сеанса: %s", logs.String())
	}

	// Сеанс продолжает принимать действия
	np, err := s.AnotherSong()
	if err != nil {
		t.Fatalf("Ошибка AnotherSong после сбоя: %v", err)
	}
	if np.Track.Path != filepath.Join("music", "happygirlie.wav") {
		t.Errorf("Неожиданный трек: %s", np.Track.Path)
	}
	if s.State() != Playing || s.Current() == nil {
		t.Errorf("Ожидалось воспроизведение, состояние %s", s.State())
	}
}

func TestStartAfterFailure(t *testing.T) {
	out := newFakeOutput()
	out.failPath[filepath.Join("music", "Angry.wav")] = errors.New("битый файл")
	s, _ := newTestSession(t, out, &fixedPicker{indexes: []int{0}})

	if _, err := s.Start("Angry"); err == nil {
		t.Fatal("Ожидалась ошибка воспроизведения")
	}
	np, err := s.Start("Chill")
	if err != nil {
		t.Fatalf("Ошибка запуска после сбоя: %v", err)
	}
	if np.Track.Title != "Chill Vibe" || s.State() != Playing {
		t.Errorf("Неожиданный результат: %+v, состояние %s", np, s.State())
	}
}

func TestExit(t *testing.T) {
	out := newFakeOutput()
	s, _ := newTestSession(t, out, nil)

	if _, err := s.Start("Peaceful"); err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	s.Exit()
	s.Exit()

	if s.State() != Exited {
		t.Errorf("Ожидалось состояние exited, получено %s", s.State())
	}
	if out.active != "" {
		t.Error("Вывод должен быть остановлен")
	}
	if out.count("stop") != 1 {
		t.Errorf("Ожидался 1 вызов stop, получено %d", out.count("stop"))
	}

	if _, err := s.Start("Happy"); !errors.Is(err, ErrExited) {
		t.Errorf("Ожидалась ErrExited, получено %v", err)
	}
	if _, err := s.AnotherSong(); !errors.Is(err, ErrExited) {
		t.Errorf("Ожидалась ErrExited, получено %v", err)
	}
	if err := s.ChangeMood(); !errors.Is(err, ErrExited) {
		t.Errorf("Ожидалась ErrExited, получено %v", err)
	}
}

func TestExitFromIdle(t *testing.T) {
	out := newFakeOutput()
	s, _ := newTestSession(t, out, nil)

	s.Exit()
	if s.State() != Exited {
		t.Errorf("Ожидалось состояние exited, получено %s", s.State())
	}
	if out.count("stop") != 1 {
		t.Errorf("Ожидался 1 вызов stop, получено %d", out.count("stop"))
	}
}

func TestRandomSelectionCoversAllTracks(t *testing.T) {
	out := newFakeOutput()
	s, _ := newTestSession(t, out, rand.New(rand.NewPCG(42, 7)))

	seen := make(map[string]int)
	for i := 0; i < 200; i++ {
		np, err := s.Start("Romantic")
		if err != nil {
			t.Fatalf("Ошибка запуска: %v", err)
		}
		seen[np.Track.Path]++
	}

	if len(seen) != 2 {
		t.Errorf("Ожидалось, что будут выбраны оба трека, выбрано: %v", seen)
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		Idle:      "idle",
		Selecting: "selecting",
		Playing:   "playing",
		Exited:    "exited",
		State(42): "unknown",
	}
	for state, expected := range tests {
		if state.String() != expected {
			t.Errorf("Ожидалось %s, получено %s", expected, state.String())
		}
	}
}
