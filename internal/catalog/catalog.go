// Package catalog содержит каталог треков, сгруппированных по настроению
package catalog

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMusicDir - каталог с аудиофайлами по умолчанию
	DefaultMusicDir = "music"
	// DefaultTrackFile - файл запасного трека для неизвестных настроений
	DefaultTrackFile = "happygirl.wav"
	// DefaultTitle - название запасного трека
	DefaultTitle = "Default"

	audioExt    = ".wav"
	titleSuffix = " Vibe"
)

// noiseTokens удаляет декоративные суффиксы из имен файлов.
// Порядок аргументов важен: на одной позиции "girlie" побеждает "girl".
var noiseTokens = strings.NewReplacer("girlie", "", "girl", "")

// Track описывает один трек каталога
type Track struct {
	Title string `yaml:"title"` // Отображаемое название
	Path  string `yaml:"path"`  // Путь к аудиофайлу
}

// Catalog хранит неизменяемое соответствие настроения и списка треков
type Catalog struct {
	moods        map[string][]Track
	sorted       []string
	defaultTrack Track
}

// NewCatalog строит каталог из таблицы "настроение -> имена файлов".
// Пустой musicDir означает DefaultMusicDir, пустой defaultFile - DefaultTrackFile.
func NewCatalog(moods map[string][]string, musicDir, defaultFile string) (*Catalog, error) {
	if musicDir == "" {
		musicDir = DefaultMusicDir
	}
	if defaultFile == "" {
		defaultFile = DefaultTrackFile
	}
	if len(moods) == 0 {
		return nil, &ConfigError{Reason: "не задано ни одного настроения"}
	}

	c := &Catalog{
		moods:  make(map[string][]Track, len(moods)),
		sorted: make([]string, 0, len(moods)),
		defaultTrack: Track{
			Title: DefaultTitle,
			Path:  filepath.Join(musicDir, defaultFile),
		},
	}

	for mood, files := range moods {
		if mood == "" {
			return nil, &ConfigError{Reason: "пустое название настроения"}
		}
		if len(files) == 0 {
			return nil, &ConfigError{Mood: mood, Reason: "список файлов пуст"}
		}

		tracks := make([]Track, 0, len(files))
		for _, file := range files {
			tracks = append(tracks, Track{
				Title: DeriveTitle(file),
				Path:  filepath.Join(musicDir, file),
			})
		}
		c.moods[mood] = tracks
		c.sorted = append(c.sorted, mood)
	}

	sort.Strings(c.sorted)
	return c, nil
}

// TracksForMood возвращает треки настроения.
// Для неизвестного настроения возвращается список из одного запасного трека.
func (c *Catalog) TracksForMood(mood string) []Track {
	tracks, ok := c.moods[mood]
	if !ok {
		return []Track{c.defaultTrack}
	}
	out := make([]Track, len(tracks))
	copy(out, tracks)
	return out
}

// AllMoods возвращает все настроения в лексикографическом порядке
func (c *Catalog) AllMoods() []string {
	out := make([]string, len(c.sorted))
	copy(out, c.sorted)
	return out
}

// Len возвращает количество настроений
func (c *Catalog) Len() int {
	return len(c.sorted)
}

// Default возвращает запасной трек
func (c *Catalog) Default() Track {
	return c.defaultTrack
}

// DeriveTitle формирует название трека из имени файла
func DeriveTitle(fileName string) string {
	name := strings.TrimSuffix(fileName, audioExt)
	name = strings.TrimSpace(noiseTokens.Replace(name))
	return capitalize(name) + titleSuffix
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
