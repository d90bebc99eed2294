// Package metadata предоставляет функционал для извлечения сведений о треках каталога
package metadata

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dhowden/tag"

	"github.com/hazadus/moodvibe/internal/audio"
	"github.com/hazadus/moodvibe/internal/catalog"
)

// Details содержит сведения о файле трека
type Details struct {
	Artist   string
	Album    string
	Size     int64
	Duration time.Duration
	Missing  bool // Файл не найден
}

// Extractor извлекает сведения из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Describe собирает сведения о треке.
// Ошибки чтения не прерывают работу: недоступные поля остаются пустыми.
func (e *Extractor) Describe(track catalog.Track) Details {
	info, err := os.Stat(track.Path)
	if err != nil {
		return Details{Missing: true}
	}

	details := Details{Size: info.Size()}

	if duration, err := e.GetDuration(track.Path); err == nil {
		details.Duration = duration
	}

	file, err := os.Open(track.Path)
	if err != nil {
		return details
	}
	defer file.Close()

	tags := e.ExtractFromReader(file)
	details.Artist = tags.Artist
	details.Album = tags.Album
	return details
}

// Tags хранит теги трека
type Tags struct {
	Artist string
	Title  string
	Album  string
}

// ExtractFromReader читает теги из io.ReadSeeker.
// Для контейнеров без тегов (например, WAV) возвращаются пустые значения.
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker) Tags {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return Tags{}
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return Tags{}
	}

	return Tags{
		Artist: metadata.Artist(),
		Title:  metadata.Title(),
		Album:  metadata.Album(),
	}
}

// GetDuration получает длительность аудио файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	streamer, format, err := audio.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка получения длительности: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}
