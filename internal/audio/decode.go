// Package audio выбирает декодер beep по расширению файла
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedFormat возвращается для файлов, которые нечем декодировать
var ErrUnsupportedFormat = errors.New("неподдерживаемый формат аудио")

// Supported сообщает, есть ли декодер для файла
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".mp3":
		return true
	}
	return false
}

// Open открывает и декодирует аудиофайл.
// Закрытие возвращенного стримера закрывает и файл.
func Open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(path) {
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("ошибка открытия файла: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(file)
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	}
	if err != nil {
		file.Close()
		return nil, beep.Format{}, fmt.Errorf("ошибка декодирования %s: %w", strings.TrimPrefix(ext, "."), err)
	}

	return streamer, format, nil
}
