// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/moodvibe/internal/catalog"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	MusicDir     string              `yaml:"music_dir"`
	DefaultTrack string              `yaml:"default_track"`
	Moods        map[string][]string `yaml:"moods"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		MusicDir:     catalog.DefaultMusicDir,
		DefaultTrack: catalog.DefaultTrackFile,
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := expandHome(filePath, home)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.MusicDir == "" {
		config.MusicDir = catalog.DefaultMusicDir
	}
	if config.DefaultTrack == "" {
		config.DefaultTrack = catalog.DefaultTrackFile
	}

	// Раскрываем тильду в каталоге с музыкой
	config.MusicDir = expandHome(config.MusicDir, home)

	return config, nil
}

// MoodTable возвращает таблицу настроений из конфигурации или встроенную
func (c *Config) MoodTable() map[string][]string {
	if c.Moods == nil {
		return catalog.DefaultMoods()
	}
	return c.Moods
}

// BuildCatalog строит каталог по конфигурации
func (c *Config) BuildCatalog() (*catalog.Catalog, error) {
	return catalog.NewCatalog(c.MoodTable(), c.MusicDir, c.DefaultTrack)
}

func expandHome(path, home string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		return home + path[1:]
	}
	return path
}
