package catalog

import "fmt"

// ConfigError сообщает о некорректной таблице настроений.
// Приложение не должно запускаться с такой конфигурацией.
type ConfigError struct {
	Mood   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Mood == "" {
		return fmt.Sprintf("ошибка конфигурации каталога: %s", e.Reason)
	}
	return fmt.Sprintf("ошибка конфигурации каталога: настроение %q: %s", e.Mood, e.Reason)
}
