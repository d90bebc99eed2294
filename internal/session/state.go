package session

// State - состояние сеанса воспроизведения
type State int

const (
	// Idle - нет активного трека
	Idle State = iota
	// Selecting - настроение выбрано, трек выбирается
	Selecting
	// Playing - трек запущен, сеанс ждет действия пользователя
	Playing
	// Exited - сеанс завершен
	Exited
)

// String возвращает строковое представление состояния
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Playing:
		return "playing"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}
