package catalog

// DefaultMoods возвращает встроенную таблицу настроений.
// Каждый вызов возвращает новую копию, которую можно изменять.
func DefaultMoods() map[string][]string {
	return map[string][]string{
		"Happy":      {"happygirl.wav", "happygirlie.wav"},
		"Angry":      {"Angry.wav", "Angrygirlie.wav"},
		"Chill":      {"chillgirl.wav", "chilliirlie.wav"},
		"Mysterious": {"mysteriousgirl.wav", "mysteriousgirlie.wav"},
		"Moody":      {"moodygirl.wav", "moodyirlie.wav"},
		"Practise":   {"practicegirl.wav", "practicegirlie.wav"},
		"Romantic":   {"romanticgirl.wav", "romanticgirlie.wav"},
		"Peaceful":   {"peacefulgirl.wav", "peacefulgirlie.wav"},
		"Positive":   {"positivegirl.wav", "positivegirlie.wav"},
	}
}
