package domain

import "fmt"

// Movie is a single catalog entry. Identity is the integer ID; everything
// else is display data. Movies are immutable once loaded.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Duration    int      `json:"duration"` // minutes
	Description string   `json:"description"`
	Rating      float64  `json:"rating"` // 0.0 - 10.0
	Year        int      `json:"year"`
	Languages   []string `json:"languages"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
}

// FormattedDuration returns the runtime as "2h 22m".
func (m Movie) FormattedDuration() string {
	return fmt.Sprintf("%dh %dm", m.Duration/60, m.Duration%60)
}

// HasLanguage reports whether the movie is available in the given language.
func (m Movie) HasLanguage(lang string) bool {
	for _, l := range m.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
