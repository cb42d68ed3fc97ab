// Package catalog holds the bundled movie catalog and its reference lists.
// The catalog is loaded once at startup and never mutated afterwards.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/reelpick/reelpick/internal/domain"
)

//go:embed catalog.json
var catalogJSON []byte

// Genres enumerates the valid movie genres.
var Genres = []string{
	"Action", "Animation", "Comedy", "Crime", "Drama",
	"Fantasy", "Horror", "Musical", "Mystery", "Sci-Fi",
}

// Languages enumerates the selectable languages.
var Languages = []string{
	"English", "Spanish", "French", "German", "Italian",
	"Japanese", "Korean", "Portuguese", "Russian", "Norwegian",
	"Polish", "Hebrew", "Hungarian",
}

// YearBuckets enumerates the selectable release periods, in display order.
var YearBuckets = []domain.YearBucket{
	domain.YearAll,
	domain.YearBefore1980,
	domain.Year1980s,
	domain.Year1990s,
	domain.Year2000s,
	domain.Year2010s,
	domain.Year2020s,
}

// SortKeys enumerates the selectable sort orders, in display order.
var SortKeys = []domain.SortKey{
	domain.SortRating,
	domain.SortYearNewest,
	domain.SortYearOldest,
	domain.SortDurationShortest,
	domain.SortDurationLongest,
}

// Load decodes and validates the embedded catalog.
func Load() ([]domain.Movie, error) {
	return decode(catalogJSON)
}

func decode(data []byte) ([]domain.Movie, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var movies []domain.Movie
	if err := dec.Decode(&movies); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	seen := make(map[int]bool, len(movies))
	for _, m := range movies {
		if err := validate(m); err != nil {
			return nil, err
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("movie %d: duplicate id", m.ID)
		}
		seen[m.ID] = true
	}

	return movies, nil
}

func validate(m domain.Movie) error {
	if m.ID <= 0 {
		return fmt.Errorf("movie %q: id must be positive", m.Title)
	}
	if m.Title == "" {
		return fmt.Errorf("movie %d: empty title", m.ID)
	}
	if !ValidGenre(m.Genre) {
		return fmt.Errorf("movie %d: unknown genre %q", m.ID, m.Genre)
	}
	if m.Duration <= 0 {
		return fmt.Errorf("movie %d: duration must be positive", m.ID)
	}
	if m.Rating < 0 || m.Rating > 10 {
		return fmt.Errorf("movie %d: rating %.1f out of range", m.ID, m.Rating)
	}
	if len(m.Languages) == 0 {
		return fmt.Errorf("movie %d: no languages", m.ID)
	}
	return nil
}

// ValidGenre reports whether g is one of the enumerated genres.
func ValidGenre(g string) bool {
	for _, genre := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}
