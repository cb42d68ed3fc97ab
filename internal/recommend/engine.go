// Package recommend implements the filtering, sorting and pagination engine
// behind the movie picker. All functions are pure: they never modify the
// catalog and never fail for well-typed input.
package recommend

import (
	"sort"

	"github.com/reelpick/reelpick/internal/domain"
)

// Recommend returns the catalog movies matching all criteria, ordered by the
// criteria's sort key. Ties preserve catalog order. An empty result is
// normal, not an error.
func Recommend(catalog []domain.Movie, c domain.Criteria) []domain.Movie {
	matched := make([]domain.Movie, 0, len(catalog))
	for _, m := range catalog {
		if Matches(m, c) {
			matched = append(matched, m)
		}
	}
	sortMovies(matched, c.SortKey)
	return matched
}

// Matches reports whether a single movie satisfies every filter predicate.
func Matches(m domain.Movie, c domain.Criteria) bool {
	if c.Genre != domain.GenreAny && m.Genre != c.Genre {
		return false
	}
	if m.Duration > c.MaxDuration {
		return false
	}
	if m.Rating < c.MinRating {
		return false
	}
	if !c.YearBucket.Contains(m.Year) {
		return false
	}
	return m.HasLanguage(c.Language)
}

// sortMovies orders movies in place. The sort is stable so that equal keys
// keep their catalog order. An unrecognized key leaves catalog order intact.
func sortMovies(movies []domain.Movie, key domain.SortKey) {
	var less func(a, b domain.Movie) bool

	switch key {
	case domain.SortRating:
		less = func(a, b domain.Movie) bool { return a.Rating > b.Rating }
	case domain.SortYearNewest:
		less = func(a, b domain.Movie) bool { return a.Year > b.Year }
	case domain.SortYearOldest:
		less = func(a, b domain.Movie) bool { return a.Year < b.Year }
	case domain.SortDurationShortest:
		less = func(a, b domain.Movie) bool { return a.Duration < b.Duration }
	case domain.SortDurationLongest:
		less = func(a, b domain.Movie) bool { return a.Duration > b.Duration }
	default:
		return
	}

	sort.SliceStable(movies, func(i, j int) bool { return less(movies[i], movies[j]) })
}
