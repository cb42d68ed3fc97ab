// Package search provides fuzzy title lookup over the catalog for the
// quick-jump omnibar.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/reelpick/reelpick/internal/domain"
)

// Index is a pre-lowercased title index implementing fuzzy.Source so that
// matching allocates nothing per query.
type Index struct {
	movies      []domain.Movie
	lowerTitles []string
}

// NewIndex builds an index over the given movies.
func NewIndex(movies []domain.Movie) *Index {
	lower := make([]string, len(movies))
	for i, m := range movies {
		lower[i] = strings.ToLower(m.Title)
	}
	return &Index{movies: movies, lowerTitles: lower}
}

// String returns the lowercase title at i (implements fuzzy.Source).
func (idx *Index) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of indexed movies (implements fuzzy.Source).
func (idx *Index) Len() int { return len(idx.movies) }

// Result is a matched movie with highlight metadata.
type Result struct {
	Movie          domain.Movie
	MatchedIndexes []int // character positions in the title that matched
	Score          int   // higher is better
}

// Search returns matching movies ranked best first. An empty query matches
// nothing.
func (idx *Index) Search(query string) []Result {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, idx)

	results := make([]Result, len(matches))
	for i, match := range matches {
		results[i] = Result{
			Movie:          idx.movies[match.Index],
			MatchedIndexes: match.MatchedIndexes,
			Score:          match.Score,
		}
	}
	return results
}
