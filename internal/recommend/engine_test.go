package recommend

import (
	"testing"

	"github.com/reelpick/reelpick/internal/catalog"
	"github.com/reelpick/reelpick/internal/domain"
)

func loadCatalog(t *testing.T) []domain.Movie {
	t.Helper()
	movies, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	return movies
}

// openCriteria matches as much of the catalog as the language allows.
func openCriteria() domain.Criteria {
	return domain.Criteria{
		Genre:       domain.GenreAny,
		MaxDuration: domain.MaxAvailableTime,
		MinRating:   domain.MinRatingFloor,
		YearBucket:  domain.YearAll,
		Language:    "English",
		SortKey:     domain.SortRating,
	}
}

func TestRecommendEveryResultMatches(t *testing.T) {
	movies := loadCatalog(t)

	criteria := []domain.Criteria{
		openCriteria(),
		{Genre: "Drama", MaxDuration: 150, MinRating: 8.0, YearBucket: domain.Year1990s, Language: "English", SortKey: domain.SortRating},
		{Genre: domain.GenreAny, MaxDuration: 120, MinRating: 7.0, YearBucket: domain.Year2010s, Language: "French", SortKey: domain.SortYearNewest},
		{Genre: "Horror", MaxDuration: 240, MinRating: 1.0, YearBucket: domain.YearBefore1980, Language: "English", SortKey: domain.SortDurationShortest},
	}

	for _, c := range criteria {
		results := Recommend(movies, c)
		inResult := make(map[int]bool, len(results))
		for _, m := range results {
			inResult[m.ID] = true
			if !Matches(m, c) {
				t.Errorf("criteria %+v: result %q fails a predicate", c, m.Title)
			}
		}
		for _, m := range movies {
			if Matches(m, c) && !inResult[m.ID] {
				t.Errorf("criteria %+v: %q matches but is missing from results", c, m.Title)
			}
		}
	}
}

func TestRecommendPredicates(t *testing.T) {
	m := domain.Movie{
		ID: 1, Title: "X", Genre: "Drama", Duration: 120,
		Rating: 8.0, Year: 1994, Languages: []string{"English", "Spanish"},
	}

	tests := []struct {
		name string
		mod  func(*domain.Criteria)
		want bool
	}{
		{"all pass", func(c *domain.Criteria) {}, true},
		{"any genre always matches", func(c *domain.Criteria) { c.Genre = domain.GenreAny }, true},
		{"genre mismatch", func(c *domain.Criteria) { c.Genre = "Action" }, false},
		{"duration over budget", func(c *domain.Criteria) { c.MaxDuration = 119 }, false},
		{"duration exactly at budget", func(c *domain.Criteria) { c.MaxDuration = 120 }, true},
		{"rating below minimum", func(c *domain.Criteria) { c.MinRating = 8.1 }, false},
		{"rating exactly at minimum", func(c *domain.Criteria) { c.MinRating = 8.0 }, true},
		{"wrong decade", func(c *domain.Criteria) { c.YearBucket = domain.Year2000s }, false},
		{"matching decade", func(c *domain.Criteria) { c.YearBucket = domain.Year1990s }, true},
		{"language not offered", func(c *domain.Criteria) { c.Language = "Korean" }, false},
		{"secondary language matches", func(c *domain.Criteria) { c.Language = "Spanish" }, true},
		{"unrecognized bucket matches nothing", func(c *domain.Criteria) { c.YearBucket = "1870s" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.Criteria{
				Genre:       "Drama",
				MaxDuration: 240,
				MinRating:   1.0,
				YearBucket:  domain.YearAll,
				Language:    "English",
			}
			tt.mod(&c)
			if got := Matches(m, c); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestYearBuckets(t *testing.T) {
	tests := []struct {
		bucket domain.YearBucket
		year   int
		want   bool
	}{
		{domain.YearAll, 1942, true},
		{domain.YearBefore1980, 1979, true},
		{domain.YearBefore1980, 1980, false},
		{domain.Year1980s, 1980, true},
		{domain.Year1980s, 1989, true},
		{domain.Year1980s, 1990, false},
		{domain.Year1990s, 1999, true},
		{domain.Year2000s, 2009, true},
		{domain.Year2010s, 2019, true},
		{domain.Year2010s, 2020, false},
		{domain.Year2020s, 2020, true},
		{domain.Year2020s, 2035, true},
	}
	for _, tt := range tests {
		if got := tt.bucket.Contains(tt.year); got != tt.want {
			t.Errorf("%s.Contains(%d) = %v, want %v", tt.bucket, tt.year, got, tt.want)
		}
	}
}

func TestSortStability(t *testing.T) {
	// Three movies share a rating; their relative order must match input order.
	movies := []domain.Movie{
		{ID: 1, Title: "A", Genre: "Drama", Duration: 100, Rating: 8.5, Year: 2000, Languages: []string{"English"}},
		{ID: 2, Title: "B", Genre: "Drama", Duration: 90, Rating: 9.0, Year: 2001, Languages: []string{"English"}},
		{ID: 3, Title: "C", Genre: "Drama", Duration: 110, Rating: 8.5, Year: 2002, Languages: []string{"English"}},
		{ID: 4, Title: "D", Genre: "Drama", Duration: 120, Rating: 8.5, Year: 2003, Languages: []string{"English"}},
	}

	c := openCriteria()
	results := Recommend(movies, c)

	wantIDs := []int{2, 1, 3, 4}
	if len(results) != len(wantIDs) {
		t.Fatalf("got %d results, want %d", len(results), len(wantIDs))
	}
	for i, id := range wantIDs {
		if results[i].ID != id {
			t.Errorf("results[%d].ID = %d, want %d", i, results[i].ID, id)
		}
	}
}

func TestSortOrders(t *testing.T) {
	movies := loadCatalog(t)
	c := openCriteria()

	tests := []struct {
		key  domain.SortKey
		less func(a, b domain.Movie) bool // ordering violation when true
	}{
		{domain.SortRating, func(a, b domain.Movie) bool { return a.Rating < b.Rating }},
		{domain.SortYearNewest, func(a, b domain.Movie) bool { return a.Year < b.Year }},
		{domain.SortYearOldest, func(a, b domain.Movie) bool { return a.Year > b.Year }},
		{domain.SortDurationShortest, func(a, b domain.Movie) bool { return a.Duration > b.Duration }},
		{domain.SortDurationLongest, func(a, b domain.Movie) bool { return a.Duration < b.Duration }},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			c.SortKey = tt.key
			results := Recommend(movies, c)
			if len(results) == 0 {
				t.Fatal("expected non-empty results")
			}
			for i := 1; i < len(results); i++ {
				if tt.less(results[i-1], results[i]) {
					t.Errorf("out of order at %d: %q before %q", i, results[i-1].Title, results[i].Title)
				}
			}
		})
	}
}

func TestRecommendEnglishCatalogScenario(t *testing.T) {
	// The fully-open English search returns exactly the English-language
	// movies, best rated first, with the top ten on page one.
	movies := loadCatalog(t)
	c := openCriteria()

	results := Recommend(movies, c)

	wantLen := 0
	for _, m := range movies {
		if m.HasLanguage("English") {
			wantLen++
		}
	}
	if len(results) != wantLen {
		t.Errorf("got %d results, want %d English-language movies", len(results), wantLen)
	}
	if results[0].Title != "The Shawshank Redemption" {
		t.Errorf("top result = %q, want The Shawshank Redemption (9.3)", results[0].Title)
	}

	page, totalPages := Paginate(results, PageSize, 1)
	if len(page) != 10 {
		t.Errorf("page 1 has %d movies, want 10", len(page))
	}
	if totalPages != (wantLen+9)/10 {
		t.Errorf("totalPages = %d, want %d", totalPages, (wantLen+9)/10)
	}
	for i := 1; i < len(page); i++ {
		if page[i-1].Rating < page[i].Rating {
			t.Errorf("page 1 not sorted by rating at %d", i)
		}
	}
}

func TestRecommendShortTimeBudgetExcludesLongMovies(t *testing.T) {
	movies := loadCatalog(t)
	c := openCriteria()
	c.MaxDuration = 90

	for _, m := range Recommend(movies, c) {
		if m.Title == "The Shawshank Redemption" {
			t.Fatal("a 142 minute movie slipped past a 90 minute budget")
		}
		if m.Duration > 90 {
			t.Errorf("%q is %d minutes, over the 90 minute budget", m.Title, m.Duration)
		}
	}
}

func TestRecommendEmptyResult(t *testing.T) {
	movies := loadCatalog(t)
	c := openCriteria()
	c.Language = "Norwegian"
	c.Genre = "Musical"

	results := Recommend(movies, c)
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}

	_, totalPages := Paginate(results, PageSize, 1)
	if totalPages != 0 {
		t.Errorf("totalPages = %d, want 0 for empty results", totalPages)
	}
}
