package session

import (
	"testing"

	"github.com/reelpick/reelpick/internal/catalog"
	"github.com/reelpick/reelpick/internal/domain"
	"github.com/reelpick/reelpick/internal/recommend"
	"github.com/reelpick/reelpick/internal/share"
	"github.com/reelpick/reelpick/internal/watchlist"
)

type recorder struct {
	notes []domain.Notification
}

func (r *recorder) Notify(n domain.Notification) { r.notes = append(r.notes, n) }

// stubConfirmer records the prompt and lets the test decide the answer.
type stubConfirmer struct {
	asked   int
	accept  bool
	pending func()
}

func (c *stubConfirmer) Confirm(title, description string, onConfirm func()) {
	c.asked++
	if c.accept {
		onConfirm()
		return
	}
	c.pending = onConfirm
}

func newTestSession(t *testing.T, rec *recorder, conf domain.Confirmer) *Session {
	t.Helper()
	movies, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	var notifier domain.Notifier = domain.NopNotifier{}
	if rec != nil {
		notifier = rec
	}
	wl := watchlist.NewService(notifier, nil)
	sharer := share.NewSharer(&nullClipboard{}, notifier, nil)
	return New(movies, wl, sharer, notifier, conf, nil)
}

type nullClipboard struct{}

func (*nullClipboard) WriteText(string) error { return nil }

func TestFindMoviesTransition(t *testing.T) {
	s := newTestSession(t, nil, nil)

	if s.HasSearched {
		t.Fatal("session should start in the idle state")
	}

	s.Page = 3
	s.ActiveTab = TabWatchlist
	s.FindMovies()

	if !s.HasSearched {
		t.Error("HasSearched = false after FindMovies")
	}
	if s.Page != 1 {
		t.Errorf("Page = %d, want 1 after a new search", s.Page)
	}
	if s.ActiveTab != TabRecommendations {
		t.Error("FindMovies should switch to the recommendations tab")
	}
	if len(s.Results) == 0 {
		t.Error("default criteria should match some movies")
	}
}

func TestCriteriaChangesAreNotReactive(t *testing.T) {
	s := newTestSession(t, nil, nil)
	s.FindMovies()
	before := len(s.Results)

	// Tightening a filter must not touch results until the next explicit search.
	s.Criteria.MinRating = 9.9
	if len(s.Results) != before {
		t.Fatal("changing criteria recomputed results without FindMovies")
	}

	s.FindMovies()
	if len(s.Results) >= before {
		t.Errorf("after re-search got %d results, want fewer than %d", len(s.Results), before)
	}
}

func TestClearFilters(t *testing.T) {
	rec := &recorder{}
	s := newTestSession(t, rec, nil)

	s.Criteria = domain.Criteria{
		Genre:       "Horror",
		MaxDuration: 90,
		MinRating:   9.0,
		YearBucket:  domain.Year1980s,
		Language:    "Korean",
		SortKey:     domain.SortYearOldest,
	}
	s.FindMovies()
	resultsBefore := len(s.Results)

	s.ClearFilters()

	if s.Criteria != domain.DefaultCriteria() {
		t.Errorf("Criteria = %+v, want defaults", s.Criteria)
	}
	if !s.HasSearched {
		t.Error("ClearFilters must not reset the searched state")
	}
	if len(s.Results) != resultsBefore {
		t.Error("ClearFilters must not touch the result set")
	}
	if len(rec.notes) == 0 || rec.notes[len(rec.notes)-1].Title != "Filters cleared" {
		t.Error("expected a 'Filters cleared' notification")
	}
}

func TestChangePageBounds(t *testing.T) {
	s := newTestSession(t, nil, nil)
	s.Criteria.MinRating = domain.MinRatingFloor
	s.Criteria.MaxDuration = domain.MaxAvailableTime
	s.FindMovies()

	total := s.TotalPages()
	if total < 2 {
		t.Fatalf("need at least 2 pages for this test, got %d", total)
	}

	tests := []struct {
		page string
		n    int
		want bool
	}{
		{"zero", 0, false},
		{"negative", -1, false},
		{"first", 1, true},
		{"last", total, true},
		{"past the end", total + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			before := s.Page
			if got := s.ChangePage(tt.n); got != tt.want {
				t.Errorf("ChangePage(%d) = %v, want %v", tt.n, got, tt.want)
			}
			if !tt.want && s.Page != before {
				t.Errorf("rejected page change still moved Page to %d", s.Page)
			}
		})
	}
}

func TestCurrentPageMatchesPaginate(t *testing.T) {
	s := newTestSession(t, nil, nil)
	s.Criteria.MinRating = domain.MinRatingFloor
	s.Criteria.MaxDuration = domain.MaxAvailableTime
	s.FindMovies()
	s.ChangePage(2)

	page, total := s.CurrentPage()
	wantPage, wantTotal := recommend.Paginate(s.Results, recommend.PageSize, 2)
	if total != wantTotal || len(page) != len(wantPage) {
		t.Errorf("CurrentPage() = %d items/%d pages, want %d/%d", len(page), total, len(wantPage), wantTotal)
	}
}

func TestWatchlistSurvivesSearchAndReset(t *testing.T) {
	s := newTestSession(t, nil, nil)
	movie := s.Catalog()[0]

	s.ToggleWatchlist(movie)
	s.FindMovies()
	s.ClearFilters()
	s.FindMovies()

	if !s.Watchlist().IsBookmarked(movie.ID) {
		t.Error("watchlist entry lost across search and filter reset")
	}
}

func TestWatchlistRemovalRequiresConfirmation(t *testing.T) {
	conf := &stubConfirmer{}
	s := newTestSession(t, nil, conf)
	movie := s.Catalog()[0]

	s.ToggleWatchlist(movie)
	if conf.asked != 0 {
		t.Fatal("direct toggle must not prompt for confirmation")
	}

	s.RequestWatchlistRemoval(movie)
	if conf.asked != 1 {
		t.Fatalf("confirmer asked %d times, want 1", conf.asked)
	}
	if !s.Watchlist().IsBookmarked(movie.ID) {
		t.Fatal("movie removed before the user confirmed")
	}

	conf.pending() // user accepts
	if s.Watchlist().IsBookmarked(movie.ID) {
		t.Error("movie still bookmarked after confirmed removal")
	}
}

func TestSwitchTabIsPresentational(t *testing.T) {
	s := newTestSession(t, nil, nil)
	s.FindMovies()
	results := len(s.Results)

	s.SwitchTab(TabWatchlist)
	if s.ActiveTab != TabWatchlist {
		t.Error("tab did not switch")
	}
	if len(s.Results) != results {
		t.Error("tab switch must not affect the result set")
	}
}

func TestToggleDarkMode(t *testing.T) {
	s := newTestSession(t, nil, nil)
	if s.DarkMode {
		t.Fatal("dark mode should start off")
	}
	if !s.ToggleDarkMode() {
		t.Error("first toggle should report dark mode on")
	}
	if s.ToggleDarkMode() {
		t.Error("second toggle should report dark mode off")
	}
}
