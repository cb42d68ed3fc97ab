// Package session orchestrates the picker's state: the active criteria, the
// current result set, pagination and the view tab. All transitions are
// explicit, synchronous reactions to named events; nothing recomputes
// reactively when a criteria field changes.
package session

import (
	"log/slog"

	"github.com/reelpick/reelpick/internal/domain"
	"github.com/reelpick/reelpick/internal/recommend"
	"github.com/reelpick/reelpick/internal/share"
	"github.com/reelpick/reelpick/internal/watchlist"
)

// Tab identifies the active view.
type Tab int

const (
	TabRecommendations Tab = iota
	TabWatchlist
)

// Session owns the mutable UI-facing state for one run of the picker.
// The zero page is meaningful only after the first search.
type Session struct {
	Criteria    domain.Criteria
	Results     []domain.Movie
	Page        int
	HasSearched bool
	ActiveTab   Tab
	DarkMode    bool

	catalog   []domain.Movie
	watchlist *watchlist.Service
	sharer    *share.Sharer
	notifier  domain.Notifier
	confirmer domain.Confirmer
	logger    *slog.Logger
}

// New creates a session over the given catalog with default criteria.
func New(
	catalog []domain.Movie,
	wl *watchlist.Service,
	sharer *share.Sharer,
	notifier domain.Notifier,
	confirmer domain.Confirmer,
	logger *slog.Logger,
) *Session {
	if notifier == nil {
		notifier = domain.NopNotifier{}
	}
	if confirmer == nil {
		confirmer = domain.AutoConfirmer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		Criteria:  domain.DefaultCriteria(),
		Page:      1,
		catalog:   catalog,
		watchlist: wl,
		sharer:    sharer,
		notifier:  notifier,
		confirmer: confirmer,
		logger:    logger,
	}
}

// Watchlist exposes the session's watchlist service.
func (s *Session) Watchlist() *watchlist.Service { return s.watchlist }

// Catalog returns the full, immutable catalog.
func (s *Session) Catalog() []domain.Movie { return s.catalog }

// FindMovies runs the engine against the current criteria, replaces the
// result set wholesale, resets to page one and switches to the
// recommendations tab. This is the only event that recomputes results.
func (s *Session) FindMovies() {
	s.Results = recommend.Recommend(s.catalog, s.Criteria)
	s.Page = 1
	s.HasSearched = true
	s.ActiveTab = TabRecommendations
	s.logger.Info("search complete", "results", len(s.Results), "criteria", s.Criteria)
}

// ClearFilters resets the criteria to defaults. The result set and the
// hasSearched flag are deliberately untouched.
func (s *Session) ClearFilters() {
	s.Criteria = domain.DefaultCriteria()
	s.notifier.Notify(domain.Notification{
		Title:       "Filters cleared",
		Description: "All filters have been reset to default values",
	})
	s.logger.Debug("filters reset to defaults")
}

// TotalPages returns the page count for the current result set.
func (s *Session) TotalPages() int {
	_, total := recommend.Paginate(s.Results, recommend.PageSize, 1)
	return total
}

// CurrentPage derives the visible slice for the current page on demand.
func (s *Session) CurrentPage() ([]domain.Movie, int) {
	return recommend.Paginate(s.Results, recommend.PageSize, s.Page)
}

// ChangePage moves to the requested page when it is in range. It reports
// whether the page changed, which tells the caller to scroll the results
// back into view.
func (s *Session) ChangePage(page int) bool {
	if page < 1 || page > s.TotalPages() {
		return false
	}
	s.Page = page
	return true
}

// SwitchTab changes the active view. Purely presentational: neither the
// result set nor the watchlist is affected.
func (s *Session) SwitchTab(tab Tab) {
	s.ActiveTab = tab
}

// ToggleWatchlist bookmarks or unbookmarks a movie directly, with no
// confirmation step. Used from the recommendations view.
func (s *Session) ToggleWatchlist(m domain.Movie) {
	s.watchlist.Toggle(m)
}

// RequestWatchlistRemoval asks for confirmation before removing. Used from
// the watchlist view; the asymmetry with ToggleWatchlist is intentional.
func (s *Session) RequestWatchlistRemoval(m domain.Movie) {
	s.confirmer.Confirm(
		"Remove movie from watchlist?",
		"Are you sure you want to remove this movie from your watchlist?",
		func() { s.watchlist.Toggle(m) },
	)
}

// ShareMovie copies the movie's link to the clipboard. The outcome surfaces
// only as a notification.
func (s *Session) ShareMovie(m domain.Movie) {
	s.sharer.Share(m)
}

// ToggleDarkMode flips the theme flag and returns the new value. Applying
// the visual theme is the presentation layer's responsibility.
func (s *Session) ToggleDarkMode() bool {
	s.DarkMode = !s.DarkMode
	return s.DarkMode
}
