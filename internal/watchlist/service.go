// Package watchlist maintains the user's bookmarked movies for the current
// session. The list is independent of search results and filter resets.
package watchlist

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/reelpick/reelpick/internal/domain"
)

// UndoWindow is how long a removal can be undone.
const UndoWindow = 5 * time.Second

// Service holds the bookmarked movies in insertion order.
// A mutex guards the state because undo timers fire on their own goroutine.
type Service struct {
	mu       sync.Mutex
	movies   []domain.Movie
	member   map[int]bool
	notifier domain.Notifier
	logger   *slog.Logger

	undoWindow time.Duration
}

// NewService creates a watchlist service. Notifications for add/remove are
// emitted through the given notifier.
func NewService(notifier domain.Notifier, logger *slog.Logger) *Service {
	if notifier == nil {
		notifier = domain.NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		member:     make(map[int]bool),
		notifier:   notifier,
		logger:     logger,
		undoWindow: UndoWindow,
	}
}

// Toggle adds the movie when absent and removes it when present. A removal
// notification carries an undo action valid for the undo window.
func (s *Service) Toggle(m domain.Movie) {
	s.mu.Lock()
	bookmarked := s.member[m.ID]
	s.mu.Unlock()

	if bookmarked {
		token := s.remove(m)
		s.notifier.Notify(domain.Notification{
			Title:       "Removed from watchlist",
			Description: fmt.Sprintf("%q has been removed from your watchlist", m.Title),
			ActionLabel: "Undo",
			Action:      func() { token.Undo() },
		})
		return
	}

	s.add(m)
	s.notifier.Notify(domain.Notification{
		Title:       "Added to watchlist",
		Description: fmt.Sprintf("%q has been added to your watchlist", m.Title),
	})
}

// IsBookmarked reports whether the movie with the given id is on the list.
func (s *Service) IsBookmarked(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.member[id]
}

// Movies returns the bookmarked movies in insertion order.
func (s *Service) Movies() []domain.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// Len returns the number of bookmarked movies.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movies)
}

func (s *Service) add(m domain.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.member[m.ID] {
		return
	}
	s.movies = append(s.movies, m)
	s.member[m.ID] = true
	s.logger.Debug("added to watchlist", "id", m.ID, "title", m.Title, "count", len(s.movies))
}

// remove takes the movie off the list immediately and returns the undo token
// for it. The removal is already effective when this returns; the token only
// offers reinstatement.
func (s *Service) remove(m domain.Movie) *UndoToken {
	s.mu.Lock()
	if !s.member[m.ID] {
		s.mu.Unlock()
		return &UndoToken{spent: true}
	}
	for i, entry := range s.movies {
		if entry.ID == m.ID {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			break
		}
	}
	delete(s.member, m.ID)
	count := len(s.movies)
	s.mu.Unlock()

	s.logger.Debug("removed from watchlist", "id", m.ID, "title", m.Title, "count", count)

	token := &UndoToken{svc: s, movie: m}
	// The expiry timer only finalizes the token. The removal happened above,
	// so expiry performs no further state change.
	token.timer = time.AfterFunc(s.undoWindow, token.expire)
	return token
}

// UndoToken is the handle returned by a removal. Undo reinstates the removed
// movie while the window is open; afterwards the removal is final.
type UndoToken struct {
	svc   *Service
	movie domain.Movie
	timer *time.Timer

	mu    sync.Mutex
	spent bool
}

// Undo puts the movie back on the watchlist, appended at the end rather than
// at its original position. It reports whether the undo took effect; a token
// can be spent at most once and not after the window has closed.
func (t *UndoToken) Undo() bool {
	t.mu.Lock()
	if t.spent {
		t.mu.Unlock()
		return false
	}
	t.spent = true
	t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.svc.add(t.movie)
	t.svc.logger.Debug("undid watchlist removal", "id", t.movie.ID, "title", t.movie.Title)
	return true
}

func (t *UndoToken) expire() {
	t.mu.Lock()
	t.spent = true
	t.mu.Unlock()
}
