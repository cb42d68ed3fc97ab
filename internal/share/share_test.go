package share

import (
	"errors"
	"testing"

	"github.com/reelpick/reelpick/internal/domain"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(text string) error {
	f.text = text
	return f.err
}

type recorder struct {
	notes []domain.Notification
}

func (r *recorder) Notify(n domain.Notification) { r.notes = append(r.notes, n) }

var inception = domain.Movie{ID: 3, Title: "Inception"}

func TestMovieLink(t *testing.T) {
	if got, want := MovieLink(3), "https://imdb.com/movies/3"; got != want {
		t.Errorf("MovieLink(3) = %q, want %q", got, want)
	}
}

func TestShareSuccess(t *testing.T) {
	cb := &fakeClipboard{}
	rec := &recorder{}
	s := NewSharer(cb, rec, nil)

	s.Share(inception)

	if cb.text != "https://imdb.com/movies/3" {
		t.Errorf("clipboard text = %q, want the movie link", cb.text)
	}
	if len(rec.notes) != 1 {
		t.Fatalf("got %d notifications, want 1", len(rec.notes))
	}
	n := rec.notes[0]
	if n.Title != "Share the movie" {
		t.Errorf("notification title = %q, want %q", n.Title, "Share the movie")
	}
	if want := `Link to "Inception" copied to clipboard`; n.Description != want {
		t.Errorf("notification description = %q, want %q", n.Description, want)
	}
}

func TestShareFailure(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no clipboard available")}
	rec := &recorder{}
	s := NewSharer(cb, rec, nil)

	s.Share(inception)

	if len(rec.notes) != 1 {
		t.Fatalf("got %d notifications, want 1", len(rec.notes))
	}
	if got, want := rec.notes[0].Title, "Failed to copy"; got != want {
		t.Errorf("notification title = %q, want %q", got, want)
	}
}
