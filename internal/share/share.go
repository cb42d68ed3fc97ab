// Package share copies movie links to the system clipboard.
package share

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/reelpick/reelpick/internal/domain"
)

// MovieLink returns the shareable URL for a movie.
func MovieLink(id int) string {
	return fmt.Sprintf("https://imdb.com/movies/%d", id)
}

// SystemClipboard writes to the real OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Sharer formats a movie link and writes it to a clipboard. The write
// outcome only selects which notification is emitted; it is never surfaced
// as an error to the caller.
type Sharer struct {
	clipboard domain.Clipboard
	notifier  domain.Notifier
	logger    *slog.Logger
}

// NewSharer creates a sharer backed by the given clipboard.
func NewSharer(cb domain.Clipboard, notifier domain.Notifier, logger *slog.Logger) *Sharer {
	if cb == nil {
		cb = SystemClipboard{}
	}
	if notifier == nil {
		notifier = domain.NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sharer{clipboard: cb, notifier: notifier, logger: logger}
}

// Share copies the movie link and notifies the outcome.
func (s *Sharer) Share(m domain.Movie) {
	link := MovieLink(m.ID)

	if err := s.clipboard.WriteText(link); err != nil {
		s.logger.Warn("clipboard write failed", "error", err, "id", m.ID)
		s.notifier.Notify(domain.Notification{
			Title:       "Failed to copy",
			Description: "Something went wrong. Please try again.",
		})
		return
	}

	s.logger.Debug("copied share link", "id", m.ID, "link", link)
	s.notifier.Notify(domain.Notification{
		Title:       "Share the movie",
		Description: fmt.Sprintf("Link to %q copied to clipboard", m.Title),
	})
}
