package tui

import (
	"sync"

	"github.com/reelpick/reelpick/internal/domain"
)

// notifySink collects notifications emitted by the core services so the
// update loop can surface them as toasts. Share runs on a background
// goroutine, hence the lock.
type notifySink struct {
	mu      sync.Mutex
	pending []domain.Notification
}

func (s *notifySink) Notify(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, n)
}

func (s *notifySink) drain() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

// confirmRequest is one pending yes/no prompt.
type confirmRequest struct {
	title       string
	description string
	onConfirm   func()
}

// confirmQueue holds at most one pending confirmation for the modal.
// Requests only originate from key handlers, so no lock is needed.
type confirmQueue struct {
	pending *confirmRequest
}

func (q *confirmQueue) Confirm(title, description string, onConfirm func()) {
	q.pending = &confirmRequest{title: title, description: description, onConfirm: onConfirm}
}

func (q *confirmQueue) take() *confirmRequest {
	r := q.pending
	q.pending = nil
	return r
}
