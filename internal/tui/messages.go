package tui

// Message types for the TUI

// ClearToastMsg expires the toast shown with the given sequence number.
// A stale sequence is ignored so a newer toast keeps its full lifetime.
type ClearToastMsg struct {
	Seq int
}

// ShareDoneMsg signals that an async clipboard write finished; the
// outcome toast is already queued on the notifier.
type ShareDoneMsg struct{}
