package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelpick/reelpick/internal/domain"
	"github.com/reelpick/reelpick/internal/session"
	"github.com/reelpick/reelpick/internal/watchlist"
)

// ToastLifetime is how long a toast stays on screen. It matches the
// undo window so the undo action is reachable for as long as it works.
const ToastLifetime = watchlist.UndoWindow

// ClearToastCmd schedules the expiry of the toast with the given sequence.
func ClearToastCmd(seq int) tea.Cmd {
	return tea.Tick(ToastLifetime, func(time.Time) tea.Msg {
		return ClearToastMsg{Seq: seq}
	})
}

// ShareCmd copies the movie link off the UI goroutine. Clipboard access
// shells out on some platforms and can block.
func ShareCmd(sess *session.Session, m domain.Movie) tea.Cmd {
	return func() tea.Msg {
		sess.ShareMovie(m)
		return ShareDoneMsg{}
	}
}
