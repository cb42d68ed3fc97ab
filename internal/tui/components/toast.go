package components

import (
	"strings"

	"github.com/reelpick/reelpick/internal/domain"
	"github.com/reelpick/reelpick/internal/tui/styles"
)

// Toast is a transient notification banner. Only one toast is shown at
// a time; a newer notification replaces the current one. Seq identifies
// the showing so a stale expiry timer cannot clear a newer toast.
type Toast struct {
	visible     bool
	seq         int
	title       string
	description string
	actionLabel string
	action      func()
	actionSpent bool
}

// Show replaces the current toast and returns the sequence number the
// caller should attach to its expiry timer.
func (t *Toast) Show(n domain.Notification) int {
	t.seq++
	t.visible = true
	t.title = n.Title
	t.description = n.Description
	t.actionLabel = n.ActionLabel
	t.action = n.Action
	t.actionSpent = false
	return t.seq
}

// Expire hides the toast if seq still identifies the showing one.
func (t *Toast) Expire(seq int) {
	if t.visible && t.seq == seq {
		t.visible = false
	}
}

// Dismiss hides the toast immediately.
func (t *Toast) Dismiss() {
	t.visible = false
}

// IsVisible reports whether a toast is on screen.
func (t Toast) IsVisible() bool {
	return t.visible
}

// HasAction reports whether the visible toast carries an unspent action.
func (t Toast) HasAction() bool {
	return t.visible && t.action != nil && !t.actionSpent
}

// InvokeAction runs the toast action once and dismisses the toast.
func (t *Toast) InvokeAction() bool {
	if !t.HasAction() {
		return false
	}
	t.actionSpent = true
	t.action()
	t.visible = false
	return true
}

// View renders the toast banner, empty when hidden.
func (t Toast) View(st styles.Styles, width int) string {
	if !t.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(st.ToastTitle.Render(t.title))
	if t.description != "" {
		b.WriteString("\n")
		b.WriteString(st.Subtitle.Render(styles.Truncate(t.description, width-6)))
	}
	if t.HasAction() {
		b.WriteString("\n")
		b.WriteString(st.ToastAction.Render("u") + st.Dim.Render(" "+t.actionLabel))
	}

	return st.Toast.Render(b.String())
}
