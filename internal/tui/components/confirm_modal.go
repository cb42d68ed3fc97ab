package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/reelpick/reelpick/internal/tui/styles"
)

// ConfirmModal is a yes/no popup guarding destructive actions.
type ConfirmModal struct {
	visible     bool
	title       string
	description string
	onConfirm   func()
}

// NewConfirmModal creates a hidden confirm modal.
func NewConfirmModal() ConfirmModal {
	return ConfirmModal{}
}

// Show displays the modal with the given prompt. onConfirm runs only if
// the user accepts.
func (m *ConfirmModal) Show(title, description string, onConfirm func()) {
	m.visible = true
	m.title = title
	m.description = description
	m.onConfirm = onConfirm
}

// Hide dismisses the modal without running the action.
func (m *ConfirmModal) Hide() {
	m.visible = false
	m.onConfirm = nil
}

// IsVisible returns whether the modal is shown
func (m ConfirmModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, confirmed).
func (m *ConfirmModal) HandleKey(key string) (handled bool, confirmed bool) {
	if !m.visible {
		return false, false
	}

	switch key {
	case "y", "Y", "enter":
		action := m.onConfirm
		m.Hide()
		if action != nil {
			action()
		}
		return true, true
	case "n", "N", "esc":
		m.Hide()
		return true, false
	}

	return true, false // consume all keys when visible
}

// View renders the confirm modal
func (m ConfirmModal) View(st styles.Styles) string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(st.ModalTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render(m.description))
	b.WriteString("\n\n")
	b.WriteString(st.HelpKey.Render("y") + st.HelpDesc.Render(" confirm"))
	b.WriteString("   ")
	b.WriteString(st.HelpKey.Render("n") + st.HelpDesc.Render(" cancel"))

	content := lipgloss.NewStyle().Width(44).Render(b.String())
	return st.Modal.Render(content)
}
