package components

import (
	"strings"

	"github.com/reelpick/reelpick/internal/domain"
	"github.com/reelpick/reelpick/internal/tui/styles"
)

// SortModal is a small popup for choosing the result ordering.
type SortModal struct {
	visible   bool
	options   []domain.SortKey
	cursor    int
	activeKey domain.SortKey
}

// NewSortModal creates a new sort modal
func NewSortModal(options []domain.SortKey) SortModal {
	return SortModal{options: options}
}

// Show displays the modal with the cursor on the active key.
func (m *SortModal) Show(active domain.SortKey) {
	m.visible = true
	m.activeKey = active
	m.cursor = 0
	for i, opt := range m.options {
		if opt == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice.
func (m *SortModal) HandleKey(key string) (handled bool, selection *domain.SortKey) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return true, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil
	case "enter":
		chosen := m.options[m.cursor]
		m.visible = false
		return true, &chosen
	case "esc", "s":
		m.visible = false
		return true, nil
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View(st styles.Styles) string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		selected := i == m.cursor
		isActive := opt == m.activeKey

		var prefix string
		if isActive {
			prefix = "✓ "
		} else {
			prefix = "  "
		}
		text := styles.Pad(prefix+opt.Label(), 26)

		switch {
		case selected:
			lines = append(lines, st.SelectedItem.Render(text))
		case isActive:
			lines = append(lines, st.Accent.Render(text))
		default:
			lines = append(lines, st.Subtitle.Render(text))
		}
	}

	content := strings.Join(lines, "\n")
	return st.Modal.Render(st.ModalTitle.Render("Sort by") + "\n" + content)
}
