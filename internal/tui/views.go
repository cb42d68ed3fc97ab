package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/reelpick/reelpick/internal/session"
	"github.com/reelpick/reelpick/internal/tui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 {
		return "loading..."
	}

	st := m.Styles

	// Full-screen modals take over the frame.
	if m.Omnibar.IsVisible() {
		return m.Omnibar.View(st)
	}
	if m.SortModal.IsVisible() {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.SortModal.View(st))
	}
	if m.Confirm.IsVisible() {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.Confirm.View(st))
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.Session.ActiveTab {
	case session.TabRecommendations:
		b.WriteString(m.renderRecommendations())
	case session.TabWatchlist:
		b.WriteString(m.renderWatchlist())
	}

	body := b.String()

	footer := m.renderFooter()
	toast := m.Toast.View(st, m.Width)

	bodyHeight := m.Height - lipgloss.Height(footer)
	if toast != "" {
		bodyHeight -= lipgloss.Height(toast)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	if toast != "" {
		return body + "\n" + toast + "\n" + footer
	}
	return body + "\n" + footer
}

func (m Model) renderHeader() string {
	st := m.Styles
	title := st.Accent.Render("🎬 ") + st.Title.Render("Movie Night Picker")
	mode := "light"
	if m.Session.DarkMode {
		mode = "dark"
	}
	right := st.Dim.Render(mode + " · t to toggle")

	gap := m.Width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func (m Model) renderTabs() string {
	st := m.Styles

	recLabel := "Recommendations"
	if m.Session.HasSearched {
		recLabel = fmt.Sprintf("Recommendations (%d)", len(m.Session.Results))
	}
	wlLabel := fmt.Sprintf("My Watchlist (%d)", m.Session.Watchlist().Len())

	if m.Session.ActiveTab == session.TabRecommendations {
		return st.ActiveTab.Render(recLabel) + " " + st.InactiveTab.Render(wlLabel)
	}
	return st.InactiveTab.Render(recLabel) + " " + st.ActiveTab.Render(wlLabel)
}

func (m Model) renderRecommendations() string {
	st := m.Styles
	var b strings.Builder

	b.WriteString(m.Form.View(st, m.Session.Criteria, m.focus == focusForm))
	b.WriteString("\n\n")

	switch {
	case !m.Session.HasSearched:
		b.WriteString(st.Dim.Render("Set your filters and press enter on Find Movies."))

	case len(m.Session.Results) == 0:
		b.WriteString(st.Subtitle.Render("No movies match your criteria."))
		b.WriteString("\n")
		b.WriteString(st.Dim.Render("Try adjusting your filters, or press c to clear them."))

	default:
		page, current := m.Session.CurrentPage()
		wl := m.Session.Watchlist()
		b.WriteString(m.Results.View(st, page, m.focus == focusResults, wl.IsBookmarked))
		b.WriteString("\n")
		b.WriteString(components.PaginationBar(st, current, m.Session.TotalPages()))
	}

	return b.String()
}

func (m Model) renderWatchlist() string {
	st := m.Styles
	items := m.Session.Watchlist().Movies()

	if len(items) == 0 {
		return st.Subtitle.Render("Your watchlist is empty.") + "\n" +
			st.Dim.Render("Bookmark movies from the recommendations with w.")
	}

	return m.Watchlist.View(st, items, true, m.Session.Watchlist().IsBookmarked)
}

func (m Model) renderFooter() string {
	st := m.Styles

	hint := func(k, desc string) string {
		return st.HelpKey.Render(k) + st.HelpDesc.Render(" "+desc)
	}

	var hints []string
	if m.Session.ActiveTab == session.TabRecommendations {
		if m.focus == focusForm {
			hints = []string{
				hint("j/k", "field"), hint("h/l", "adjust"), hint("enter", "find"),
				hint("c", "clear"), hint("s", "sort"), hint("/", "search"),
				hint("tab", "watchlist"), hint("q", "quit"),
			}
		} else {
			hints = []string{
				hint("j/k", "move"), hint("[/]", "page"), hint("w", "watchlist"),
				hint("y", "share"), hint("esc", "filters"), hint("tab", "watchlist"),
				hint("q", "quit"),
			}
		}
	} else {
		hints = []string{
			hint("j/k", "move"), hint("x", "remove"), hint("y", "share"),
			hint("tab", "recommendations"), hint("q", "quit"),
		}
	}

	return st.Dim.Render(" ") + strings.Join(hints, st.Dim.Render("  ·  "))
}
