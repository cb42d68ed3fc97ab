package components

import (
	"fmt"
	"strings"

	"github.com/reelpick/reelpick/internal/domain"
	"github.com/reelpick/reelpick/internal/tui/styles"
)

// MovieList renders a page of movies with a cursor and an inspector
// block for the selected one. It holds no data of its own; callers pass
// the current page each frame.
type MovieList struct {
	cursor int
	width  int
}

// SetSize updates the available width.
func (l *MovieList) SetSize(width int) {
	l.width = width
}

// Cursor returns the selected row index.
func (l MovieList) Cursor() int {
	return l.cursor
}

// SetCursor moves the cursor, clamped to the item count.
func (l *MovieList) SetCursor(cursor, count int) {
	if cursor < 0 {
		cursor = 0
	}
	if count > 0 && cursor > count-1 {
		cursor = count - 1
	}
	l.cursor = cursor
}

// Move shifts the cursor by delta within the item count.
func (l *MovieList) Move(delta, count int) {
	l.SetCursor(l.cursor+delta, count)
}

// Selected returns the movie under the cursor, nil when the page is empty.
func (l MovieList) Selected(items []domain.Movie) *domain.Movie {
	if len(items) == 0 || l.cursor >= len(items) {
		return nil
	}
	return &items[l.cursor]
}

// View renders the page rows plus the inspector for the selection.
// bookmarked reports watchlist membership for the row marker.
func (l MovieList) View(st styles.Styles, items []domain.Movie, focused bool, bookmarked func(id int) bool) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i, m := range items {
		b.WriteString(l.renderRow(st, m, focused && i == l.cursor, bookmarked(m.ID)))
		b.WriteString("\n")
	}

	if sel := l.Selected(items); sel != nil && focused {
		b.WriteString("\n")
		b.WriteString(l.renderInspector(st, *sel))
	}

	return b.String()
}

func (l MovieList) renderRow(st styles.Styles, m domain.Movie, selected, bookmarked bool) string {
	marker := "  "
	if bookmarked {
		marker = st.Accent.Render("♥ ")
	}

	title := styles.Truncate(m.Title, l.width-40)
	meta := fmt.Sprintf("  %.1f★  %s  %d  %s", m.Rating, m.Genre, m.Year, m.FormattedDuration())

	rowStyle := st.NormalItem
	if selected {
		rowStyle = st.SelectedItem
	}

	return marker + rowStyle.Render(title) + st.Dim.Render(meta)
}

func (l MovieList) renderInspector(st styles.Styles, m domain.Movie) string {
	wrap := l.width - 4
	if wrap < 20 {
		wrap = 20
	}

	var b strings.Builder
	b.WriteString(st.Title.Render(m.Title))
	b.WriteString(st.Dim.Render(fmt.Sprintf("  (%d)", m.Year)))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render("Directed by " + m.Director))
	b.WriteString("\n")
	b.WriteString(st.Dim.Render(strings.Join(m.Languages, ", ")))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render(styles.Truncate(m.Description, wrap*2)))
	if len(m.Cast) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Dim.Render("Cast: " + styles.Truncate(strings.Join(m.Cast, ", "), wrap)))
	}
	return b.String()
}
