package components

import (
	"fmt"
	"strings"

	"github.com/reelpick/reelpick/internal/recommend"
	"github.com/reelpick/reelpick/internal/tui/styles"
)

// PaginationBar renders the page controls: previous arrow, a sliding
// window of page numbers, next arrow. Arrows dim out at the edges.
func PaginationBar(st styles.Styles, current, totalPages int) string {
	if totalPages <= 1 {
		return ""
	}

	var b strings.Builder

	if current > 1 {
		b.WriteString(st.PageNumber.Render("‹"))
	} else {
		b.WriteString(st.PageDisabled.Render("‹"))
	}

	for _, n := range recommend.PageNumbers(totalPages, current) {
		label := fmt.Sprintf("%d", n)
		if n == current {
			b.WriteString(st.PageCurrent.Render(label))
		} else {
			b.WriteString(st.PageNumber.Render(label))
		}
	}

	if current < totalPages {
		b.WriteString(st.PageNumber.Render("›"))
	} else {
		b.WriteString(st.PageDisabled.Render("›"))
	}

	b.WriteString("  ")
	b.WriteString(st.Dim.Render(fmt.Sprintf("page %d of %d", current, totalPages)))

	return b.String()
}
