package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/reelpick/reelpick/internal/catalog"
	"github.com/reelpick/reelpick/internal/domain"
	"github.com/reelpick/reelpick/internal/tui/styles"
)

// Form fields in display order. The find button is part of the cursor
// cycle so enter on it submits.
const (
	FieldGenre = iota
	FieldDuration
	FieldRating
	FieldYear
	FieldLanguage
	FieldFind
	fieldCount
)

// FilterForm is the criteria editor. It never recomputes results
// itself; adjusting a field only mutates the criteria, and the caller
// decides when a search actually runs.
type FilterForm struct {
	cursor int
	width  int
}

// SetSize updates the available width.
func (f *FilterForm) SetSize(width int) {
	f.width = width
}

// Cursor returns the focused field.
func (f FilterForm) Cursor() int {
	return f.cursor
}

// Move shifts focus by delta, clamped to the field range.
func (f *FilterForm) Move(delta int) {
	f.cursor += delta
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor > fieldCount-1 {
		f.cursor = fieldCount - 1
	}
}

// OnFind reports whether focus is on the find button.
func (f FilterForm) OnFind() bool {
	return f.cursor == FieldFind
}

// Adjust steps or cycles the focused field by delta (-1 or +1).
func (f FilterForm) Adjust(c *domain.Criteria, delta int) {
	switch f.cursor {
	case FieldGenre:
		options := append([]string{domain.GenreAny}, catalog.Genres...)
		c.Genre = cycleString(options, c.Genre, delta)
	case FieldDuration:
		c.MaxDuration = clampInt(c.MaxDuration+delta*domain.TimeStep, domain.MinAvailableTime, domain.MaxAvailableTime)
	case FieldRating:
		next := math.Round((c.MinRating+float64(delta)*domain.RatingStep)*10) / 10
		c.MinRating = clampFloat(next, domain.MinRatingFloor, domain.MinRatingCeil)
	case FieldYear:
		c.YearBucket = cycleBucket(catalog.YearBuckets, c.YearBucket, delta)
	case FieldLanguage:
		c.Language = cycleString(catalog.Languages, c.Language, delta)
	}
}

// View renders the form with the focused field highlighted.
func (f FilterForm) View(st styles.Styles, c domain.Criteria, focused bool) string {
	genre := c.Genre
	if genre == domain.GenreAny {
		genre = "Any"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Genre", genre},
		{"Available time", fmt.Sprintf("%d min", c.MaxDuration)},
		{"Minimum rating", fmt.Sprintf("%.1f", c.MinRating)},
		{"Release period", c.YearBucket.Label()},
		{"Language", c.Language},
	}

	var b strings.Builder
	for i, row := range rows {
		label := styles.Pad(row.label, 16)
		value := "‹ " + row.value + " ›"
		if focused && i == f.cursor {
			b.WriteString(st.FieldFocused.Render("▸ " + label + value))
		} else {
			b.WriteString("  " + st.FieldLabel.Render(label) + st.FieldValue.Render(value))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	find := " Find Movies "
	if focused && f.cursor == FieldFind {
		b.WriteString("  " + st.ActiveTab.Render(find))
	} else {
		b.WriteString("  " + st.InactiveTab.Render(find))
	}
	b.WriteString("  " + st.Dim.Render("sorted by "+c.SortKey.Label()))

	return b.String()
}

func cycleString(options []string, current string, delta int) string {
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

func cycleBucket(options []domain.YearBucket, current domain.YearBucket, delta int) domain.YearBucket {
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
