package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/reelpick/reelpick/internal/domain"
	"github.com/reelpick/reelpick/internal/search"
	"github.com/reelpick/reelpick/internal/tui/styles"
)

// Omnibar is the fuzzy title-search modal. It searches the whole
// catalog as the user types and jumps to the selected movie.
type Omnibar struct {
	input     textinput.Model
	index     *search.Index
	results   []search.Result
	cursor    int
	visible   bool
	width     int
	height    int
	prevQuery string
}

// NewOmnibar creates an omnibar backed by the given search index.
func NewOmnibar(index *search.Index) Omnibar {
	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "

	return Omnibar{
		input: ti,
		index: index,
	}
}

// Show makes the omnibar visible and focuses the input
func (o *Omnibar) Show() {
	o.visible = true
	o.input.Focus()
	o.input.SetValue("")
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
}

// Hide hides the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the omnibar is visible
func (o Omnibar) IsVisible() bool {
	return o.visible
}

// SetSize updates the component dimensions
func (o *Omnibar) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = width - 10
}

// SelectedMovie returns the movie under the cursor, nil when there is none.
func (o Omnibar) SelectedMovie() *domain.Movie {
	if len(o.results) == 0 || o.cursor >= len(o.results) {
		return nil
	}
	return &o.results[o.cursor].Movie
}

// Init initializes the component
func (o Omnibar) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. The bool result reports that the user
// selected a result.
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd, bool) {
	if !o.visible {
		return o, nil, false
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			o.Hide()
			return o, nil, false

		case "enter":
			if len(o.results) > 0 {
				return o, nil, true
			}
			return o, nil, false

		case "down", "ctrl+n":
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, false

		case "up", "ctrl+p":
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, false

		default:
			o.input, cmd = o.input.Update(msg)
			o.refresh()
			return o, cmd, false
		}
	}

	o.input, cmd = o.input.Update(msg)
	o.refresh()
	return o, cmd, false
}

func (o *Omnibar) refresh() {
	query := o.input.Value()
	if query == o.prevQuery {
		return
	}
	o.prevQuery = query
	o.results = o.index.Search(query)
	o.cursor = 0
}

// View renders the component
func (o Omnibar) View(st styles.Styles) string {
	if !o.visible {
		return ""
	}

	modalWidth := o.width * 2 / 3
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalWidth > 80 {
		modalWidth = 80
	}
	maxResults := 10

	var b strings.Builder
	b.WriteString(o.input.View())
	b.WriteString("\n\n")

	if len(o.results) == 0 && o.input.Value() != "" {
		b.WriteString(st.Dim.Render("No results"))
	} else {
		displayCount := len(o.results)
		if displayCount > maxResults {
			displayCount = maxResults
		}

		for i := 0; i < displayCount; i++ {
			result := o.results[i]
			selected := i == o.cursor
			b.WriteString(o.renderResult(st, result, selected, modalWidth))
			b.WriteString("\n")
		}

		if len(o.results) > maxResults {
			b.WriteString(st.Dim.Render(fmt.Sprintf("... and %d more", len(o.results)-maxResults)))
		}
	}

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	modal := st.Modal.
		Width(modalWidth).
		Render(content)

	return lipgloss.Place(
		o.width,
		o.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

// renderResult renders one result line with the matched runes highlighted.
func (o Omnibar) renderResult(st styles.Styles, r search.Result, selected bool, modalWidth int) string {
	matched := make(map[int]bool, len(r.MatchedIndexes))
	for _, idx := range r.MatchedIndexes {
		matched[idx] = true
	}

	base := st.NormalItem
	highlight := st.MatchHighlight
	if selected {
		base = st.SelectedItem
		highlight = st.MatchHighlightSelected
	}

	var line strings.Builder
	for i, ch := range r.Movie.Title {
		if matched[i] {
			line.WriteString(highlight.Render(string(ch)))
		} else {
			line.WriteString(base.Render(string(ch)))
		}
	}
	line.WriteString(base.Render(fmt.Sprintf(" (%d)", r.Movie.Year)))

	return line.String()
}
