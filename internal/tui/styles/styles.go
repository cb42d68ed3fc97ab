package styles

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette. Two are shipped, light and dark,
// and the rest of the styles are derived from whichever is active.
type Theme struct {
	Name string

	Amber      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Dim        lipgloss.Color
	Green      lipgloss.Color
	Red        lipgloss.Color
}

func Dark() Theme {
	return Theme{
		Name:       "dark",
		Amber:      lipgloss.Color("#E5A00D"),
		Background: lipgloss.Color("#1F2937"),
		Surface:    lipgloss.Color("#374151"),
		Text:       lipgloss.Color("#F9FAFB"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Dim:        lipgloss.Color("#6B7280"),
		Green:      lipgloss.Color("#10B981"),
		Red:        lipgloss.Color("#EF4444"),
	}
}

func Light() Theme {
	return Theme{
		Name:       "light",
		Amber:      lipgloss.Color("#B45309"),
		Background: lipgloss.Color("#F9FAFB"),
		Surface:    lipgloss.Color("#E5E7EB"),
		Text:       lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#4B5563"),
		Dim:        lipgloss.Color("#9CA3AF"),
		Green:      lipgloss.Color("#047857"),
		Red:        lipgloss.Color("#B91C1C"),
	}
}

// Styles holds every rendered style for one theme. Rebuilt wholesale
// when the user toggles themes.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style
	FocusedItem  lipgloss.Style

	FieldLabel   lipgloss.Style
	FieldValue   lipgloss.Style
	FieldFocused lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	Toast       lipgloss.Style
	ToastTitle  lipgloss.Style
	ToastAction lipgloss.Style

	PageCurrent  lipgloss.Style
	PageNumber   lipgloss.Style
	PageDisabled lipgloss.Style

	Badge    lipgloss.Style
	DimBadge lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	MatchHighlight         lipgloss.Style
	MatchHighlightSelected lipgloss.Style

	FilterPrompt lipgloss.Style
}

// New derives the full style set from a theme.
func New(t Theme) Styles {
	return Styles{
		Theme: t,

		Title:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.Muted),
		Dim:      lipgloss.NewStyle().Foreground(t.Dim),
		Accent:   lipgloss.NewStyle().Foreground(t.Amber),
		Error:    lipgloss.NewStyle().Foreground(t.Red),
		Success:  lipgloss.NewStyle().Foreground(t.Green),

		ActiveTab: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Amber).
			Bold(true).
			Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 2),

		SelectedItem: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),
		NormalItem: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),
		FocusedItem: lipgloss.NewStyle().
			Foreground(t.Amber).
			Bold(true).
			Padding(0, 1),

		FieldLabel: lipgloss.NewStyle().Foreground(t.Muted),
		FieldValue: lipgloss.NewStyle().Foreground(t.Text),
		FieldFocused: lipgloss.NewStyle().
			Foreground(t.Amber).
			Bold(true),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Amber).
			Padding(1, 2).
			Background(t.Background),
		ModalTitle: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true).
			MarginBottom(1),

		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Amber).
			Padding(0, 1),
		ToastTitle: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),
		ToastAction: lipgloss.NewStyle().
			Foreground(t.Amber).
			Bold(true),

		PageCurrent: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Amber).
			Bold(true).
			Padding(0, 1),
		PageNumber: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),
		PageDisabled: lipgloss.NewStyle().
			Foreground(t.Dim).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Amber).
			Padding(0, 1),
		DimBadge: lipgloss.NewStyle().
			Foreground(t.Muted).
			Background(t.Surface).
			Padding(0, 1),

		HelpKey:  lipgloss.NewStyle().Foreground(t.Amber),
		HelpDesc: lipgloss.NewStyle().Foreground(t.Dim),

		MatchHighlight: lipgloss.NewStyle().
			Foreground(t.Amber).
			Bold(true),
		MatchHighlightSelected: lipgloss.NewStyle().
			Foreground(t.Amber).
			Background(t.Surface).
			Bold(true),

		FilterPrompt: lipgloss.NewStyle().
			Foreground(t.Amber).
			Bold(true),
	}
}

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		if width > len(s) {
			return s
		}
		return s[:width]
	}
	return s[:width-3] + "..."
}

// Pad pads a string to the given width
func Pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + Spaces(width-len(s))
}

func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
