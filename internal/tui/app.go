package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelpick/reelpick/internal/catalog"
	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/domain"
	"github.com/reelpick/reelpick/internal/recommend"
	"github.com/reelpick/reelpick/internal/search"
	"github.com/reelpick/reelpick/internal/session"
	"github.com/reelpick/reelpick/internal/share"
	"github.com/reelpick/reelpick/internal/tui/components"
	"github.com/reelpick/reelpick/internal/tui/styles"
	"github.com/reelpick/reelpick/internal/watchlist"
)

// focusZone identifies which part of the recommendations view receives
// navigation keys.
type focusZone int

const (
	focusForm focusZone = iota
	focusResults
)

// Model is the main Bubble Tea model for the application
type Model struct {
	Session *session.Session

	// Boundary adapters owned by the UI. Services write into these and
	// the update loop drains them each cycle.
	notifier  *notifySink
	confirmer *confirmQueue

	Styles styles.Styles

	// Components
	Form      components.FilterForm
	Results   components.MovieList
	Watchlist components.MovieList
	Omnibar   components.Omnibar
	SortModal components.SortModal
	Confirm   components.ConfirmModal
	Toast     components.Toast

	focus  focusZone
	Width  int
	Height int

	logger *slog.Logger
}

// NewModel wires the core services to the UI. The notifier and confirmer
// are UI-owned, so the watchlist, sharer and session are built here.
func NewModel(movies []domain.Movie, cfg *config.Config, logger *slog.Logger) Model {
	sink := &notifySink{}
	confirmer := &confirmQueue{}

	wl := watchlist.NewService(sink, logger)
	sharer := share.NewSharer(share.SystemClipboard{}, sink, logger)
	sess := session.New(movies, wl, sharer, sink, confirmer, logger)
	sess.DarkMode = cfg.UI.Theme == "dark"

	theme := styles.Light()
	if sess.DarkMode {
		theme = styles.Dark()
	}

	return Model{
		Session:   sess,
		notifier:  sink,
		confirmer: confirmer,
		Styles:    styles.New(theme),
		Omnibar:   components.NewOmnibar(search.NewIndex(movies)),
		SortModal: components.NewSortModal(catalog.SortKeys),
		Confirm:   components.NewConfirmModal(),
		logger:    logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.Omnibar.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Omnibar.SetSize(msg.Width, msg.Height)
		m.Form.SetSize(msg.Width)
		m.Results.SetSize(msg.Width)
		m.Watchlist.SetSize(msg.Width)
		return m, nil

	case ClearToastMsg:
		m.Toast.Expire(msg.Seq)
		return m, nil

	case ShareDoneMsg:
		return m, m.flush()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Remaining messages belong to the text input.
	var cmd tea.Cmd
	m.Omnibar, cmd, _ = m.Omnibar.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Modals swallow keys while visible.
	if handled, _ := m.Confirm.HandleKey(keyStr); handled {
		return m, m.flush()
	}
	if m.SortModal.IsVisible() {
		if handled, selection := m.SortModal.HandleKey(keyStr); handled {
			if selection != nil {
				m.Session.Criteria.SortKey = *selection
			}
			return m, nil
		}
	}
	if m.Omnibar.IsVisible() {
		var cmd tea.Cmd
		var selected bool
		m.Omnibar, cmd, selected = m.Omnibar.Update(msg)
		if selected {
			if movie := m.Omnibar.SelectedMovie(); movie != nil {
				m.Omnibar.Hide()
				m.jumpTo(*movie)
				return m, m.flush()
			}
		}
		return m, cmd
	}

	// Global keys.
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Theme):
		m.applyTheme(m.Session.ToggleDarkMode())
		return m, nil
	case key.Matches(msg, Keys.SwitchTab):
		m.switchTab()
		return m, nil
	case key.Matches(msg, Keys.Search):
		m.Omnibar.Show()
		return m, m.Omnibar.Init()
	case key.Matches(msg, Keys.Sort):
		m.SortModal.Show(m.Session.Criteria.SortKey)
		return m, nil
	case key.Matches(msg, Keys.UndoAction):
		m.Toast.InvokeAction()
		return m, m.flush()
	}

	switch m.Session.ActiveTab {
	case session.TabRecommendations:
		return m.handleRecommendationsKey(msg)
	case session.TabWatchlist:
		return m.handleWatchlistKey(msg)
	}
	return m, nil
}

func (m Model) handleRecommendationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusForm {
		switch {
		case key.Matches(msg, Keys.Down):
			m.Form.Move(1)
		case key.Matches(msg, Keys.Up):
			m.Form.Move(-1)
		case key.Matches(msg, Keys.Left):
			m.Form.Adjust(&m.Session.Criteria, -1)
		case key.Matches(msg, Keys.Right):
			m.Form.Adjust(&m.Session.Criteria, 1)
		case key.Matches(msg, Keys.ClearFilters):
			m.Session.ClearFilters()
			return m, m.flush()
		case key.Matches(msg, Keys.Enter):
			m.Session.FindMovies()
			m.Results.SetCursor(0, 0)
			if len(m.Session.Results) > 0 {
				m.focus = focusResults
			}
			return m, m.flush()
		}
		return m, nil
	}

	page, _ := m.Session.CurrentPage()

	switch {
	case key.Matches(msg, Keys.Escape):
		m.focus = focusForm
	case key.Matches(msg, Keys.Down):
		m.Results.Move(1, len(page))
	case key.Matches(msg, Keys.Up):
		m.Results.Move(-1, len(page))
	case key.Matches(msg, Keys.PrevPage), key.Matches(msg, Keys.Left):
		if m.Session.ChangePage(m.Session.Page - 1) {
			m.Results.SetCursor(0, 0)
		}
	case key.Matches(msg, Keys.NextPage), key.Matches(msg, Keys.Right):
		if m.Session.ChangePage(m.Session.Page + 1) {
			m.Results.SetCursor(0, 0)
		}
	case key.Matches(msg, Keys.ClearFilters):
		m.Session.ClearFilters()
		return m, m.flush()
	case key.Matches(msg, Keys.Bookmark), key.Matches(msg, Keys.Enter):
		if sel := m.Results.Selected(page); sel != nil {
			m.Session.ToggleWatchlist(*sel)
			return m, m.flush()
		}
	case key.Matches(msg, Keys.Share):
		if sel := m.Results.Selected(page); sel != nil {
			return m, ShareCmd(m.Session, *sel)
		}
	}
	return m, nil
}

func (m Model) handleWatchlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.Session.Watchlist().Movies()

	switch {
	case key.Matches(msg, Keys.Down):
		m.Watchlist.Move(1, len(items))
	case key.Matches(msg, Keys.Up):
		m.Watchlist.Move(-1, len(items))
	case key.Matches(msg, Keys.Remove), key.Matches(msg, Keys.Bookmark):
		if sel := m.Watchlist.Selected(items); sel != nil {
			m.Session.RequestWatchlistRemoval(*sel)
			return m, m.flush()
		}
	case key.Matches(msg, Keys.Share):
		if sel := m.Watchlist.Selected(items); sel != nil {
			return m, ShareCmd(m.Session, *sel)
		}
	}
	return m, nil
}

// switchTab flips the active tab and resets the inactive cursor.
func (m *Model) switchTab() {
	if m.Session.ActiveTab == session.TabRecommendations {
		m.Session.SwitchTab(session.TabWatchlist)
		m.Watchlist.SetCursor(0, m.Session.Watchlist().Len())
	} else {
		m.Session.SwitchTab(session.TabRecommendations)
	}
}

// jumpTo moves the cursor to the given movie when it is in the current
// results, paging as needed. Otherwise it explains why it cannot.
func (m *Model) jumpTo(movie domain.Movie) {
	for i, r := range m.Session.Results {
		if r.ID == movie.ID {
			m.Session.SwitchTab(session.TabRecommendations)
			m.Session.ChangePage(i/recommend.PageSize + 1)
			m.Results.SetCursor(i%recommend.PageSize, recommend.PageSize)
			m.focus = focusResults
			return
		}
	}
	m.notifier.Notify(domain.Notification{
		Title:       movie.Title,
		Description: "Not in the current results. Adjust your filters and search again.",
	})
}

// applyTheme rebuilds the style set for the new mode.
func (m *Model) applyTheme(dark bool) {
	if dark {
		m.Styles = styles.New(styles.Dark())
	} else {
		m.Styles = styles.New(styles.Light())
	}
}

// flush surfaces pending confirmations and notifications produced by
// the last service call. The newest notification wins the toast slot.
func (m *Model) flush() tea.Cmd {
	if req := m.confirmer.take(); req != nil {
		m.Confirm.Show(req.title, req.description, req.onConfirm)
	}

	pending := m.notifier.drain()
	if len(pending) == 0 {
		return nil
	}
	seq := m.Toast.Show(pending[len(pending)-1])
	return ClearToastCmd(seq)
}
