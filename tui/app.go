package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/domain"
	"github.com/Anime-Verse-backend/AnimeVerse/tui/browse"
	"github.com/Anime-Verse-backend/AnimeVerse/tui/common"
	"github.com/Anime-Verse-backend/AnimeVerse/tui/thread"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Comments  app.CommentService
	Catalog   app.CatalogService
	Recommend app.RecommendService
	Account   app.AccountService
	Store     app.Store
	Poll      time.Duration // staff channel refresh cadence
}

type activeView int

const (
	browseView activeView = iota
	threadView
)

// viewerMsg carries the logged-in user, fetched once at startup. A
// failure is not fatal: browsing works anonymously, the viewer just
// cannot comment or moderate.
type viewerMsg struct {
	User domain.User
	Err  error
}

// App is the root Bubble Tea model. It routes between the catalog and
// whichever thread view is open.
type App struct {
	deps   Deps
	active activeView
	browse browse.Model
	thread thread.Model
	viewer domain.User
	keys   common.KeyMap
	status string
	width  int
	height int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: browseView,
		browse: browse.New(deps.Catalog, deps.Recommend, deps.Store),
		keys:   common.DefaultKeyMap(),
	}
}

// Init starts the catalog fetch and resolves the current user.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.browse.Init(), a.initViewer())
}

func (a App) initViewer() tea.Cmd {
	return func() tea.Msg {
		user, err := a.deps.Account.CurrentUser(context.Background())
		return viewerMsg{User: user, Err: err}
	}
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Both sub-models track the size so switching views never
		// renders at a stale width.
		a.browse, _ = a.browse.Update(msg)
		a.thread, _ = a.thread.Update(msg)
		return a, nil

	case viewerMsg:
		if msg.Err != nil {
			a.status = "Browsing anonymously. Run `animeverse login` to comment."
			return a, nil
		}
		a.viewer = msg.User
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.active == browseView && !a.browse.Searching() {
			if key.Matches(msg, a.keys.Quit) {
				return a, tea.Quit
			}
			if key.Matches(msg, a.keys.StaffChat) {
				return a.openStaffChat()
			}
		}

	case browse.OpenThreadMsg:
		return a.openThread(msg.Entity, msg.Title, 0)

	case browse.BackMsg:
		return a, tea.Quit

	case thread.BackMsg:
		a.active = browseView
		a.status = ""
		return a, nil
	}

	switch a.active {
	case browseView:
		updated, cmd := a.browse.Update(msg)
		a.browse = updated
		return a, cmd
	case threadView:
		updated, cmd := a.thread.Update(msg)
		a.thread = updated
		return a, cmd
	}

	return a, nil
}

func (a App) openStaffChat() (tea.Model, tea.Cmd) {
	if !domain.IsPrivileged(a.viewer.Role) {
		a.status = "Staff chat is staff-only."
		return a, nil
	}
	return a.openThread(app.Entity{Kind: app.KindStaffChat}, "Staff chat", a.deps.Poll)
}

func (a App) openThread(entity app.Entity, title string, poll time.Duration) (tea.Model, tea.Cmd) {
	a.active = threadView
	a.status = ""
	a.thread = thread.New(a.deps.Comments, entity, title, a.viewer, poll)
	a.thread, _ = a.thread.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	return a, a.thread.Init()
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch a.active {
	case browseView:
		s = a.browse.View()
	case threadView:
		s = a.thread.View()
	}

	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render("  "+a.status)
	}

	return s
}
