// Package browse renders the anime catalog: the searchable series
// list and the per-series detail with seasons, episodes, and related
// titles. Opening a thread is delegated upward via OpenThreadMsg.
package browse

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/domain"
	"github.com/Anime-Verse-backend/AnimeVerse/tui/common"
)

// CatalogLoadedMsg is sent when a catalog listing completes.
type CatalogLoadedMsg struct {
	ReqSeq int
	Animes []domain.AnimeSummary
}

// CatalogErrorMsg is sent when a catalog listing fails.
type CatalogErrorMsg struct {
	ReqSeq int
	Err    error
}

// DetailLoadedMsg is sent when a series detail fetch completes.
type DetailLoadedMsg struct {
	AnimeID string
	Anime   domain.Anime
}

// DetailErrorMsg is sent when a series detail fetch fails.
type DetailErrorMsg struct {
	AnimeID string
	Err     error
}

// RelatedLoadedMsg carries the recommendation results for a series.
// Failures are dropped silently; the pane is optional.
type RelatedLoadedMsg struct {
	AnimeID string
	Animes  []domain.AnimeSummary
}

// OpenThreadMsg asks the root model to open a comment thread.
type OpenThreadMsg struct {
	Entity app.Entity
	Title  string
}

// BackMsg is sent when the user leaves the catalog entirely.
type BackMsg struct{}

type screen int

const (
	screenList screen = iota
	screenDetail
)

// detailRow is one selectable line in the detail pane: a season
// header or an episode under it.
type detailRow struct {
	seasonID string
	episode  *domain.Episode
	label    string
}

// Model holds the catalog browsing state.
type Model struct {
	catalog   app.CatalogService
	recommend app.RecommendService
	store     app.Store

	screen  screen
	loading bool
	err     error
	reqSeq  int

	animes []domain.AnimeSummary
	cursor int

	searching bool
	search    textinput.Model
	query     string

	anime       domain.Anime
	rows        []detailRow
	detailIdx   int
	related     []domain.AnimeSummary
	bookmark    app.Bookmark
	hasBookmark bool

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates the catalog view.
func New(catalog app.CatalogService, recommend app.RecommendService, store app.Store) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#C678DD"))

	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.CharLimit = 100

	return Model{
		catalog:   catalog,
		recommend: recommend,
		store:     store,
		loading:   true,
		search:    ti,
		keys:      common.DefaultKeyMap(),
		spinner:   s,
	}
}

// Init starts the initial catalog fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCatalog(m.reqSeq), m.spinner.Tick)
}

// Update handles messages for the catalog view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CatalogLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.animes = msg.Animes
		if m.cursor >= len(m.animes) {
			m.cursor = max(len(m.animes)-1, 0)
		}
		return m, nil

	case CatalogErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case DetailLoadedMsg:
		if m.screen != screenDetail || msg.AnimeID != m.anime.ID {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.setDetail(msg.Anime)
		return m, nil

	case DetailErrorMsg:
		if m.screen != screenDetail || msg.AnimeID != m.anime.ID {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case RelatedLoadedMsg:
		if m.screen != screenDetail || msg.AnimeID != m.anime.ID {
			return m, nil
		}
		m.related = msg.Animes
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// setDetail installs a fetched series and rebuilds the selectable
// season and episode rows.
func (m *Model) setDetail(a domain.Anime) {
	m.anime = a
	m.rows = nil
	for _, season := range a.Seasons {
		m.rows = append(m.rows, detailRow{seasonID: season.ID, label: season.Title})
		for i := range season.Episodes {
			ep := &season.Episodes[i]
			m.rows = append(m.rows, detailRow{seasonID: season.ID, episode: ep, label: ep.Title})
		}
	}
	m.detailIdx = 0

	b, ok, err := app.LoadBookmark(m.store, a.ID)
	m.bookmark, m.hasBookmark = b, ok && err == nil
	if m.hasBookmark {
		for i, r := range m.rows {
			if r.episode != nil && r.episode.ID == b.EpisodeID {
				m.detailIdx = i
				break
			}
		}
	}
}

// Searching reports whether the search input has focus, so the root
// model knows not to treat typed letters as global shortcuts.
func (m Model) Searching() bool {
	return m.searching
}

func (m Model) selectedAnime() (domain.AnimeSummary, bool) {
	if len(m.animes) == 0 || m.cursor >= len(m.animes) {
		return domain.AnimeSummary{}, false
	}
	return m.animes[m.cursor], true
}
