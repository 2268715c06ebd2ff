package browse

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.searching {
		return m.updateSearchKey(msg)
	}
	if m.screen == screenDetail {
		return m.updateDetailKey(msg)
	}
	return m.updateListKey(msg)
}

func (m Model) updateListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.query != "" {
			// First esc clears the active filter.
			m.query = ""
			m.search.SetValue("")
			m.loading = true
			m.reqSeq++
			return m, m.fetchCatalog(m.reqSeq)
		}
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.reqSeq++
		return m, m.fetchCatalog(m.reqSeq)

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.animes)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		a, ok := m.selectedAnime()
		if !ok {
			break
		}
		return m.openDetail(a.ID, a.Title)

	case key.Matches(msg, m.keys.Comments):
		a, ok := m.selectedAnime()
		if !ok {
			break
		}
		return m, openThread(app.Entity{Kind: app.KindAnime, ID: a.ID}, a.Title)
	}

	return m, nil
}

func (m Model) updateSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.query = strings.TrimSpace(m.search.Value())
		m.loading = true
		m.cursor = 0
		m.reqSeq++
		return m, m.fetchCatalog(m.reqSeq)

	case "esc":
		m.searching = false
		m.search.SetValue(m.query)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenList
		m.err = nil
		m.related = nil
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.fetchDetail(m.anime.ID), m.fetchRelated(m.anime.ID))

	case key.Matches(msg, m.keys.Up):
		if m.detailIdx > 0 {
			m.detailIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.detailIdx < len(m.rows)-1 {
			m.detailIdx++
		}

	case key.Matches(msg, m.keys.Comments):
		return m, openThread(app.Entity{Kind: app.KindAnime, ID: m.anime.ID}, m.anime.Title)

	case key.Matches(msg, m.keys.Enter):
		if m.detailIdx >= len(m.rows) {
			break
		}
		r := m.rows[m.detailIdx]
		if r.episode == nil {
			break
		}
		// Remember where the viewer left off, then open the episode
		// thread. A failed save is not worth blocking navigation over.
		_ = app.SaveBookmark(m.store, m.anime.ID, app.Bookmark{
			SeasonID:  r.seasonID,
			EpisodeID: r.episode.ID,
			SavedAt:   time.Now().UTC(),
		})
		title := m.anime.Title + " · " + r.episode.Title
		return m, openThread(app.Entity{Kind: app.KindEpisode, ID: r.episode.ID}, title)
	}

	return m, nil
}

// openDetail switches to the detail screen and starts its fetches.
// Title and ID are shown immediately from the summary while the full
// record loads.
func (m Model) openDetail(id, title string) (Model, tea.Cmd) {
	m.screen = screenDetail
	m.loading = true
	m.err = nil
	m.anime = domain.Anime{AnimeSummary: domain.AnimeSummary{ID: id, Title: title}}
	m.rows = nil
	m.related = nil
	m.hasBookmark = false
	return m, tea.Batch(m.fetchDetail(id), m.fetchRelated(id))
}

func openThread(entity app.Entity, title string) tea.Cmd {
	return func() tea.Msg {
		return OpenThreadMsg{Entity: entity, Title: title}
	}
}
