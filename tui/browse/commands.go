package browse

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) fetchCatalog(reqSeq int) tea.Cmd {
	catalog, query := m.catalog, m.query
	return func() tea.Msg {
		animes, err := catalog.Animes(context.Background(), query)
		if err != nil {
			return CatalogErrorMsg{ReqSeq: reqSeq, Err: err}
		}
		return CatalogLoadedMsg{ReqSeq: reqSeq, Animes: animes}
	}
}

func (m Model) fetchDetail(id string) tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		anime, err := catalog.Anime(context.Background(), id)
		if err != nil {
			return DetailErrorMsg{AnimeID: id, Err: err}
		}
		return DetailLoadedMsg{AnimeID: id, Anime: anime}
	}
}

func (m Model) fetchRelated(id string) tea.Cmd {
	recommend := m.recommend
	return func() tea.Msg {
		animes, err := recommend.Related(context.Background(), id)
		if err != nil {
			// Recommendations are decoration; the detail pane just
			// renders without them.
			return RelatedLoadedMsg{AnimeID: id}
		}
		return RelatedLoadedMsg{AnimeID: id, Animes: animes}
	}
}
