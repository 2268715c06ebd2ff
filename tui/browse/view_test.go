package browse

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

func TestViewListShowsRatingAndStatus(t *testing.T) {
	m := New(&stubCatalog{}, &stubRecommend{}, memStore{})
	m.width = 100
	m.height = 40
	m, _ = m.Update(CatalogLoadedMsg{ReqSeq: m.reqSeq, Animes: []domain.AnimeSummary{
		{ID: "a1", Title: "Planetes", Rating: "8.9", Status: "Finished"},
		{ID: "a2", Title: "Mushishi"},
	}})

	out := m.View()
	mustContain := []string{"AnimeVerse", "catalog", "Planetes", "★ 8.9", "Finished", "Mushishi"}
	for _, needle := range mustContain {
		if !strings.Contains(out, needle) {
			t.Fatalf("list view missing %q", needle)
		}
	}
}

func TestViewDetailShowsEpisodesAndRelated(t *testing.T) {
	detail := sampleDetail()
	detail.Description = "Debris collectors in orbit."
	detail.Genres = []string{"Sci-Fi", "Drama"}
	detail.Seasons[0].Episodes[0].Duration = 24

	store := memStore{}
	if err := app.SaveBookmark(store, "a1", app.Bookmark{SeasonID: "s1", EpisodeID: "e1"}); err != nil {
		t.Fatal(err)
	}

	m := New(&stubCatalog{detail: detail}, &stubRecommend{}, store)
	m.width = 100
	m.height = 40
	m, _ = m.Update(CatalogLoadedMsg{ReqSeq: m.reqSeq, Animes: []domain.AnimeSummary{{ID: "a1", Title: "Planetes"}}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(DetailLoadedMsg{AnimeID: "a1", Anime: detail})
	m, _ = m.Update(RelatedLoadedMsg{AnimeID: "a1", Animes: []domain.AnimeSummary{{ID: "a2", Title: "Space Brothers"}}})

	out := m.View()
	mustContain := []string{
		"Debris collectors in orbit.",
		"Sci-Fi",
		"Season 1",
		"Outside the Atmosphere",
		"24m",
		"continue watching",
		"Related",
		"Space Brothers",
	}
	for _, needle := range mustContain {
		if !strings.Contains(out, needle) {
			t.Fatalf("detail view missing %q", needle)
		}
	}
}

func TestViewSurfacesErrors(t *testing.T) {
	m := New(&stubCatalog{}, &stubRecommend{}, memStore{})
	m.width = 100
	m.height = 40
	m, _ = m.Update(CatalogErrorMsg{ReqSeq: m.reqSeq, Err: errors.New("boom")})

	if !strings.Contains(m.View(), "boom") {
		t.Fatalf("list view should surface the fetch error")
	}
}
