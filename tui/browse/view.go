package browse

import (
	"fmt"
	"strings"

	"github.com/Anime-Verse-backend/AnimeVerse/tui/common"
)

// View renders either the catalog list or the series detail.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("AnimeVerse"))
	if m.screen == screenDetail {
		b.WriteString(common.TaglineStyle.Render(m.anime.Title))
	} else {
		b.WriteString(common.TaglineStyle.Render("catalog"))
	}
	b.WriteString("\n\n")

	if m.screen == screenDetail {
		m.renderDetail(&b)
	} else {
		m.renderList(&b)
	}

	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render(m.hints()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderList(b *strings.Builder) {
	if m.searching {
		b.WriteString("  Search: " + m.search.View() + "\n\n")
	} else if m.query != "" {
		b.WriteString(common.TimestampStyle.Render("  Filter: "+m.query) + "\n\n")
	}

	switch {
	case m.loading:
		fmt.Fprintf(b, "  %s loading catalog...\n", m.spinner.View())
		return
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  Error: "+m.err.Error()) + "\n")
		return
	case len(m.animes) == 0:
		b.WriteString(common.TimestampStyle.Render("  No titles found.") + "\n")
		return
	}

	for i, a := range m.animes {
		line := a.Title
		if a.Rating != "" {
			line += common.TimestampStyle.Render("  ★ " + a.Rating)
		}
		if a.Status != "" {
			line += common.TimestampStyle.Render("  " + a.Status)
		}
		line = common.TruncateLine(line, max(m.width-6, 40))
		if i == m.cursor {
			b.WriteString(common.SelectedStyle.Render(line))
		} else {
			b.WriteString(common.UnselectedStyle.Render(line))
		}
		b.WriteString("\n")
	}
}

func (m Model) renderDetail(b *strings.Builder) {
	switch {
	case m.loading:
		fmt.Fprintf(b, "  %s loading %s...\n", m.spinner.View(), m.anime.Title)
		return
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  Error: "+m.err.Error()) + "\n")
		return
	}

	if m.anime.Description != "" {
		desc := common.TruncateLine(m.anime.Description, max(m.width-6, 40))
		b.WriteString(common.ContentStyle.Render("  "+desc) + "\n")
	}
	if len(m.anime.Genres) > 0 {
		b.WriteString(common.TimestampStyle.Render("  "+strings.Join(m.anime.Genres, " · ")) + "\n")
	}
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(common.TimestampStyle.Render("  No episodes listed.") + "\n")
	}
	for i, r := range m.rows {
		var line string
		if r.episode == nil {
			line = common.AuthorStyle.Render(r.label)
		} else {
			line = "  " + r.label
			if r.episode.Duration > 0 {
				line += common.TimestampStyle.Render(fmt.Sprintf("  %dm", r.episode.Duration))
			}
			if m.hasBookmark && r.episode.ID == m.bookmark.EpisodeID {
				line += common.SuccessStyle.Render("  ● continue watching")
			}
		}
		if i == m.detailIdx {
			b.WriteString(common.SelectedStyle.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if len(m.related) > 0 {
		b.WriteString("\n" + common.AuthorStyle.Render("  Related") + "\n")
		for _, a := range m.related {
			b.WriteString(common.TimestampStyle.Render("  · "+a.Title) + "\n")
		}
	}
}

func (m Model) hints() string {
	if m.searching {
		return "  enter: apply • esc: cancel"
	}
	if m.screen == screenDetail {
		return "  ↑/↓: move • enter: episode thread • c: series comments • R: refresh • esc: back"
	}
	return "  ↑/↓: move • enter: open • /: search • c: comments • S: staff chat • q: quit"
}
