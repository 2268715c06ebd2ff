package thread

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/infra/animeverse"
)

func (m Model) fetchForest(reqSeq int) tea.Cmd {
	comments := m.comments
	entity := m.entity
	return func() tea.Msg {
		forest, err := comments.List(context.Background(), entity)
		if err != nil {
			return ForestErrorMsg{EntityKey: entity.Key(), ReqSeq: reqSeq, Err: err}
		}
		return ForestLoadedMsg{EntityKey: entity.Key(), ReqSeq: reqSeq, Forest: forest}
	}
}

func (m Model) submitNew(text, parentID, attachment string) tea.Cmd {
	comments := m.comments
	entity := m.entity
	return func() tea.Msg {
		draft := app.NewComment{Text: text, ParentID: parentID}
		if attachment != "" {
			media, err := animeverse.EncodeMediaFile(attachment)
			if err != nil {
				return PostResultMsg{EntityKey: entity.Key(), ParentID: parentID, Err: err}
			}
			draft.MediaBase64 = media
		}
		c, err := comments.Post(context.Background(), entity, draft)
		return PostResultMsg{EntityKey: entity.Key(), ParentID: parentID, Comment: c, Err: err}
	}
}

func (m Model) submitEdit(id, text string) tea.Cmd {
	comments := m.comments
	entity := m.entity
	return func() tea.Msg {
		c, err := comments.Edit(context.Background(), entity, id, text)
		return EditResultMsg{EntityKey: entity.Key(), ID: id, Comment: c, Err: err}
	}
}

func (m Model) submitDelete(id string) tea.Cmd {
	comments := m.comments
	entity := m.entity
	return func() tea.Msg {
		err := comments.Delete(context.Background(), entity, id)
		return DeleteResultMsg{EntityKey: entity.Key(), ID: id, Err: err}
	}
}

func (m Model) schedulePoll() tea.Cmd {
	entityKey := m.entity.Key()
	return tea.Tick(m.poll, func(time.Time) tea.Msg {
		return pollTickMsg{EntityKey: entityKey}
	})
}
