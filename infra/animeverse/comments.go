package animeverse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

// commentService implements app.CommentService against the three
// AnimeVerse comment route families. One implementation serves anime
// comments, episode comments, and the staff channel; only the paths
// differ.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by the AnimeVerse API.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

// collectionPath returns the comment-collection path for an entity.
func collectionPath(e app.Entity) (string, error) {
	switch e.Kind {
	case app.KindAnime:
		return "/api/animes/" + url.PathEscape(e.ID) + "/comments", nil
	case app.KindEpisode:
		return "/api/episodes/" + url.PathEscape(e.ID) + "/comments", nil
	case app.KindStaffChat:
		return "/api/staff-chat", nil
	}
	return "", fmt.Errorf("unknown entity kind %d", e.Kind)
}

func itemPath(e app.Entity, id string) (string, error) {
	base, err := collectionPath(e)
	if err != nil {
		return "", err
	}
	return base + "/" + url.PathEscape(id), nil
}

func (s *commentService) List(_ context.Context, entity app.Entity) ([]domain.Comment, error) {
	// Anime forests arrive embedded in the series detail; the other
	// two families have their own list routes.
	if entity.Kind == app.KindAnime {
		data, err := s.client.Get("/api/animes/" + url.PathEscape(entity.ID))
		if err != nil {
			return nil, fmt.Errorf("fetching anime comments: %w", err)
		}
		var anime animePayload
		if err := json.Unmarshal(data, &anime); err != nil {
			return nil, fmt.Errorf("parsing anime comments: %w", err)
		}
		return comments(anime.Comments), nil
	}

	path, err := collectionPath(entity)
	if err != nil {
		return nil, err
	}
	data, err := s.client.Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}
	var payloads []commentPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}
	return comments(payloads), nil
}

func (s *commentService) Post(_ context.Context, entity app.Entity, draft app.NewComment) (domain.Comment, error) {
	path, err := collectionPath(entity)
	if err != nil {
		return domain.Comment{}, err
	}

	body := struct {
		Text        string `json:"text,omitempty"`
		ParentID    string `json:"parentId,omitempty"`
		MediaBase64 string `json:"mediaBase64,omitempty"`
	}{
		Text:        draft.Text,
		ParentID:    draft.ParentID,
		MediaBase64: draft.MediaBase64,
	}

	data, err := s.client.Post(path, body)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("posting comment: %w", err)
	}
	return parseComment(data)
}

func (s *commentService) Edit(_ context.Context, entity app.Entity, id, text string) (domain.Comment, error) {
	path, err := itemPath(entity, id)
	if err != nil {
		return domain.Comment{}, err
	}

	body := struct {
		Text string `json:"text"`
	}{Text: text}

	data, err := s.client.Patch(path, body)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("editing comment: %w", err)
	}
	return parseComment(data)
}

func (s *commentService) Delete(_ context.Context, entity app.Entity, id string) error {
	path, err := itemPath(entity, id)
	if err != nil {
		return err
	}
	if _, err := s.client.Delete(path); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}

func parseComment(data []byte) (domain.Comment, error) {
	var payload commentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.Comment{}, fmt.Errorf("parsing comment response: %w", err)
	}
	return payload.comment(), nil
}
