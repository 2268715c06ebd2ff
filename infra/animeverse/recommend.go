package animeverse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

// recommendService implements app.RecommendService using the
// AnimeVerse related-titles endpoint. What runs behind it is the
// backend's concern; from here it is a remote function from one anime
// id to a list of catalog summaries.
type recommendService struct {
	client *Client
}

// NewRecommendService creates a RecommendService backed by the AnimeVerse API.
func NewRecommendService(client *Client) *recommendService {
	return &recommendService{client: client}
}

func (s *recommendService) Related(_ context.Context, animeID string) ([]domain.AnimeSummary, error) {
	data, err := s.client.Post("/api/animes/"+url.PathEscape(animeID)+"/related", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching related titles: %w", err)
	}

	var payloads []animePayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parsing related titles: %w", err)
	}

	out := make([]domain.AnimeSummary, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.summary())
	}
	return out, nil
}
