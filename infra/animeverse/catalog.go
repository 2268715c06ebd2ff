package animeverse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

// catalogService implements app.CatalogService using the AnimeVerse API.
type catalogService struct {
	client *Client
}

// NewCatalogService creates a CatalogService backed by the AnimeVerse API.
func NewCatalogService(client *Client) *catalogService {
	return &catalogService{client: client}
}

func (s *catalogService) Animes(_ context.Context, search string) ([]domain.AnimeSummary, error) {
	path := "/api/animes"
	if search != "" {
		path += "?q=" + url.QueryEscape(search)
	}

	data, err := s.client.Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}

	var payloads []animePayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	out := make([]domain.AnimeSummary, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.summary())
	}
	return out, nil
}

func (s *catalogService) Anime(_ context.Context, id string) (domain.Anime, error) {
	data, err := s.client.Get("/api/animes/" + url.PathEscape(id))
	if err != nil {
		return domain.Anime{}, fmt.Errorf("fetching anime: %w", err)
	}

	var payload animePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.Anime{}, fmt.Errorf("parsing anime: %w", err)
	}
	return payload.anime(), nil
}
