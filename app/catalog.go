package app

import (
	"context"

	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

// CatalogService reads the anime catalog.
type CatalogService interface {
	// Animes lists the catalog, optionally filtered by a title search.
	Animes(ctx context.Context, search string) ([]domain.AnimeSummary, error)

	// Anime returns the full detail for one series, including its
	// seasons and comment thread.
	Anime(ctx context.Context, id string) (domain.Anime, error)
}

// RecommendService asks the backend for titles related to a series.
// The model behind the endpoint is the backend's concern; the client
// treats it as an opaque remote function.
type RecommendService interface {
	Related(ctx context.Context, animeID string) ([]domain.AnimeSummary, error)
}
