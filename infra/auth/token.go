package auth

import (
	"fmt"
	"strings"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

// TokenProvider supplies an access token for API authentication.
type TokenProvider interface {
	AccessToken() (string, error)
}

// StoreTokenProvider reads the bearer token from the local store.
type StoreTokenProvider struct {
	store app.Store
}

// NewStoreTokenProvider creates a TokenProvider backed by the given store.
func NewStoreTokenProvider(s app.Store) *StoreTokenProvider {
	return &StoreTokenProvider{store: s}
}

// AccessToken returns the stored token, trimming whitespace. A missing
// or empty token yields domain.ErrNotLoggedIn.
func (p *StoreTokenProvider) AccessToken() (string, error) {
	raw, ok, err := p.store.Get(app.TokenKey)
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	token := strings.TrimSpace(raw)
	if !ok || token == "" {
		return "", domain.ErrNotLoggedIn
	}
	return token, nil
}

// SaveToken persists a freshly issued token.
func SaveToken(s app.Store, token string) error {
	return s.Set(app.TokenKey, token)
}

// ClearToken logs the client out locally.
func ClearToken(s app.Store) error {
	return s.Clear(app.TokenKey)
}
