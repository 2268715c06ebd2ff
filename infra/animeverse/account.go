package animeverse

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

// accountService implements app.AccountService using the AnimeVerse API.
type accountService struct {
	client *Client
}

// NewAccountService creates an AccountService backed by the AnimeVerse API.
func NewAccountService(client *Client) *accountService {
	return &accountService{client: client}
}

func (s *accountService) Login(_ context.Context, email, password string) (app.Session, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	data, err := s.client.Post("/api/auth/login", body)
	if err != nil {
		return app.Session{}, fmt.Errorf("logging in: %w", err)
	}

	var resp struct {
		Token string      `json:"token"`
		User  userPayload `json:"user"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return app.Session{}, fmt.Errorf("parsing login response: %w", err)
	}
	if resp.Token == "" {
		return app.Session{}, domain.ErrUnauthorized
	}

	return app.Session{Token: resp.Token, User: resp.User.user()}, nil
}

func (s *accountService) CurrentUser(_ context.Context) (domain.User, error) {
	data, err := s.client.Get("/api/users/me")
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching current user: %w", err)
	}

	var payload userPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.User{}, fmt.Errorf("parsing current user: %w", err)
	}
	return payload.user(), nil
}
