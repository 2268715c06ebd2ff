package animeverse

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
)

// supportService implements app.SupportService using the AnimeVerse API.
type supportService struct {
	client *Client
}

// NewSupportService creates a SupportService backed by the AnimeVerse API.
func NewSupportService(client *Client) *supportService {
	return &supportService{client: client}
}

func (s *supportService) Submit(_ context.Context, t app.Ticket) (string, error) {
	body := struct {
		Subject    string `json:"subject"`
		Message    string `json:"message"`
		TicketType string `json:"ticketType"`
	}{Subject: t.Subject, Message: t.Message, TicketType: t.Type}

	data, err := s.client.Post("/api/support/ticket", body)
	if err != nil {
		return "", fmt.Errorf("submitting ticket: %w", err)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parsing ticket response: %w", err)
	}
	return resp.Message, nil
}
