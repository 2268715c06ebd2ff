package animeverse

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
)

func TestSupportSubmit(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Ticket received"}`))
	}))
	defer srv.Close()

	svc := NewSupportService(NewClient(srv.URL, staticToken("tok-1")))
	msg, err := svc.Submit(context.Background(), app.Ticket{
		Subject: "Broken episode page",
		Message: "Episode 5 of Planetes 404s.",
		Type:    "bug",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "POST /api/support/ticket" {
		t.Fatalf("unexpected route: %s", gotPath)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("ticket submission is authenticated, got %q", gotAuth)
	}
	want := map[string]string{
		"subject":    "Broken episode page",
		"message":    "Episode 5 of Planetes 404s.",
		"ticketType": "bug",
	}
	for k, v := range want {
		if gotBody[k] != v {
			t.Fatalf("body[%s] = %q, want %q", k, gotBody[k], v)
		}
	}
	if msg != "Ticket received" {
		t.Fatalf("confirmation message = %q", msg)
	}
}

func TestSupportSubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Subject, message, and ticket type are required."}`))
	}))
	defer srv.Close()

	svc := NewSupportService(NewClient(srv.URL, staticToken("tok-1")))
	_, err := svc.Submit(context.Background(), app.Ticket{Subject: "x"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", apiErr.StatusCode)
	}
}
