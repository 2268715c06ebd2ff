package auth

import (
	"errors"
	"testing"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

type memStore map[string]string

func (m memStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}
func (m memStore) Set(key, value string) error { m[key] = value; return nil }
func (m memStore) Clear(key string) error      { delete(m, key); return nil }

func TestStoreTokenProvider(t *testing.T) {
	s := memStore{}
	p := NewStoreTokenProvider(s)

	if _, err := p.AccessToken(); !errors.Is(err, domain.ErrNotLoggedIn) {
		t.Fatalf("missing token should yield ErrNotLoggedIn, got %v", err)
	}

	if err := SaveToken(s, "  tok-123\n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	tok, err := p.AccessToken()
	if err != nil || tok != "tok-123" {
		t.Fatalf("expected trimmed token, got %q err=%v", tok, err)
	}

	if err := ClearToken(s); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := p.AccessToken(); !errors.Is(err, domain.ErrNotLoggedIn) {
		t.Fatalf("cleared token should yield ErrNotLoggedIn, got %v", err)
	}
}

func TestStoreTokenProviderEmptyValue(t *testing.T) {
	s := memStore{app.TokenKey: "   "}
	p := NewStoreTokenProvider(s)
	if _, err := p.AccessToken(); !errors.Is(err, domain.ErrNotLoggedIn) {
		t.Fatalf("blank token should yield ErrNotLoggedIn, got %v", err)
	}
}
