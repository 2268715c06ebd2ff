package app

import (
	"context"

	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

// Session is the result of a successful login.
type Session struct {
	Token string
	User  domain.User
}

// AccountService authenticates against the backend and resolves the
// current viewer.
type AccountService interface {
	// Login exchanges credentials for a bearer token and the user record.
	Login(ctx context.Context, email, password string) (Session, error)

	// CurrentUser returns the viewer behind the stored token.
	CurrentUser(ctx context.Context) (domain.User, error)
}
