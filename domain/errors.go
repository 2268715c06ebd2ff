package domain

import "errors"

var (
	// ErrEmptyComment indicates a submission with neither text nor media.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrNotLoggedIn indicates no stored credentials.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrUnauthorized indicates the server rejected the credentials.
	ErrUnauthorized = errors.New("unauthorized")
)
