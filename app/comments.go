package app

import (
	"context"

	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

// EntityKind selects which comment endpoint family a thread belongs to.
type EntityKind int

const (
	KindAnime EntityKind = iota
	KindEpisode
	KindStaffChat
)

// Entity identifies the owner of one comment thread: a series, an
// episode, or the single staff channel (whose ID is empty).
type Entity struct {
	Kind EntityKind
	ID   string
}

// Key returns a stable string for the entity, used to guard against
// applying a stale response to a different thread.
func (e Entity) Key() string {
	switch e.Kind {
	case KindAnime:
		return "anime:" + e.ID
	case KindEpisode:
		return "episode:" + e.ID
	case KindStaffChat:
		return "staff-chat"
	}
	return ""
}

// NewComment is the client-side draft of a comment. Text or
// MediaBase64 must be set; callers validate before submitting, the
// service does not check again.
type NewComment struct {
	Text        string
	ParentID    string // reply target; empty for a top-level comment
	MediaBase64 string // data URI of an attached image
}

// CommentService syncs comment threads with the backend. Mutations
// return the server-confirmed node; callers fold it into their local
// forest. Nothing enters a forest before the round trip completes, and
// a failed call leaves the forest untouched.
type CommentService interface {
	// List fetches the full forest for an entity.
	List(ctx context.Context, entity Entity) ([]domain.Comment, error)

	// Post publishes a new comment or reply.
	Post(ctx context.Context, entity Entity, draft NewComment) (domain.Comment, error)

	// Edit replaces the text of an existing comment.
	Edit(ctx context.Context, entity Entity, id, text string) (domain.Comment, error)

	// Delete removes a comment. The server decides between tombstone
	// and physical removal; callers mirror that with a local soft
	// delete after this resolves.
	Delete(ctx context.Context, entity Entity, id string) error
}
