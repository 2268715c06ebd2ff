package app

import (
	"encoding/json"
	"time"
)

// Store is the injected key-value capability for client-local state:
// the auth token and the continue-watching bookmarks. Keeping it an
// explicit dependency (rather than ambient file or env access) is what
// lets the views be tested in isolation.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)

	// Set writes the value for key, replacing any previous one.
	Set(key, value string) error

	// Clear removes key. Clearing a missing key is not an error.
	Clear(key string) error
}

// TokenKey is the store entry holding the bearer token.
const TokenKey = "auth/token"

// BookmarkKey names the continue-watching entry for one series.
func BookmarkKey(animeID string) string {
	return "continue/" + animeID
}

// Bookmark records the last episode opened for a series.
type Bookmark struct {
	SeasonID  string    `json:"seasonId"`
	EpisodeID string    `json:"episodeId"`
	SavedAt   time.Time `json:"savedAt"`
}

// SaveBookmark stores the continue-watching position for a series.
func SaveBookmark(s Store, animeID string, b Bookmark) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.Set(BookmarkKey(animeID), string(data))
}

// LoadBookmark returns the continue-watching position for a series,
// if one was saved.
func LoadBookmark(s Store, animeID string) (Bookmark, bool, error) {
	raw, ok, err := s.Get(BookmarkKey(animeID))
	if err != nil || !ok {
		return Bookmark{}, false, err
	}
	var b Bookmark
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return Bookmark{}, false, err
	}
	return b, true, nil
}
