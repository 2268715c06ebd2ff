package domain

import (
	"strings"
	"time"
	"unicode"
)

// Role strings as issued by the AnimeVerse backend.
const (
	RoleOwner   = "owner"
	RoleCoOwner = "co-owner"
	RoleAdmin   = "admin"
	RoleUser    = "user"
)

// Author is a read-only snapshot of the user who wrote a comment,
// taken from the comment payload at fetch time. The live user record
// belongs to the backend.
type Author struct {
	ID        string
	Username  string
	Name      string
	Role      string
	AvatarURL string
}

// ParentRef is the one-level back-reference to the comment being
// replied to, used for the "replying to X" line. Thread nesting comes
// from Replies, not from this.
type ParentRef struct {
	ID      string
	Text    string
	Author  Author
	Deleted bool
}

// Comment is one comment or staff-chat message together with its reply
// thread. A tombstoned comment keeps its ID and Replies but has Text
// and MediaURL cleared.
type Comment struct {
	ID        string
	Author    Author
	Text      string // empty on media-only comments and tombstones
	MediaURL  string // set at creation, immutable afterwards
	Timestamp time.Time
	Parent    *ParentRef
	Replies   []Comment // insertion order = reply order
	Deleted   bool
}

// IsPrivileged reports whether a role may edit or delete comments the
// viewer did not author.
func IsPrivileged(role string) bool {
	switch role {
	case RoleOwner, RoleCoOwner, RoleAdmin:
		return true
	}
	return false
}

// Initials returns the upper-cased first letter of each space-separated
// token of name. Used as the avatar fallback.
func Initials(name string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(name) {
		r := []rune(tok)
		b.WriteRune(unicode.ToUpper(r[0]))
	}
	return b.String()
}
