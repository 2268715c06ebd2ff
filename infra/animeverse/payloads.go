package animeverse

import (
	"time"

	"github.com/Anime-Verse-backend/AnimeVerse/domain"
)

// Wire shapes for the subset of the AnimeVerse API this client uses.
// Field names follow the backend's JSON exactly.

type userPayload struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl"`
}

type parentPayload struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Author    userPayload `json:"author"`
	IsDeleted bool        `json:"isDeleted"`
}

type commentPayload struct {
	ID        string           `json:"id"`
	Text      string           `json:"text"`
	Author    userPayload      `json:"author"`
	Timestamp string           `json:"timestamp"`
	MediaURL  string           `json:"mediaUrl"`
	IsDeleted bool             `json:"isDeleted"`
	Parent    *parentPayload   `json:"parent"`
	Replies   []commentPayload `json:"replies"`
}

type genrePayload struct {
	Name string `json:"name"`
}

type episodePayload struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
	Duration int    `json:"duration"`
}

type seasonPayload struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Episodes []episodePayload `json:"episodes"`
}

type animePayload struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Rating      string           `json:"rating"`
	Status      string           `json:"status"`
	ImageURL    string           `json:"imageUrl"`
	Genres      []genrePayload   `json:"genres"`
	Seasons     []seasonPayload  `json:"seasons"`
	Comments    []commentPayload `json:"comments"`
}

func (u userPayload) author() domain.Author {
	return domain.Author{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}

func (u userPayload) user() domain.User {
	return domain.User{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}

func (p commentPayload) comment() domain.Comment {
	c := domain.Comment{
		ID:        p.ID,
		Author:    p.Author.author(),
		Text:      p.Text,
		MediaURL:  p.MediaURL,
		Timestamp: parseTimestamp(p.Timestamp),
		Deleted:   p.IsDeleted,
	}
	if p.Parent != nil {
		c.Parent = &domain.ParentRef{
			ID:      p.Parent.ID,
			Text:    p.Parent.Text,
			Author:  p.Parent.Author.author(),
			Deleted: p.Parent.IsDeleted,
		}
	}
	if len(p.Replies) > 0 {
		c.Replies = make([]domain.Comment, 0, len(p.Replies))
		for _, r := range p.Replies {
			c.Replies = append(c.Replies, r.comment())
		}
	}
	return c
}

func comments(payloads []commentPayload) []domain.Comment {
	out := make([]domain.Comment, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.comment())
	}
	return out
}

func (a animePayload) summary() domain.AnimeSummary {
	genres := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		genres = append(genres, g.Name)
	}
	return domain.AnimeSummary{
		ID:       a.ID,
		Title:    a.Title,
		ImageURL: a.ImageURL,
		Rating:   a.Rating,
		Status:   a.Status,
		Genres:   genres,
	}
}

func (a animePayload) anime() domain.Anime {
	out := domain.Anime{
		AnimeSummary: a.summary(),
		Description:  a.Description,
		Comments:     comments(a.Comments),
	}
	out.Seasons = make([]domain.Season, 0, len(a.Seasons))
	for _, s := range a.Seasons {
		season := domain.Season{ID: s.ID, Title: s.Title}
		for _, e := range s.Episodes {
			season.Episodes = append(season.Episodes, domain.Episode{
				ID:       e.ID,
				Title:    e.Title,
				Synopsis: e.Synopsis,
				Duration: e.Duration,
			})
		}
		out.Seasons = append(out.Seasons, season)
	}
	return out
}

// parseTimestamp handles both offset-carrying and naive ISO timestamps;
// the backend emits naive UTC for database-assigned times.
func parseTimestamp(raw string) time.Time {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts
	}
	ts, _ := time.Parse("2006-01-02T15:04:05", raw)
	return ts
}
