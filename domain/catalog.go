package domain

// AnimeSummary is the catalog-listing view of a series.
type AnimeSummary struct {
	ID       string
	Title    string
	ImageURL string
	Rating   string
	Status   string
	Genres   []string
}

// Anime is the full detail payload: summary plus seasons and the
// series comment thread.
type Anime struct {
	AnimeSummary
	Description string
	Seasons     []Season
	Comments    []Comment
}

type Season struct {
	ID       string
	Title    string
	Episodes []Episode
}

type Episode struct {
	ID       string
	Title    string
	Synopsis string
	Duration int // minutes
}
