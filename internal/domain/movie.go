package domain

// Movie is a catalog record synced from TMDB by an external process.
// The recommendation core reads it, never mutates it.
type Movie struct {
	TMDBID        int64    `json:"tmdb_id"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"original_title"`
	Overview      string   `json:"overview"`
	ReleaseDate   string   `json:"release_date"`
	PosterPath    string   `json:"poster_path"`
	BackdropPath  string   `json:"backdrop_path"`
	Genres        []string `json:"genres"`
	Popularity    float64  `json:"popularity"`
	VoteAverage   float64  `json:"vote_average"`
	VoteCount     int      `json:"vote_count"`
}

// HasGenre reports whether the movie carries the given genre name.
func (m Movie) HasGenre(name string) bool {
	for _, g := range m.Genres {
		if g == name {
			return true
		}
	}
	return false
}
