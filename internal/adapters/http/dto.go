package http

import "github.com/rubytopaz-glitch/universe/internal/domain"

// RecommendRequest is the JSON body of POST /v1/recommends.
type RecommendRequest struct {
	Message string        `json:"message" validate:"required"`
	History []HistoryTurn `json:"history" validate:"max=50,dive"`
}

// HistoryTurn is one prior conversation turn supplied by the client.
// Roles other than user/assistant are ignored downstream.
type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RecommendResponse is the JSON shape returned by POST /v1/recommends.
type RecommendResponse struct {
	Answer             string            `json:"answer"`
	Filters            FilterResponse    `json:"filters"`
	Movies             []MovieSummary    `json:"movies"`
	RecommendedReasons map[string]string `json:"recommended_reasons"`
	Meta               MetaResponse      `json:"meta"`
}

// FilterResponse mirrors the reconciled canonical filter.
type FilterResponse struct {
	PrimaryGenreName  *string  `json:"primary_genre_name"`
	GenreNames        []string `json:"genre_names"`
	ExcludeGenreNames []string `json:"exclude_genre_names"`
	ExcludeTitles     []string `json:"exclude_titles"`
	Keywords          []string `json:"keywords"`
	Titles            []string `json:"titles"`
	MinVote           float64  `json:"min_vote"`
	Strict            bool     `json:"strict"`
}

// MovieSummary is the list serialization of a catalog movie.
type MovieSummary struct {
	TMDBID        int64    `json:"tmdb_id"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"original_title,omitempty"`
	PosterPath    string   `json:"poster_path,omitempty"`
	BackdropPath  string   `json:"backdrop_path,omitempty"`
	ReleaseDate   string   `json:"release_date,omitempty"`
	VoteAverage   float64  `json:"vote_average"`
	VoteCount     int      `json:"vote_count"`
	Popularity    float64  `json:"popularity"`
	Genres        []string `json:"genres"`
}

type MetaResponse struct {
	Model     string `json:"model"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

// GenreListResponse is the JSON shape returned by GET /v1/genres.
type GenreListResponse struct {
	Genres []string `json:"genres"`
}

// GenreMoviesResponse is the JSON shape returned by GET /v1/genres/:name/movies.
type GenreMoviesResponse struct {
	Genre   string         `json:"genre"`
	Results []MovieSummary `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toFilterResponse(f domain.Filter) FilterResponse {
	var primary *string
	if f.PrimaryGenre != "" {
		primary = &f.PrimaryGenre
	}
	return FilterResponse{
		PrimaryGenreName:  primary,
		GenreNames:        orEmpty(f.Genres),
		ExcludeGenreNames: orEmpty(f.ExcludeGenres),
		ExcludeTitles:     orEmpty(f.ExcludeTitles),
		Keywords:          orEmpty(f.Keywords),
		Titles:            orEmpty(f.Titles),
		MinVote:           f.MinVote,
		Strict:            f.Strict,
	}
}

func toMovieSummaries(movies []domain.Movie) []MovieSummary {
	out := make([]MovieSummary, len(movies))
	for i, m := range movies {
		out[i] = MovieSummary{
			TMDBID:        m.TMDBID,
			Title:         m.Title,
			OriginalTitle: m.OriginalTitle,
			PosterPath:    m.PosterPath,
			BackdropPath:  m.BackdropPath,
			ReleaseDate:   m.ReleaseDate,
			VoteAverage:   m.VoteAverage,
			VoteCount:     m.VoteCount,
			Popularity:    m.Popularity,
			Genres:        orEmpty(m.Genres),
		}
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
