package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/rubytopaz-glitch/universe/internal/domain"
)

// genreBrowseLimit caps the per-genre browse listing.
const genreBrowseLimit = 24

// Genres returns the closed genre vocabulary in presentation order.
func (s *RecommendService) Genres() []string {
	return domain.GenreList
}

// MoviesByGenre lists catalog movies carrying the given genre, most popular
// first. The name must belong to the closed vocabulary.
func (s *RecommendService) MoviesByGenre(ctx context.Context, name string) ([]domain.Movie, error) {
	if !domain.IsGenre(name) {
		return nil, domain.ErrUnknownGenre
	}

	catalog, err := s.catalog.Movies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	movies := make([]domain.Movie, 0, len(catalog))
	for _, m := range catalog {
		if m.HasGenre(name) {
			movies = append(movies, m)
		}
	}
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Popularity > movies[j].Popularity
	})
	if len(movies) > genreBrowseLimit {
		movies = movies[:genreBrowseLimit]
	}
	return movies, nil
}
