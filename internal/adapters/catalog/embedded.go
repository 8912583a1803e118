package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rubytopaz-glitch/universe/internal/domain"
)

//go:embed data/movies.json
var catalogFS embed.FS

const embeddedCatalogFile = "data/movies.json"

// EmbeddedStore serves a catalog snapshot from an embedded JSON file.
// Useful for development and tests; production runs against Redis kept
// fresh by the external sync process.
type EmbeddedStore struct {
	once   sync.Once
	movies []domain.Movie
	err    error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	raw, err := catalogFS.ReadFile(embeddedCatalogFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded catalog: %w", err)
		return
	}
	if err := json.Unmarshal(raw, &s.movies); err != nil {
		s.err = fmt.Errorf("parse embedded catalog: %w", err)
	}
}

func (s *EmbeddedStore) Movies(_ context.Context) ([]domain.Movie, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	return s.movies, nil
}
