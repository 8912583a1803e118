package ports

import (
	"context"

	"github.com/rubytopaz-glitch/universe/internal/domain"
)

// Catalog provides a read-only snapshot of the movie catalog. The catalog
// is maintained by an external sync process; reads must tolerate concurrent
// writes (eventual consistency, no transactional isolation).
type Catalog interface {
	Movies(ctx context.Context) ([]domain.Movie, error)
}
