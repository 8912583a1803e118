package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rubytopaz-glitch/universe/internal/domain"
)

// moviesKey is the hash the external sync process writes movie records to,
// keyed by tmdb_id with JSON-encoded values.
const moviesKey = "catalog:movies"

// RedisStore reads the movie catalog from Redis. Reads are snapshot-style
// (one HGETALL) and tolerate concurrent sync writes: a record that fails to
// decode mid-write is skipped, never fatal.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Movies(ctx context.Context) ([]domain.Movie, error) {
	vals, err := s.client.HGetAll(ctx, moviesKey).Result()
	if err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, 0, len(vals))
	for field, raw := range vals {
		var m domain.Movie
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			s.logger.Warn("skipping undecodable catalog record", "tmdb_id", field, "error", err)
			continue
		}
		movies = append(movies, m)
	}

	// HGETALL ordering is unspecified; pin catalog natural order to tmdb_id
	// so tie-breaks downstream stay deterministic.
	sort.Slice(movies, func(i, j int) bool { return movies[i].TMDBID < movies[j].TMDBID })
	return movies, nil
}

// Put writes one movie record; exposed for seeding and tests, the sync
// process normally owns writes.
func (s *RedisStore) Put(ctx context.Context, m domain.Movie) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, moviesKey, strconv.FormatInt(m.TMDBID, 10), raw).Err()
}
