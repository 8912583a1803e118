package domain

// List size caps applied during normalization.
const (
	MaxGenres        = 4
	MaxExcludeGenres = 4
	MaxExcludeTitles = 6
	MaxKeywords      = 8
	MaxTitles        = 5
)

// Filter is the canonical, bounded filter structure derived from free-text
// input. All list fields are deduplicated and order-preserving; no name
// appears in both an include list and its exclude counterpart.
type Filter struct {
	PrimaryGenre  string
	Genres        []string
	ExcludeGenres []string
	ExcludeTitles []string
	Keywords      []string
	Titles        []string
	MinVote       float64
	Strict        bool
}

// Interpretation is the validated result of one taste-interpreter call.
type Interpretation struct {
	Answer string
	Filter Filter
}

// IncludeGenres builds the working include list for the query planner:
// primary genre first, then the remaining genres, deduplicated, with any
// excluded genre removed.
func (f Filter) IncludeGenres() []string {
	out := make([]string, 0, 1+len(f.Genres))
	seen := make(map[string]struct{}, 1+len(f.Genres))
	excluded := make(map[string]struct{}, len(f.ExcludeGenres))
	for _, g := range f.ExcludeGenres {
		excluded[g] = struct{}{}
	}

	add := func(g string) {
		if g == "" {
			return
		}
		if _, ok := excluded[g]; ok {
			return
		}
		if _, ok := seen[g]; ok {
			return
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}

	add(f.PrimaryGenre)
	for _, g := range f.Genres {
		add(g)
	}
	return out
}
