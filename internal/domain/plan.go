package domain

import (
	"sort"
	"strings"
)

// RecommendLimit is the maximum number of movies a plan returns.
const RecommendLimit = 12

// PlanQuery runs the fallback cascade over a catalog snapshot and returns
// the ranked result, at most RecommendLimit movies. Exclusions and the
// rating floor apply first and never relax; include conditions relax in
// stages until something matches:
//
//  1. strict mode requires every include genre; non-strict only ranks by
//     genre match count
//  2. keyword matches are kept when they yield anything, dropped otherwise
//  3. an empty result with keywords retries from the base set on keywords
//     alone (genre requirement dropped)
//  4. a still-empty result retries on title candidates alone
//
// Sorts are stable, so ties keep catalog natural order.
func PlanQuery(catalog []Movie, f Filter) []Movie {
	include := f.IncludeGenres()

	base := make([]Movie, 0, len(catalog))
	for _, m := range catalog {
		if hasAnyGenre(m, f.ExcludeGenres) {
			continue
		}
		if titleContainsAny(m, f.ExcludeTitles) {
			continue
		}
		if f.MinVote > 0 && m.VoteAverage < f.MinVote {
			continue
		}
		base = append(base, m)
	}

	working := base
	if f.Strict && len(include) > 0 {
		working = filterMovies(working, func(m Movie) bool { return hasAllGenres(m, include) })
	}

	final := working
	if len(f.Keywords) > 0 {
		withKeywords := filterMovies(working, func(m Movie) bool { return matchesKeyword(m, f.Keywords) })
		if len(withKeywords) > 0 {
			final = withKeywords
		}
	}

	if len(include) > 0 && len(final) == 0 && len(f.Keywords) > 0 {
		final = filterMovies(base, func(m Movie) bool { return matchesKeyword(m, f.Keywords) })
	}

	if len(final) == 0 && len(f.Titles) > 0 {
		final = filterMovies(base, func(m Movie) bool { return titleContainsAny(m, f.Titles) })
	}

	ranked := make([]scoredMovie, len(final))
	for i, m := range final {
		ranked[i] = scoredMovie{movie: m, matches: countGenres(m, include)}
	}

	if !f.Strict && len(include) > 0 {
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].matches != ranked[j].matches {
				return ranked[i].matches > ranked[j].matches
			}
			return lessByPopularity(ranked[i].movie, ranked[j].movie)
		})
	} else {
		sort.SliceStable(ranked, func(i, j int) bool {
			return lessByPopularity(ranked[i].movie, ranked[j].movie)
		})
	}

	if len(ranked) > RecommendLimit {
		ranked = ranked[:RecommendLimit]
	}
	out := make([]Movie, len(ranked))
	for i, r := range ranked {
		out[i] = r.movie
	}
	return out
}

type scoredMovie struct {
	movie   Movie
	matches int
}

func lessByPopularity(a, b Movie) bool {
	if a.Popularity != b.Popularity {
		return a.Popularity > b.Popularity
	}
	return a.VoteAverage > b.VoteAverage
}

func filterMovies(movies []Movie, keep func(Movie) bool) []Movie {
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func hasAnyGenre(m Movie, names []string) bool {
	for _, n := range names {
		if m.HasGenre(n) {
			return true
		}
	}
	return false
}

func hasAllGenres(m Movie, names []string) bool {
	for _, n := range names {
		if !m.HasGenre(n) {
			return false
		}
	}
	return true
}

func countGenres(m Movie, names []string) int {
	count := 0
	for _, n := range names {
		if m.HasGenre(n) {
			count++
		}
	}
	return count
}

func titleContainsAny(m Movie, fragments []string) bool {
	title := strings.ToLower(m.Title)
	for _, frag := range fragments {
		if frag == "" {
			continue
		}
		if strings.Contains(title, strings.ToLower(frag)) {
			return true
		}
	}
	return false
}

func matchesKeyword(m Movie, keywords []string) bool {
	title := strings.ToLower(m.Title)
	overview := strings.ToLower(m.Overview)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(title, kw) || strings.Contains(overview, kw) {
			return true
		}
	}
	return false
}
