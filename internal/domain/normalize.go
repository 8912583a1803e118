package domain

import "strings"

const (
	// DefaultAnswer substitutes an empty or missing answer field.
	DefaultAnswer = "원하시는 분위기와 조건에 맞춰 추천을 준비해볼게요."
	// FallbackAnswer is returned when the model produced no usable JSON.
	FallbackAnswer = "죄송합니다. 추천을 생성하는 중에 문제가 발생했습니다."
)

// NormalizeInterpretation maps the permissive decoded model output into the
// canonical filter structure. Every field is type-checked: genre names must
// belong to the closed vocabulary, lists are deduplicated order-preserving
// and capped, excludes win over includes, and missing strict/min_vote fields
// fall back to message-text heuristics.
func NormalizeInterpretation(data map[string]any, message string) Interpretation {
	answer, _ := data["answer"].(string)
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = DefaultAnswer
	}

	filters, _ := data["filters"].(map[string]any)

	primary := ""
	if s, ok := filters["primary_genre_name"].(string); ok {
		primary = strings.TrimSpace(s)
	}
	if !IsGenre(primary) {
		primary = ""
	}

	genres := keepGenres(dedupeStrings(filters["genre_names"]))
	excludeGenres := keepGenres(dedupeStrings(filters["exclude_genre_names"]))
	excludeTitles := dedupeStrings(filters["exclude_titles"])
	keywords := dedupeStrings(filters["keywords"])
	titles := dedupeStrings(filters["titles"])

	// Include/exclude conflicts: exclude wins.
	genres = without(genres, excludeGenres)
	for _, g := range excludeGenres {
		if g == primary {
			primary = ""
			break
		}
	}

	strict := InferStrict(message)
	switch v := filters["strict"].(type) {
	case bool:
		strict = v
	case float64:
		strict = v != 0
	}

	minVote := InferMinVote(message)
	if v, ok := filters["min_vote"].(float64); ok {
		minVote = Clamp(v, 0, 10)
	}

	return Interpretation{
		Answer: answer,
		Filter: Filter{
			PrimaryGenre:  primary,
			Genres:        capList(genres, MaxGenres),
			ExcludeGenres: capList(excludeGenres, MaxExcludeGenres),
			ExcludeTitles: capList(excludeTitles, MaxExcludeTitles),
			Keywords:      capList(keywords, MaxKeywords),
			Titles:        capList(titles, MaxTitles),
			MinVote:       minVote,
			Strict:        strict,
		},
	}
}

// FallbackInterpretation is the deterministic result used when the model
// call failed or returned no parseable JSON.
func FallbackInterpretation(message string) Interpretation {
	return Interpretation{
		Answer: FallbackAnswer,
		Filter: Filter{
			Genres:        []string{},
			ExcludeGenres: []string{},
			ExcludeTitles: []string{},
			Keywords:      []string{},
			Titles:        []string{},
			MinVote:       InferMinVote(message),
			Strict:        InferStrict(message),
		},
	}
}

// dedupeStrings filters an untyped list down to trimmed, non-empty strings,
// deduplicated preserving first occurrence.
func dedupeStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func keepGenres(names []string) []string {
	out := names[:0:0]
	for _, n := range names {
		if IsGenre(n) {
			out = append(out, n)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func without(items, drop []string) []string {
	dropSet := make(map[string]struct{}, len(drop))
	for _, d := range drop {
		dropSet[d] = struct{}{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := dropSet[it]; !ok {
			out = append(out, it)
		}
	}
	return out
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
