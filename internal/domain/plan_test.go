package domain_test

import (
	"testing"

	"github.com/rubytopaz-glitch/universe/internal/domain"
)

func planCatalog() []domain.Movie {
	return []domain.Movie{
		{TMDBID: 1, Title: "러브 액츄얼리", Overview: "눈 내리는 겨울 런던의 사랑 이야기", Genres: []string{"코미디", "로맨스"}, Popularity: 50, VoteAverage: 8},
		{TMDBID: 2, Title: "극한직업", Overview: "치킨집을 차린 형사들", Genres: []string{"코미디"}, Popularity: 90, VoteAverage: 7},
		{TMDBID: 3, Title: "인터스텔라", Overview: "우주를 건너는 아버지의 사랑", Genres: []string{"SF", "드라마"}, Popularity: 70, VoteAverage: 9},
		{TMDBID: 4, Title: "곡성", Overview: "마을에 번지는 의문의 사건", Genres: []string{"공포", "미스터리"}, Popularity: 99, VoteAverage: 9},
		{TMDBID: 5, Title: "어바웃 타임", Overview: "시간을 되돌리는 로맨스", Genres: []string{"코미디", "로맨스"}, Popularity: 40, VoteAverage: 6},
	}
}

func ids(movies []domain.Movie) []int64 {
	out := make([]int64, len(movies))
	for i, m := range movies {
		out[i] = m.TMDBID
	}
	return out
}

func assertIDs(t *testing.T, movies []domain.Movie, want ...int64) {
	t.Helper()
	got := ids(movies)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPlanQuery_StrictRequiresAllGenres(t *testing.T) {
	out := domain.PlanQuery(planCatalog(), domain.Filter{
		Genres: []string{"코미디", "로맨스"},
		Strict: true,
	})
	// Only records carrying both genres, popularity desc.
	assertIDs(t, out, 1, 5)
}

func TestPlanQuery_NonStrictRanksByMatchCount(t *testing.T) {
	out := domain.PlanQuery(planCatalog(), domain.Filter{
		Genres: []string{"코미디", "로맨스"},
		Strict: false,
	})
	// 2 matches first (1, 5 by popularity), then 1 match (2), then 0 matches
	// (4 beats 3 on popularity).
	assertIDs(t, out, 1, 5, 2, 4, 3)
}

func TestPlanQuery_ExclusionsApplyFirstAndNeverRelax(t *testing.T) {
	out := domain.PlanQuery(planCatalog(), domain.Filter{
		ExcludeGenres: []string{"공포"},
		ExcludeTitles: []string{"어바웃"},
	})
	for _, m := range out {
		if m.TMDBID == 4 || m.TMDBID == 5 {
			t.Fatalf("excluded movie %d in result", m.TMDBID)
		}
	}
}

func TestPlanQuery_ExcludeTitleCaseInsensitive(t *testing.T) {
	catalog := []domain.Movie{
		{TMDBID: 10, Title: "Chainsaw Man The Movie", Genres: []string{"애니메이션"}, Popularity: 10, VoteAverage: 8},
	}
	out := domain.PlanQuery(catalog, domain.Filter{ExcludeTitles: []string{"chainsaw man"}})
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %v", ids(out))
	}
}

func TestPlanQuery_MinVoteCut(t *testing.T) {
	out := domain.PlanQuery(planCatalog(), domain.Filter{MinVote: 8})
	assertIDs(t, out, 4, 3, 1)
}

func TestPlanQuery_KeywordTierKeptWhenNonEmpty(t *testing.T) {
	out := domain.PlanQuery(planCatalog(), domain.Filter{
		Genres:   []string{"로맨스"},
		Keywords: []string{"겨울"},
	})
	// Keyword hits only movie 1.
	assertIDs(t, out, 1)
}

func TestPlanQuery_KeywordTierDroppedWhenEmpty(t *testing.T) {
	out := domain.PlanQuery(planCatalog(), domain.Filter{
		Genres:   []string{"코미디", "로맨스"},
		Strict:   true,
		Keywords: []string{"존재하지않는키워드"},
	})
	// No keyword hit: fall back to the genre result.
	assertIDs(t, out, 1, 5)
}

func TestPlanQuery_GenreRelaxationTier(t *testing.T) {
	out := domain.PlanQuery(planCatalog(), domain.Filter{
		Genres:   []string{"서부"},
		Strict:   true,
		Keywords: []string{"우주"},
	})
	// No western movie exists; genre requirement drops, keyword keeps 3.
	assertIDs(t, out, 3)
}

func TestPlanQuery_TitleCandidateTier(t *testing.T) {
	out := domain.PlanQuery(planCatalog(), domain.Filter{
		Genres: []string{"서부"},
		Strict: true,
		Titles: []string{"인터"},
	})
	assertIDs(t, out, 3)
}

func TestPlanQuery_Limit(t *testing.T) {
	catalog := make([]domain.Movie, 30)
	for i := range catalog {
		catalog[i] = domain.Movie{TMDBID: int64(i + 1), Title: "영화", Popularity: float64(30 - i), VoteAverage: 7}
	}
	out := domain.PlanQuery(catalog, domain.Filter{})
	if len(out) != domain.RecommendLimit {
		t.Fatalf("expected %d movies, got %d", domain.RecommendLimit, len(out))
	}
}

func TestPlanQuery_TiesKeepCatalogOrder(t *testing.T) {
	catalog := []domain.Movie{
		{TMDBID: 1, Title: "a", Popularity: 10, VoteAverage: 7},
		{TMDBID: 2, Title: "b", Popularity: 10, VoteAverage: 7},
		{TMDBID: 3, Title: "c", Popularity: 10, VoteAverage: 7},
	}
	out := domain.PlanQuery(catalog, domain.Filter{})
	assertIDs(t, out, 1, 2, 3)
}

func TestPlanQuery_EmptyResultIsValid(t *testing.T) {
	out := domain.PlanQuery(planCatalog(), domain.Filter{
		Genres: []string{"서부"},
		Strict: true,
	})
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %v", ids(out))
	}
}
