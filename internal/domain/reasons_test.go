package domain_test

import (
	"strings"
	"testing"

	"github.com/rubytopaz-glitch/universe/internal/domain"
)

func reasonMovies() []domain.Movie {
	return []domain.Movie{
		{TMDBID: 123, Title: "러브 액츄얼리"},
		{TMDBID: 456, Title: "어바웃 타임"},
	}
}

func TestNormalizeReasons_DropsUnknownIDs(t *testing.T) {
	out := domain.NormalizeReasons(map[string]any{
		"reasons": map[string]any{
			"123": "겨울 감성에 어울리는 로맨스입니다.",
			"999": "목록에 없는 영화입니다.",
		},
	}, reasonMovies())

	if len(out) != 1 {
		t.Fatalf("expected 1 reason, got %v", out)
	}
	if out["123"] == "" {
		t.Error("expected reason for 123")
	}
}

func TestNormalizeReasons_DropsInvalidValues(t *testing.T) {
	out := domain.NormalizeReasons(map[string]any{
		"reasons": map[string]any{
			"123": float64(5),
			"456": "   ",
		},
	}, reasonMovies())

	if len(out) != 0 {
		t.Fatalf("expected empty map, got %v", out)
	}
}

func TestNormalizeReasons_TruncatesLongValues(t *testing.T) {
	long := strings.Repeat("가", 80)
	out := domain.NormalizeReasons(map[string]any{
		"reasons": map[string]any{"123": long},
	}, reasonMovies())

	if got := len([]rune(out["123"])); got != domain.MaxReasonLength {
		t.Errorf("expected %d runes, got %d", domain.MaxReasonLength, got)
	}
}

func TestNormalizeReasons_NoReasonsField(t *testing.T) {
	out := domain.NormalizeReasons(map[string]any{"answer": "x"}, reasonMovies())
	if len(out) != 0 {
		t.Fatalf("expected empty map, got %v", out)
	}
	out = domain.NormalizeReasons(map[string]any{"reasons": []any{"not", "a", "map"}}, reasonMovies())
	if len(out) != 0 {
		t.Fatalf("expected empty map, got %v", out)
	}
}
