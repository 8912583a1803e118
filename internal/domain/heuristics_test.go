package domain_test

import (
	"testing"

	"github.com/rubytopaz-glitch/universe/internal/domain"
)

func TestInferMinVote(t *testing.T) {
	tests := []struct {
		message string
		want    float64
	}{
		{"평점 8 이상인 영화", 8},
		{"7.5점 넘는 걸로", 7.5},
		{"15점 이상", 10},      // clamped
		{"명작 추천해줘", 7.5},    // quality cue
		{"후회 없는 선택", 7.5},   // quality cue
		{"무난한 거 틀어줘", 6.5},  // casual cue
		{"가볍게 볼 것", 6.5},    // casual cue
		{"겨울에 어울리는 영화", 6}, // default
	}
	for _, tt := range tests {
		if got := domain.InferMinVote(tt.message); got != tt.want {
			t.Errorf("InferMinVote(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestInferMinVote_NumberWinsOverCues(t *testing.T) {
	// An explicit number beats the quality-cue bump.
	if got := domain.InferMinVote("평점 6 이상 명작"); got != 6 {
		t.Errorf("got %v, want 6", got)
	}
}

func TestInferStrict(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"오직 코미디 장르로", true},
		{"딱 로맨스 느낌", true},
		{"무조건 액션", true},
		{"정확히 이 조건으로", true},
		{"겨울 분위기 영화 추천", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := domain.InferStrict(tt.message); got != tt.want {
			t.Errorf("InferStrict(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := domain.Clamp(-1, 0, 10); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := domain.Clamp(11, 0, 10); got != 10 {
		t.Errorf("got %v, want 10", got)
	}
	if got := domain.Clamp(5.5, 0, 10); got != 5.5 {
		t.Errorf("got %v, want 5.5", got)
	}
}
