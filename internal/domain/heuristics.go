package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Keyword cues for the rating-floor heuristic.
var (
	qualityCues = []string{"명작", "평점", "후회", "인생영화", "극찬", "완성도", "탄탄"}
	casualCues  = []string{"무난", "가볍게", "편하게", "대중적", "부담없이"}
	strictCues  = []string{"딱", "오직", "만", "정확", "엄격", "무조건", "반드시"}
)

// InferMinVote derives a rating floor from the raw message. An explicit
// number wins; otherwise quality cues raise the floor to 7.5, casual cues
// lower it to 6.5, and the default is 6.0.
func InferMinVote(message string) float64 {
	if num := numberPattern.FindString(message); num != "" {
		if v, err := strconv.ParseFloat(num, 64); err == nil {
			return Clamp(v, 0, 10)
		}
	}
	if containsAny(message, qualityCues) {
		return 7.5
	}
	if containsAny(message, casualCues) {
		return 6.5
	}
	return 6.0
}

// InferStrict reports whether the message carries an emphatic "only/exactly"
// qualifier, in which case all requested genres must match.
func InferStrict(message string) bool {
	return containsAny(message, strictCues)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
