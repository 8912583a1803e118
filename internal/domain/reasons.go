package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxReasonLength caps each recommendation reason, in runes.
const MaxReasonLength = 60

// NormalizeReasons validates the model's id→reason mapping against the
// actual result set. Keys not present in the movie list, non-string values
// and blank values are dropped; overlong reasons are truncated.
func NormalizeReasons(data map[string]any, movies []Movie) map[string]string {
	out := make(map[string]string)

	reasons, ok := data["reasons"].(map[string]any)
	if !ok {
		return out
	}

	valid := make(map[string]struct{}, len(movies))
	for _, m := range movies {
		valid[strconv.FormatInt(m.TMDBID, 10)] = struct{}{}
	}

	for k, v := range reasons {
		id := strings.TrimSpace(k)
		if _, ok := valid[id]; !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		reason := strings.TrimSpace(s)
		if reason == "" {
			continue
		}
		if runes := []rune(reason); len(runes) > MaxReasonLength {
			reason = strings.TrimRightFunc(string(runes[:MaxReasonLength]), unicode.IsSpace)
		}
		out[id] = reason
	}
	return out
}
