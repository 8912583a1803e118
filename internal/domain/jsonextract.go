package domain

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?i)```(?:json)?")

// ExtractJSONObject pulls a JSON object out of possibly noisy model output.
// Code fences are stripped case-insensitively, then the span from the first
// '{' to the last '}' is parsed strictly. The span is not brace-balance
// aware; this mirrors the upstream extraction contract.
func ExtractJSONObject(text string) (map[string]any, bool) {
	if text == "" {
		return nil, false
	}
	text = strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}
