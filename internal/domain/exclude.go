package domain

import (
	"regexp"
	"strings"
)

// excludePattern matches "<term> (optional particle) <exclusion verb>",
// e.g. "체인소맨 빼고" or "애니메이션은 제외해줘". The term capture is
// non-greedy so trailing particles stay out of it.
var (
	excludePattern   = regexp.MustCompile(`([가-힣A-Za-z0-9\s·:_\-]+?)\s*(?:은|는|을|를)?\s*(?:빼고|제외|말고|빼줘|제외해|제외해줘)`)
	separatorPattern = regexp.MustCompile(`[,\n]|그리고|랑|하고|&|/`)
)

// ParseExclusions scans the raw message for explicit exclusion phrases and
// classifies each extracted term: vocabulary genre names go into the genre
// bucket, everything else is treated as a title fragment. Both buckets are
// deduplicated, order preserved. The scan is independent of the model's
// interpretation and always takes precedence over it.
func ParseExclusions(message string) (excludeGenres, excludeTitles []string) {
	excludeGenres = []string{}
	excludeTitles = []string{}
	if message == "" {
		return excludeGenres, excludeTitles
	}

	seenGenres := make(map[string]struct{})
	seenTitles := make(map[string]struct{})

	for _, match := range excludePattern.FindAllStringSubmatch(message, -1) {
		term := strings.TrimSpace(match[1])
		term = strings.TrimSpace(strings.ReplaceAll(term, "영화", ""))
		if term == "" {
			continue
		}

		for _, part := range separatorPattern.Split(term, -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if IsGenre(part) {
				if _, ok := seenGenres[part]; !ok {
					seenGenres[part] = struct{}{}
					excludeGenres = append(excludeGenres, part)
				}
			} else if _, ok := seenTitles[part]; !ok {
				seenTitles[part] = struct{}{}
				excludeTitles = append(excludeTitles, part)
			}
		}
	}
	return excludeGenres, excludeTitles
}
