package domain

// Reconcile merges the model-derived filter with exclusions extracted from
// the raw message. Message-derived exclusions are unioned in after the
// model's (model-derived first, order preserved) so an exclusion the model
// missed is still enforced. Include-title candidates that ended up excluded
// are dropped.
func Reconcile(f Filter, msgExcludeGenres, msgExcludeTitles []string) Filter {
	f.ExcludeGenres = dedupeUnion(f.ExcludeGenres, msgExcludeGenres)
	f.ExcludeTitles = dedupeUnion(f.ExcludeTitles, msgExcludeTitles)
	f.Titles = without(f.Titles, f.ExcludeTitles)
	return f
}

func dedupeUnion(first, second []string) []string {
	out := make([]string, 0, len(first)+len(second))
	seen := make(map[string]struct{}, len(first)+len(second))
	for _, s := range first {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range second {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
