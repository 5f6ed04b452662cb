package rank

import "strings"

// Normalize lower-cases and trims every token. Order and duplicates are kept,
// so Normalize(Normalize(x)) == Normalize(x).
func Normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, normalizeToken(s))
	}
	return out
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
