package catalog

import (
	"strings"
)

// KeywordSearch returns listings whose title, category or description contain
// every query token (case-insensitive), in catalog order. limit > 0 caps the
// number of results.
func KeywordSearch(listings []Listing, query string, limit int) []Listing {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return []Listing{}
	}

	out := []Listing{}
	for _, l := range listings {
		blob := strings.ToLower(strings.Join([]string{l.Title, l.Category, l.Description}, "\n"))
		ok := true
		for _, tok := range tokens {
			if !strings.Contains(blob, tok) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		out = append(out, l)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func tokenize(q string) []string {
	parts := strings.Fields(q)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.ToLower(p))
	}
	return out
}
