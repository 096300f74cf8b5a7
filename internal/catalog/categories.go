package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kamusis/skillswap/internal/skillswap"
)

// CategoryCount is one category and how many skills are filed under it.
type CategoryCount struct {
	Name  string
	Count int
}

// Categories returns the distinct categories of skills ordered by the
// collation rules of tag. Names that collate equal, such as "Music" and
// "music", fall back to byte order.
func Categories(skills []skillswap.Skill, tag language.Tag) []CategoryCount {
	counts := make(map[string]int)
	names := make([]string, 0)
	for _, s := range skills {
		if _, seen := counts[s.Category]; !seen {
			names = append(names, s.Category)
		}
		counts[s.Category]++
	}

	c := collate.New(tag, collate.IgnoreCase)
	sort.Slice(names, func(i, j int) bool {
		if r := c.CompareString(names[i], names[j]); r != 0 {
			return r < 0
		}
		return names[i] < names[j]
	})

	out := make([]CategoryCount, 0, len(names))
	for _, n := range names {
		out = append(out, CategoryCount{Name: n, Count: counts[n]})
	}
	return out
}
