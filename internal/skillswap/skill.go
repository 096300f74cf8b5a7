// Package skillswap holds the listing model and the pure helpers used to
// browse, price and match skill-exchange listings.
//
// Every function here is side-effect free: inputs are never mutated and each
// call returns a freshly allocated slice, so callers may share catalogs across
// goroutines without locking.
package skillswap

// AllCategories is the category wildcard accepted by FilterSkillsByCategory.
const AllCategories = "All"

// Skill is one listed offering.
type Skill struct {
	Title    string  `yaml:"title" json:"title"`
	Category string  `yaml:"category" json:"category"`
	Price    float64 `yaml:"price" json:"price"`
}

// UserNeeds is the caller's category and price ceiling used for matching.
type UserNeeds struct {
	Category string
	MaxPrice float64
}

// filter returns the stable subsequence of skills accepted by keep.
func filter(skills []Skill, keep func(Skill) bool) []Skill {
	out := make([]Skill, 0, len(skills))
	for _, s := range skills {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
