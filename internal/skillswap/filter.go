package skillswap

// FilterSkillsByCategory returns the skills whose Category equals category
// exactly (case-sensitive, untrimmed), in input order. The AllCategories
// wildcard returns a copy of skills unchanged.
func FilterSkillsByCategory(skills []Skill, category string) []Skill {
	if category == AllCategories {
		out := make([]Skill, len(skills))
		copy(out, skills)
		return out
	}
	return filter(skills, func(s Skill) bool {
		return s.Category == category
	})
}

// MatchSkillsToUser returns the skills in needs.Category priced at or below
// needs.MaxPrice, in input order. There is no wildcard here: "All" only
// matches listings literally filed under "All".
func MatchSkillsToUser(needs UserNeeds, skills []Skill) []Skill {
	return filter(skills, func(s Skill) bool {
		return s.Category == needs.Category && s.Price <= needs.MaxPrice
	})
}
