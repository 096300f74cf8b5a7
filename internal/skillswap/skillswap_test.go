package skillswap

import (
	"slices"
	"testing"
)

var browseSkills = []Skill{
	{Title: "Python Tutoring", Category: "Programming", Price: 20},
	{Title: "Guitar Lessons", Category: "Music", Price: 15},
	{Title: "Resume Review", Category: "Career", Price: 0},
	{Title: "Web Development", Category: "Programming", Price: 25},
}

var matchSkills = []Skill{
	{Title: "Python Tutoring", Category: "Programming", Price: 20},
	{Title: "JavaScript Help", Category: "Programming", Price: 25},
	{Title: "Guitar Lessons", Category: "Music", Price: 15},
	{Title: "Resume Review", Category: "Career", Price: 0},
}

func titles(skills []Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Title)
	}
	return out
}

func TestFilterSkillsByCategory(t *testing.T) {
	tests := []struct {
		name     string
		skills   []Skill
		category string
		want     []string
	}{
		{"programming", browseSkills, "Programming", []string{"Python Tutoring", "Web Development"}},
		{"all wildcard", browseSkills, "All", []string{"Python Tutoring", "Guitar Lessons", "Resume Review", "Web Development"}},
		{"no match", browseSkills, "Cooking", []string{}},
		{"case sensitive", browseSkills, "programming", []string{}},
		{"no trimming", browseSkills, " Music", []string{}},
		{"nil input", nil, "Music", []string{}},
		{"nil input all", nil, "All", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSkillsByCategory(tt.skills, tt.category)
			if got == nil {
				t.Fatalf("expected non-nil slice")
			}
			if !slices.Equal(titles(got), tt.want) {
				t.Fatalf("got %v, want %v", titles(got), tt.want)
			}
		})
	}
}

func TestFilterSkillsByCategory_AllEqualsInput(t *testing.T) {
	got := FilterSkillsByCategory(browseSkills, AllCategories)
	if !slices.Equal(got, browseSkills) {
		t.Fatalf("got %v, want %v", got, browseSkills)
	}
	// Result must not alias the input.
	got[0].Title = "changed"
	if browseSkills[0].Title != "Python Tutoring" {
		t.Fatalf("input mutated through result: %q", browseSkills[0].Title)
	}
}

func TestFilterSkillsByCategory_SubsequenceProperty(t *testing.T) {
	for _, category := range []string{"Programming", "Music", "Career", "Cooking", ""} {
		got := FilterSkillsByCategory(browseSkills, category)
		var want []Skill
		for _, s := range browseSkills {
			if s.Category == category {
				want = append(want, s)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("%q: got %d skills, want %d", category, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%q: index %d: got %+v, want %+v", category, i, got[i], want[i])
			}
		}
	}
}

func TestCalculateTotalCost(t *testing.T) {
	tests := []struct {
		name        string
		rate, hours float64
		want        float64
	}{
		{"rate and hours", 20, 2, 40},
		{"free session", 0, 3, 0},
		{"decimal hours", 25, 1.5, 37.5},
		{"zero hours", 20, 0, 0},
		{"fractional rate", 12.5, 4, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateTotalCost(tt.rate, tt.hours); got != tt.want {
				t.Fatalf("CalculateTotalCost(%v, %v) = %v, want %v", tt.rate, tt.hours, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalCost_IsProduct(t *testing.T) {
	for _, r := range []float64{0, 0.1, 7, 19.99, 100} {
		for _, h := range []float64{0, 0.25, 1, 1.5, 3.3} {
			if got := CalculateTotalCost(r, h); got != r*h {
				t.Fatalf("CalculateTotalCost(%v, %v) = %v, want %v", r, h, got, r*h)
			}
		}
	}
}

func TestMatchSkillsToUser(t *testing.T) {
	tests := []struct {
		name  string
		needs UserNeeds
		want  []string
	}{
		{"category and price", UserNeeds{Category: "Programming", MaxPrice: 30}, []string{"Python Tutoring", "JavaScript Help"}},
		{"price ceiling inclusive", UserNeeds{Category: "Programming", MaxPrice: 20}, []string{"Python Tutoring"}},
		{"no matches", UserNeeds{Category: "Cooking", MaxPrice: 100}, []string{}},
		{"free skills at zero", UserNeeds{Category: "Career", MaxPrice: 0}, []string{"Resume Review"}},
		{"no wildcard", UserNeeds{Category: "All", MaxPrice: 100}, []string{}},
		{"below every price", UserNeeds{Category: "Music", MaxPrice: 14.99}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchSkillsToUser(tt.needs, matchSkills)
			if got == nil {
				t.Fatalf("expected non-nil slice")
			}
			if !slices.Equal(titles(got), tt.want) {
				t.Fatalf("got %v, want %v", titles(got), tt.want)
			}
		})
	}
}

func TestMatchSkillsToUser_DoesNotMutateInput(t *testing.T) {
	before := slices.Clone(matchSkills)
	got := MatchSkillsToUser(UserNeeds{Category: "Programming", MaxPrice: 30}, matchSkills)
	got[0].Price = 999
	if !slices.Equal(matchSkills, before) {
		t.Fatalf("input mutated: %v", matchSkills)
	}
}
