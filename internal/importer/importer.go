// Package importer merges skills from another catalog into the local one,
// applying exclude filtering and title/category conflict resolution.
package importer

import (
	"path/filepath"

	"github.com/kamusis/skillswap/internal/skillswap"
)

// ConflictPair records a conflict found during import.
type ConflictPair struct {
	Existing skillswap.Skill // row kept: from the local catalog, or an earlier source row
	Incoming skillswap.Skill // differing row from the source, not applied
	Source   string          // source catalog name

	// InSource is set when Existing is an earlier row of the same source
	// rather than a row of the local catalog.
	InSource bool
}

// Result is returned by Merge.
type Result struct {
	Skills    []skillswap.Skill // merged catalog
	Conflicts []ConflictPair
	Imported  int // rows appended
	Skipped   int // identical duplicates
	Excluded  int // rows dropped by an exclude pattern
}

type key struct{ title, category string }

// Merge appends the rows of src that dst does not already list. Rows are keyed
// by title and category: identical rows are skipped, and a row whose key exists
// with a different price is recorded as a conflict while the first row is kept.
// Neither input is modified.
func Merge(dst, src []skillswap.Skill, source string, excludes []string) *Result {
	result := &Result{Skills: make([]skillswap.Skill, len(dst), len(dst)+len(src))}
	copy(result.Skills, dst)

	seen := make(map[key]skillswap.Skill, len(dst)+len(src))
	local := make(map[key]bool, len(dst))
	for _, s := range dst {
		k := key{s.Title, s.Category}
		if _, ok := seen[k]; !ok {
			seen[k] = s
			local[k] = true
		}
	}

	for _, s := range src {
		if matchesExclude(s.Title, excludes) {
			result.Excluded++
			continue
		}
		k := key{s.Title, s.Category}
		existing, ok := seen[k]
		switch {
		case !ok:
			seen[k] = s
			result.Skills = append(result.Skills, s)
			result.Imported++
		case existing == s:
			result.Skipped++
		default:
			result.Conflicts = append(result.Conflicts, ConflictPair{
				Existing: existing,
				Incoming: s,
				Source:   source,
				InSource: !local[k],
			})
		}
	}
	return result
}

// matchesExclude reports whether title matches any of the given glob patterns.
func matchesExclude(title string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, title); matched {
			return true
		}
	}
	return false
}
