package catalog

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// listingMeta is the YAML frontmatter of a LISTING.md document.
type listingMeta struct {
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Price       *float64 `yaml:"price"`
	Description string   `yaml:"description"`
}

// splitFrontmatter separates the leading "---" YAML block from the body.
// ok is false when the document has no parseable frontmatter.
func splitFrontmatter(content string) (meta listingMeta, body string, ok bool) {
	s := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(s, "---") {
		return listingMeta{}, content, false
	}

	parts := strings.SplitN(s, "---", 3)
	if len(parts) < 3 {
		return listingMeta{}, content, false
	}

	fmText := strings.TrimSpace(parts[1])
	body = strings.TrimPrefix(parts[2], "\n")

	if err := yaml.Unmarshal([]byte(fmText), &meta); err != nil {
		return listingMeta{}, content, false
	}
	return meta, body, true
}
