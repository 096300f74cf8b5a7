package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamusis/skillswap/internal/skillswap"
)

// ListingFile is the document name looked for under each listing directory.
const ListingFile = "LISTING.md"

// DiscoverListings scans dir/*/LISTING.md and returns the parsed listings
// ordered by directory name. A missing dir yields no listings.
func DiscoverListings(dir string) ([]Listing, error) {
	if dir == "" {
		return []Listing{}, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Listing{}, nil
		}
		return nil, fmt.Errorf("cannot stat listings directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("listings path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot scan listings: %w", err)
	}

	// Only immediate subdirectories hold listings; ReadDir returns them sorted.
	out := []Listing{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		id := e.Name()
		path := filepath.Join(dir, id, ListingFile)

		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}
		l, err := parseListing(id, string(b))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		l.Path = id
		out = append(out, l)
	}
	return out, nil
}

func parseListing(id, content string) (Listing, error) {
	meta, body, ok := splitFrontmatter(content)
	if !ok {
		return Listing{}, fmt.Errorf("%w: frontmatter", ErrMissingField)
	}
	if meta.Price == nil {
		return Listing{}, fmt.Errorf("%w: price", ErrMissingField)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = id
	}
	desc := strings.TrimSpace(meta.Description)
	if desc == "" {
		desc = inferDescriptionFromBody(body)
	}

	s := skillswap.Skill{
		Title:    title,
		Category: meta.Category,
		Price:    *meta.Price,
	}
	if err := Validate(s); err != nil {
		return Listing{}, err
	}
	return Listing{Skill: s, ID: id, Description: desc}, nil
}

func inferDescriptionFromBody(body string) string {
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		return ln
	}
	return ""
}
