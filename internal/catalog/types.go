// Package catalog loads skill listings from a YAML catalog file and from a
// directory of LISTING.md documents, and offers keyword lookup over them.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/kamusis/skillswap/internal/skillswap"
)

var (
	// ErrMissingField indicates a listing without a title or category.
	ErrMissingField = errors.New("listing is missing a required field")
	// ErrNegativePrice indicates a listing priced below zero.
	ErrNegativePrice = errors.New("listing price is negative")
	// ErrInvalidPrice indicates a NaN or infinite price.
	ErrInvalidPrice = errors.New("listing price is not a finite number")
)

// Listing is a skill together with where it came from.
type Listing struct {
	skillswap.Skill

	ID          string // directory name for LISTING.md entries, empty for catalog file rows
	Path        string // slash-separated, relative to the listings root
	Description string
}

// Catalog is an ordered set of listings.
type Catalog struct {
	Listings []Listing
}

// Skills returns the bare skills of the catalog in listing order.
func (c *Catalog) Skills() []skillswap.Skill {
	out := make([]skillswap.Skill, 0, len(c.Listings))
	for _, l := range c.Listings {
		out = append(out, l.Skill)
	}
	return out
}

// Validate reports whether s can be listed.
func Validate(s skillswap.Skill) error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if strings.TrimSpace(s.Category) == "" {
		return fmt.Errorf("%w: category (%s)", ErrMissingField, s.Title)
	}
	if math.IsNaN(s.Price) || math.IsInf(s.Price, 0) {
		return fmt.Errorf("%w: %s (%v)", ErrInvalidPrice, s.Title, s.Price)
	}
	if s.Price < 0 {
		return fmt.Errorf("%w: %s (%v)", ErrNegativePrice, s.Title, s.Price)
	}
	return nil
}
