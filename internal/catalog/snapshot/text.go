package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/kamusis/skillswap/internal/catalog"
)

// CanonicalText returns the text a row's hash is computed from.
func CanonicalText(l catalog.Listing) string {
	parts := []string{
		"title: " + l.Title,
		"category: " + l.Category,
		"price: " + strconv.FormatFloat(l.Price, 'g', -1, 64),
	}
	if d := strings.TrimSpace(l.Description); d != "" {
		parts = append(parts, "description: "+d)
	}
	return strings.Join(parts, "\n")
}

// TextHash returns a sha256 hash (hex) of the canonical text.
func TextHash(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// ListingToRow converts a listing into its snapshot row.
func ListingToRow(l catalog.Listing) Row {
	return Row{
		Title:       l.Title,
		Category:    l.Category,
		Price:       l.Price,
		ID:          l.ID,
		Description: l.Description,
		Hash:        TextHash(CanonicalText(l)),
	}
}
