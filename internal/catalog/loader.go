package catalog

import (
	"go.uber.org/zap"
)

// Loader assembles a Catalog from the catalog file and the listings directory.
type Loader struct {
	CatalogPath string
	ListingsDir string
	Logger      *zap.Logger
}

// Load returns catalog file rows followed by discovered listings.
func (ld *Loader) Load() (*Catalog, error) {
	log := ld.Logger
	if log == nil {
		log = zap.NewNop()
	}

	skills, err := LoadFile(ld.CatalogPath)
	if err != nil {
		return nil, err
	}
	log.Debug("catalog file loaded", zap.String("path", ld.CatalogPath), zap.Int("skills", len(skills)))

	listings, err := DiscoverListings(ld.ListingsDir)
	if err != nil {
		return nil, err
	}
	log.Debug("listings discovered", zap.String("dir", ld.ListingsDir), zap.Int("listings", len(listings)))

	c := &Catalog{Listings: make([]Listing, 0, len(skills)+len(listings))}
	for _, s := range skills {
		c.Listings = append(c.Listings, Listing{Skill: s})
	}
	c.Listings = append(c.Listings, listings...)
	return c, nil
}
