// Package tips selects the tip of the day from an ordered catalog.
//
// Rotation is keyed by calendar day-of-year, not by process uptime, so a
// restart or a missed delivery never corrupts the sequence: the same local
// date always maps to the same tip.
package tips

import (
	"errors"
	"time"
)

// ErrEmptyCatalog is returned by New for a catalog with no tips.
var ErrEmptyCatalog = errors.New("tip catalog is empty")

// Catalog is an immutable ordered list of tips.
type Catalog struct {
	tips []string
}

// New builds a catalog from the given tips. The list must be non-empty;
// it is copied, the caller's slice is never retained.
func New(list []string) (*Catalog, error) {
	if len(list) == 0 {
		return nil, ErrEmptyCatalog
	}
	cp := make([]string, len(list))
	copy(cp, list)
	return &Catalog{tips: cp}, nil
}

// ForDate returns the tip for t's calendar date. t must already be in the
// user's timezone so the rotation boundary is the user's local midnight.
func (c *Catalog) ForDate(t time.Time) string {
	return c.tips[t.YearDay()%len(c.tips)]
}

// Len reports the catalog size.
func (c *Catalog) Len() int { return len(c.tips) }
