package storage

import (
	"time"

	"bazaraki-deals/models"
)

// Record is the persisted shape of an observed listing: every listing field
// plus the matched reference price, the computed deal score, and the write
// timestamp.
type Record struct {
	Listing        models.Listing
	ReferencePrice float64
	DealScore      float64
	ScrapedAt      time.Time
}

// DealStore persists observed listings keyed by URL. Re-observing a URL
// replaces the stored record (last write wins).
type DealStore interface {
	Upsert(listing *models.Listing, referencePrice, dealScore float64) error
	FetchAll() ([]*Record, error)
	Close() error
}
