package storage

import (
	"sort"
	"sync"
	"time"

	"bazaraki-deals/models"
)

// MemoryStore is an in-memory DealStore. It is the fallback when PostgreSQL
// is unreachable, so a dead database never aborts a scan; reports are still
// produced from the in-memory records.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*Record
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

// Upsert stores or replaces the record for the listing's URL.
func (ms *MemoryStore) Upsert(l *models.Listing, referencePrice, dealScore float64) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.records[l.URL] = &Record{
		Listing:        *l,
		ReferencePrice: referencePrice,
		DealScore:      dealScore,
		ScrapedAt:      time.Now(),
	}
	return nil
}

// FetchAll returns all stored records ordered by deal score descending.
func (ms *MemoryStore) FetchAll() ([]*Record, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	records := make([]*Record, 0, len(ms.records))
	for _, r := range ms.records {
		records = append(records, r)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DealScore > records[j].DealScore
	})
	return records, nil
}

// Close is a no-op.
func (ms *MemoryStore) Close() error {
	return nil
}
