package pricing

import (
	"sort"
	"strings"
)

// Condition values used throughout the pipeline.
const (
	ConditionUsed = "used"
	ConditionNew  = "new"
)

// Entry is one reference-price row: a product identifier, its typical used
// and new market prices in EUR, and the lowercase keywords that identify it
// in free text.
type Entry struct {
	ID       string
	Used     float64
	New      float64
	Keywords []string
}

type keywordRef struct {
	keyword   string
	productID string
}

// Table is an immutable reference-price table. It is constructed once at
// startup and passed explicitly to the matcher and analyzer.
//
// Keyword matching order is explicit and stable: longest keyword first, with
// table insertion order breaking ties. This guarantees that a more specific
// keyword ("iphone 15 pro max") always wins over a shorter one ("iphone 15")
// contained in the same text.
type Table struct {
	entries  []Entry
	byID     map[string]Entry
	keywords []keywordRef
}

// NewTable builds a Table from the given entries, precomputing the keyword
// match order.
func NewTable(entries []Entry) *Table {
	t := &Table{
		entries: entries,
		byID:    make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		t.byID[e.ID] = e
		for _, kw := range e.Keywords {
			t.keywords = append(t.keywords, keywordRef{keyword: kw, productID: e.ID})
		}
	}
	sort.SliceStable(t.keywords, func(i, j int) bool {
		return len(t.keywords[i].keyword) > len(t.keywords[j].keyword)
	})
	return t
}

// Lookup returns the reference price for the given product and condition.
// The second return value is false for an unknown product or condition.
func (t *Table) Lookup(productID, condition string) (float64, bool) {
	e, ok := t.byID[productID]
	if !ok {
		return 0, false
	}
	switch condition {
	case ConditionUsed:
		return e.Used, true
	case ConditionNew:
		return e.New, true
	default:
		return 0, false
	}
}

// Entries returns a copy of the table rows in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// match returns the identifier of the highest-priority entry with a keyword
// contained in text, or false if nothing matches. text must be lowercased.
func (t *Table) match(text string) (string, bool) {
	for _, ref := range t.keywords {
		if strings.Contains(text, ref.keyword) {
			return ref.productID, true
		}
	}
	return "", false
}

// DefaultTable returns the built-in electronics reference table, with
// average used/new market prices in EUR.
func DefaultTable() *Table {
	return NewTable([]Entry{
		// iPhones
		{ID: "iphone_15_pro_max", Used: 1100, New: 1300, Keywords: []string{"iphone 15 pro max", "iphone15 pro max"}},
		{ID: "iphone_15_pro", Used: 900, New: 1100, Keywords: []string{"iphone 15 pro", "iphone15 pro"}},
		{ID: "iphone_15", Used: 700, New: 900, Keywords: []string{"iphone 15", "iphone15"}},
		{ID: "iphone_14_pro_max", Used: 800, New: 1000, Keywords: []string{"iphone 14 pro max", "iphone14 pro max"}},
		{ID: "iphone_14_pro", Used: 650, New: 850, Keywords: []string{"iphone 14 pro", "iphone14 pro"}},
		{ID: "iphone_14", Used: 500, New: 700, Keywords: []string{"iphone 14", "iphone14"}},
		{ID: "iphone_13_pro_max", Used: 600, New: 800, Keywords: []string{"iphone 13 pro max", "iphone13 pro max"}},
		{ID: "iphone_13_pro", Used: 500, New: 700, Keywords: []string{"iphone 13 pro", "iphone13 pro"}},
		{ID: "iphone_13", Used: 400, New: 600, Keywords: []string{"iphone 13", "iphone13"}},

		// Laptops
		{ID: "macbook_pro_16", Used: 2000, New: 2500, Keywords: []string{"macbook pro 16", `macbook pro 16"`, "macbook pro 16 inch"}},
		{ID: "macbook_pro_14", Used: 1500, New: 2000, Keywords: []string{"macbook pro 14", `macbook pro 14"`, "macbook pro 14 inch"}},
		{ID: "macbook_air_15", Used: 1200, New: 1500, Keywords: []string{"macbook air 15", `macbook air 15"`, "macbook air 15 inch"}},
		{ID: "macbook_air_13", Used: 800, New: 1200, Keywords: []string{"macbook air 13", `macbook air 13"`, "macbook air 13 inch"}},
		{ID: "dell_xps_15", Used: 1000, New: 1500, Keywords: []string{"dell xps 15", "xps 15"}},
		{ID: "dell_xps_13", Used: 700, New: 1200, Keywords: []string{"dell xps 13", "xps 13"}},
		{ID: "lenovo_thinkpad_x1", Used: 800, New: 1500, Keywords: []string{"thinkpad x1", "lenovo x1"}},
		{ID: "surface_laptop", Used: 600, New: 1200, Keywords: []string{"surface laptop", "microsoft surface laptop"}},
		{ID: "hp_spectre", Used: 700, New: 1300, Keywords: []string{"hp spectre", "spectre laptop"}},
		{ID: "asus_zenbook", Used: 500, New: 1000, Keywords: []string{"asus zenbook", "zenbook"}},
		{ID: "gaming_laptop", Used: 800, New: 1500, Keywords: []string{"gaming laptop", "rog laptop", "msi gaming"}},
	})
}
