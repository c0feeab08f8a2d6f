package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bazaraki-deals/models"
	"bazaraki-deals/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

func TestCleanerParsePrice(t *testing.T) {
	c := NewCleaner(newTestLogger())

	tests := []struct {
		raw  string
		want float64
	}{
		{"€450", 450},
		{"€1,200.50", 1200.50},
		{"1 500 €", 1500},
		{"$100", 92},    // USD converted at 0.92
		{"£100", 117},   // GBP converted at 1.17
		{"450", 450},    // no symbol defaults to EUR
		{"", 0},
		{"negotiable", 0},
	}

	for _, tt := range tests {
		got, currency := c.parsePrice(tt.raw)
		assert.InDelta(t, tt.want, got, 0.001, "parsePrice(%q)", tt.raw)
		assert.Equal(t, "EUR", currency)
	}
}

func TestCleanerDropsInvalidListings(t *testing.T) {
	c := NewCleaner(newTestLogger())

	raw := []*models.RawListing{
		{Title: "No URL", RawPrice: "€100", URL: ""},
		{Title: "Free item", RawPrice: "0", URL: "https://www.bazaraki.com/en/item/1"},
		{Title: "Keeper", RawPrice: "€200", URL: "https://www.bazaraki.com/en/item/2"},
	}

	cleaned := c.Clean(raw)
	assert.Len(t, cleaned, 1)
	assert.Equal(t, "Keeper", cleaned[0].Title)
	assert.Equal(t, 200.0, cleaned[0].Price)
}

func TestCleanerDeduplicatesURL(t *testing.T) {
	c := NewCleaner(newTestLogger())

	raw := []*models.RawListing{
		{Title: "First", RawPrice: "€100", URL: "https://www.bazaraki.com/en/item/1"},
		{Title: "Second", RawPrice: "€90", URL: "https://www.bazaraki.com/en/item/1"},
	}

	cleaned := c.Clean(raw)
	assert.Len(t, cleaned, 1)
	assert.Equal(t, "First", cleaned[0].Title)
}

func TestCleanerNormalisesText(t *testing.T) {
	c := NewCleaner(newTestLogger())

	raw := []*models.RawListing{
		{
			Title:    "  iPhone   13 \n 128GB  ",
			RawPrice: "€300",
			URL:      "https://www.bazaraki.com/en/item/1",
			Location: " Limassol ",
		},
	}

	cleaned := c.Clean(raw)
	assert.Len(t, cleaned, 1)
	assert.Equal(t, "iPhone 13 128GB", cleaned[0].Title)
	assert.Equal(t, "Limassol", cleaned[0].Location)
	assert.Equal(t, "Electronics", cleaned[0].Category)
}
