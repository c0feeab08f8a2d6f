package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	table := DefaultTable()

	price, ok := table.Lookup("iphone_15_pro_max", ConditionUsed)
	assert.True(t, ok)
	assert.Equal(t, 1100.0, price)

	price, ok = table.Lookup("iphone_15_pro_max", ConditionNew)
	assert.True(t, ok)
	assert.Equal(t, 1300.0, price)
}

func TestLookupUnknownProduct(t *testing.T) {
	table := DefaultTable()

	_, ok := table.Lookup("commodore_64", ConditionUsed)
	assert.False(t, ok)
}

func TestLookupUnknownCondition(t *testing.T) {
	table := DefaultTable()

	_, ok := table.Lookup("iphone_13", "mint")
	assert.False(t, ok)
}

func TestKeywordOrderLongestFirst(t *testing.T) {
	table := NewTable([]Entry{
		{ID: "short", Used: 1, New: 2, Keywords: []string{"acme"}},
		{ID: "long", Used: 3, New: 4, Keywords: []string{"acme deluxe"}},
	})

	// Even though "short" was inserted first, the longer keyword takes
	// priority when both match.
	id, ok := table.match("the acme deluxe model")
	assert.True(t, ok)
	assert.Equal(t, "long", id)

	id, ok = table.match("plain acme model")
	assert.True(t, ok)
	assert.Equal(t, "short", id)

	_, ok = table.match("unrelated text")
	assert.False(t, ok)
}
