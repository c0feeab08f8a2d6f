package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaraki-deals/models"
	"bazaraki-deals/utils"
)

func testDeals() []*models.Deal {
	// Deliberately out of order to prove the exporter ranks before writing.
	return []*models.Deal{
		{
			Title: "iPhone 13 ok price", Price: 340, MarketPrice: 400,
			DealScore: 15, Savings: 60,
			Location: "Λευκωσία", URL: "https://www.bazaraki.com/en/item/1?a=b&c=d",
			Description: "Καλή κατάσταση", Seller: "Maria", PostedDate: "2026-08-20",
			ProductType: "Iphone 13", Condition: "Used",
		},
		{
			Title: "iPhone 13 bargain", Price: 240, MarketPrice: 400,
			DealScore: 40, Savings: 160,
			Location: "Limassol", URL: "https://www.bazaraki.com/en/item/2",
			Description: "Screen like new", Seller: "N/A", PostedDate: "2026-08-21",
			ProductType: "Iphone 13", Condition: "New",
		},
		{
			Title: "iPhone 13 decent", Price: 300, MarketPrice: 400,
			DealScore: 25, Savings: 100,
			Location: "Paphos", URL: "https://www.bazaraki.com/en/item/3",
			Description: "", Seller: "Andreas", PostedDate: "2026-08-19",
			ProductType: "Iphone 13", Condition: "Used",
		},
	}
}

func TestExportEmptyProducesNothing(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, true, true, true, utils.NewLogger())

	artifacts, err := e.Export(nil)
	assert.NoError(t, err)
	assert.Empty(t, artifacts)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportWritesAllFormats(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, true, true, true, utils.NewLogger())

	artifacts, err := e.Export(testDeals())
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	for _, path := range artifacts {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Greater(t, info.Size(), int64(0), path)
	}
}

func TestExportCSVRankedRows(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, true, false, false, utils.NewLogger())

	artifacts, err := e.Export(testDeals())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, ".csv", filepath.Ext(artifacts[0]))

	f, err := os.Open(artifacts[0])
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, dealFields, rows[0])
	assert.Equal(t, "iPhone 13 bargain", rows[1][0])
	assert.Equal(t, "40.00", rows[1][3])
	assert.Equal(t, "iPhone 13 decent", rows[2][0])
	assert.Equal(t, "iPhone 13 ok price", rows[3][0])

	// No leftover temp file from the atomic write.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExportJSONStableKeysAndUTF8(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, false, true, false, utils.NewLogger())

	artifacts, err := e.Export(testDeals())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	data, err := os.ReadFile(artifacts[0])
	require.NoError(t, err)

	var decoded []models.Deal
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, 40.0, decoded[0].DealScore)
	assert.Equal(t, 25.0, decoded[1].DealScore)
	assert.Equal(t, 15.0, decoded[2].DealScore)

	text := string(data)
	for _, key := range dealFields {
		assert.Contains(t, text, `"`+key+`"`)
	}
	// UTF-8 survives verbatim, and URLs are not HTML-escaped.
	assert.Contains(t, text, "Λευκωσία")
	assert.Contains(t, text, "https://www.bazaraki.com/en/item/1?a=b&c=d")
	assert.NotContains(t, text, "u0026")
}

func TestExportHTMLReportContents(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, false, false, true, utils.NewLogger())

	artifacts, err := e.Export(testDeals())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	data, err := os.ReadFile(artifacts[0])
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "Generated on:")
	assert.Contains(t, html, "Total deals found: 3")
	assert.Contains(t, html, "iPhone 13 bargain")
	assert.Contains(t, html, "€240.00")
	assert.Contains(t, html, "40.0%")
	assert.Contains(t, html, `href="https://www.bazaraki.com/en/item/2"`)
	assert.Contains(t, html, "View Listing")

	// The bargain (score 40) must appear before the ok price (score 15).
	assert.Less(t, strings.Index(html, "iPhone 13 bargain"), strings.Index(html, "iPhone 13 ok price"))
}

func TestExportDisabledFormats(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, false, false, false, utils.NewLogger())

	artifacts, err := e.Export(testDeals())
	assert.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestExportDoesNotMutateInput(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, true, false, false, utils.NewLogger())

	deals := testDeals()
	_, err := e.Export(deals)
	require.NoError(t, err)

	assert.Equal(t, 15.0, deals[0].DealScore)
	assert.Equal(t, 40.0, deals[1].DealScore)
}
