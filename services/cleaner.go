package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"bazaraki-deals/models"
	"bazaraki-deals/utils"
)

// priceRegexp captures the numeric part of a price string.
var priceRegexp = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Fixed approximate conversion rates into EUR.
const (
	usdToEur = 0.92
	gbpToEur = 1.17
)

// Cleaner transforms RawListings into clean, validated Listings. Prices are
// normalised to EUR; records with no URL, a duplicate URL, or a price of
// zero or less are dropped before they reach the deal pipeline.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean processes raw listings and returns cleaned records.
func (c *Cleaner) Clean(raw []*models.RawListing) []*models.Listing {
	seen := make(map[string]struct{})
	result := make([]*models.Listing, 0, len(raw))

	for _, r := range raw {
		url := strings.TrimSpace(r.URL)
		if url == "" {
			c.logger.Warn("[cleaner] Dropping listing with empty URL: %s", r.Title)
			continue
		}

		if _, dup := seen[url]; dup {
			c.logger.Debug("[cleaner] Duplicate URL skipped: %s", url)
			continue
		}
		seen[url] = struct{}{}

		price, currency := c.parsePrice(r.RawPrice)
		if price <= 0 {
			c.logger.Debug("[cleaner] Dropping listing without a valid price: %s", url)
			continue
		}

		category := normaliseText(r.Category)
		if category == "" {
			category = "Electronics"
		}

		result = append(result, &models.Listing{
			Title:       normaliseText(r.Title),
			Price:       price,
			Currency:    currency,
			Location:    normaliseText(r.Location),
			URL:         url,
			Description: normaliseText(r.Description),
			PostedDate:  normaliseText(r.PostedDate),
			SellerName:  normaliseText(r.SellerName),
			ContactInfo: normaliseText(r.ContactInfo),
			Images:      r.Images,
			Category:    category,
		})
	}

	c.logger.Info("[cleaner] Cleaned %d → %d listings (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// parsePrice extracts a numeric price from raw text and converts it to EUR
// using fixed approximate rates. The returned currency is always "EUR".
// Examples:
//
//	"€1,450" → 1450.00
//	"$100"   → 92.00
//	"£100"   → 117.00
func (c *Cleaner) parsePrice(raw string) (float64, string) {
	if raw == "" {
		return 0, "EUR"
	}

	rate := 1.0
	switch {
	case strings.Contains(raw, "€"):
		rate = 1.0
	case strings.Contains(raw, "$"):
		rate = usdToEur
	case strings.Contains(raw, "£"):
		rate = gbpToEur
	}

	cleaned := strings.ReplaceAll(raw, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	match := priceRegexp.FindString(cleaned)
	if match == "" {
		return 0, "EUR"
	}

	price, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, "EUR"
	}

	return price * rate, "EUR"
}

// normaliseText strips leading/trailing whitespace and collapses internal
// whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
