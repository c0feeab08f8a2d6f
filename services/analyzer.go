package services

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"bazaraki-deals/models"
	"bazaraki-deals/pricing"
	"bazaraki-deals/storage"
	"bazaraki-deals/utils"
)

// descriptionLimit is the hard cap on deal descriptions in reports.
const descriptionLimit = 200

// Analyzer runs the deal pipeline over cleaned listings: product matching,
// reference-price lookup, scoring, threshold filtering, persistence, and
// ranking.
type Analyzer struct {
	matcher *pricing.Matcher
	table   *pricing.Table
	scorer  pricing.Scorer
	store   storage.DealStore
	logger  *utils.Logger
}

// NewAnalyzer creates an Analyzer over the given reference table, scorer,
// and store.
func NewAnalyzer(table *pricing.Table, scorer pricing.Scorer, store storage.DealStore, logger *utils.Logger) *Analyzer {
	return &Analyzer{
		matcher: pricing.NewMatcher(table),
		table:   table,
		scorer:  scorer,
		store:   store,
		logger:  logger,
	}
}

// Analyze returns the qualifying deals ranked by deal score descending
// (ties keep scan order). Listings that match no product, have no reference
// price, or score below the threshold are excluded silently. A failed upsert
// is logged and never aborts the batch.
func (a *Analyzer) Analyze(listings []*models.Listing) []*models.Deal {
	deals := make([]*models.Deal, 0)

	for _, l := range listings {
		productID, condition := a.matcher.Identify(l.Title, l.Description)
		if productID == "" {
			a.logger.Debug("[analyzer] No product match: %s", l.Title)
			continue
		}

		referencePrice, ok := a.table.Lookup(productID, condition)
		if !ok {
			a.logger.Debug("[analyzer] No reference price for %s (%s)", productID, condition)
			continue
		}

		score := pricing.Score(l.Price, referencePrice)
		if !a.scorer.Qualifies(score) {
			a.logger.Debug("[analyzer] Below threshold (%.1f%%): %s", score, l.Title)
			continue
		}

		l.Condition = condition
		if err := a.store.Upsert(l, referencePrice, score); err != nil {
			a.logger.Warn("[analyzer] Failed to store %s: %v", l.URL, err)
		}

		deals = append(deals, &models.Deal{
			Title:       l.Title,
			Price:       l.Price,
			MarketPrice: referencePrice,
			DealScore:   score,
			Savings:     referencePrice - l.Price,
			Location:    l.Location,
			URL:         l.URL,
			Description: truncate(l.Description, descriptionLimit),
			Seller:      l.SellerName,
			PostedDate:  l.PostedDate,
			ProductType: humanise(productID),
			Condition:   titleCase(condition),
		})
	}

	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].DealScore > deals[j].DealScore
	})

	a.logger.Info("[analyzer] %d of %d listings qualified as deals", len(deals), len(listings))
	return deals
}

// truncate caps s at max characters, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}

// humanise turns a product identifier into its human-readable form,
// e.g. "iphone_15_pro_max" → "Iphone 15 Pro Max".
func humanise(productID string) string {
	return titleCase(strings.ReplaceAll(productID, "_", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
