package models

import "time"

// RawListing holds unprocessed scraped data directly from the browser.
// All fields stay strings until the cleaner has validated them.
type RawListing struct {
	Title       string
	RawPrice    string
	Location    string
	URL         string
	Description string
	PostedDate  string
	SellerName  string
	ContactInfo string
	Images      []string
	Category    string
	ScrapedAt   time.Time
}

// Listing is the cleaned, validated record consumed by the deal pipeline.
// Price is always in EUR after currency normalisation.
type Listing struct {
	Title       string
	Price       float64
	Currency    string
	Location    string
	URL         string
	Description string
	PostedDate  string
	SellerName  string
	ContactInfo string
	Images      []string
	Category    string
	Brand       string
	Model       string
	Condition   string
}

// Deal is a listing priced sufficiently below its matched reference price.
// The JSON tags define the field names of the structured export.
type Deal struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	MarketPrice float64 `json:"market_price"`
	DealScore   float64 `json:"deal_score"`
	Savings     float64 `json:"savings"`
	Location    string  `json:"location"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Seller      string  `json:"seller"`
	PostedDate  string  `json:"posted_date"`
	ProductType string  `json:"product_type"`
	Condition   string  `json:"condition"`
}

// ScanSummary holds the run counters that are always reported, even when
// parts of the run failed.
type ScanSummary struct {
	ListingsFetched  int
	ListingsCleaned  int
	DealsFound       int
	ArtifactsWritten []string
}
