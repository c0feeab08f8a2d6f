package bazaraki

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"bazaraki-deals/models"
)

const itemPathMarker = "/en/item/"

// Selectors for the listing detail page. Each selector list is tried in
// order; the first element with non-empty text wins.
const (
	selTitle       = "h1, .item-title, .listing-title"
	selPrice       = ".price, .item-price, .listing-price"
	selLocation    = ".location, .item-location"
	selDescription = ".description, .item-description, .listing-description"
	selSeller      = ".seller-name, .contact-name"
	selContact     = ".contact-info, .phone-number"
	selPostedDate  = ".date-posted, .posting-date"
	selImages      = ".gallery img, .listing-images img"
)

// ExtractListingLinks returns the unique listing detail URLs found on a
// rendered category page, in document order, absolutised against the site
// base URL.
func ExtractListingLinks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href*='" + itemPathMarker + "']").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if !strings.Contains(href, itemPathMarker) {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = baseURL + href
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		links = append(links, href)
	})

	return links
}

// ExtractListing pulls the detail fields out of a rendered listing page.
// Every field extractor reports presence; absent fields fall back to their
// documented defaults (location "Cyprus", posted date today, seller and
// contact "N/A") rather than failing the listing.
func ExtractListing(html, url string) *models.RawListing {
	raw := &models.RawListing{
		Title:       "N/A",
		RawPrice:    "0",
		Location:    "Cyprus",
		URL:         url,
		SellerName:  "N/A",
		ContactInfo: "N/A",
		PostedDate:  time.Now().Format("2006-01-02"),
		Category:    "Electronics",
		ScrapedAt:   time.Now(),
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return raw
	}

	if v, ok := firstText(doc, selTitle); ok {
		raw.Title = v
	}
	if v, ok := firstText(doc, selPrice); ok {
		raw.RawPrice = v
	}
	if v, ok := firstText(doc, selLocation); ok {
		raw.Location = v
	}
	if v, ok := firstText(doc, selDescription); ok {
		raw.Description = v
	}
	if v, ok := firstText(doc, selSeller); ok {
		raw.SellerName = v
	}
	if v, ok := firstText(doc, selContact); ok {
		raw.ContactInfo = v
	}
	if v, ok := firstText(doc, selPostedDate); ok {
		raw.PostedDate = v
	}

	doc.Find(selImages).Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && strings.TrimSpace(src) != "" {
			raw.Images = append(raw.Images, strings.TrimSpace(src))
		}
	})

	return raw
}

// firstText returns the trimmed text of the first element matching the
// selector list that has any, and whether one was found.
func firstText(doc *goquery.Document, selector string) (string, bool) {
	var out string
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			out = text
			return false
		}
		return true
	})
	return out, out != ""
}
