package bazaraki

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const categoryPageHTML = `<!DOCTYPE html>
<html><body>
  <div class="listings">
    <a href="/en/item/iphone-15-pro-max-5551234">iPhone 15 Pro Max</a>
    <a href="/en/item/iphone-15-pro-max-5551234">Duplicate link to same item</a>
    <a href="https://www.bazaraki.com/en/item/macbook-air-7779999">MacBook Air</a>
    <a href="/en/search/electronics/mobile-phones/?page=2">Next</a>
    <a href="/adv/banner">Ad</a>
  </div>
</body></html>`

const detailPageHTML = `<!DOCTYPE html>
<html><body>
  <h1>iPhone 15 Pro Max 256GB</h1>
  <div class="price">€900</div>
  <div class="location">Nicosia</div>
  <div class="description">Τέλεια κατάσταση, με κουτί</div>
  <div class="seller-name">Maria</div>
  <div class="contact-info">99 123456</div>
  <div class="date-posted">2026-08-20</div>
  <div class="gallery">
    <img src="https://cdn.bazaraki.com/img/1.jpg">
    <img src="https://cdn.bazaraki.com/img/2.jpg">
    <img src="">
  </div>
</body></html>`

const sparseDetailPageHTML = `<!DOCTYPE html>
<html><body>
  <h1>Old Nokia phone</h1>
</body></html>`

func TestExtractListingLinks(t *testing.T) {
	links := ExtractListingLinks(categoryPageHTML)

	require.Len(t, links, 2)
	assert.Equal(t, "https://www.bazaraki.com/en/item/iphone-15-pro-max-5551234", links[0])
	assert.Equal(t, "https://www.bazaraki.com/en/item/macbook-air-7779999", links[1])
}

func TestExtractListingLinksEmptyPage(t *testing.T) {
	assert.Empty(t, ExtractListingLinks("<html><body><p>No results</p></body></html>"))
}

func TestExtractListing(t *testing.T) {
	url := "https://www.bazaraki.com/en/item/iphone-15-pro-max-5551234"
	raw := ExtractListing(detailPageHTML, url)

	assert.Equal(t, url, raw.URL)
	assert.Equal(t, "iPhone 15 Pro Max 256GB", raw.Title)
	assert.Equal(t, "€900", raw.RawPrice)
	assert.Equal(t, "Nicosia", raw.Location)
	assert.Equal(t, "Τέλεια κατάσταση, με κουτί", raw.Description)
	assert.Equal(t, "Maria", raw.SellerName)
	assert.Equal(t, "99 123456", raw.ContactInfo)
	assert.Equal(t, "2026-08-20", raw.PostedDate)
	assert.Equal(t, "Electronics", raw.Category)
	assert.Len(t, raw.Images, 2)
	assert.False(t, raw.ScrapedAt.IsZero())
}

func TestExtractListingFallbacks(t *testing.T) {
	raw := ExtractListing(sparseDetailPageHTML, "https://www.bazaraki.com/en/item/nokia-1")

	assert.Equal(t, "Old Nokia phone", raw.Title)
	assert.Equal(t, "0", raw.RawPrice)
	assert.Equal(t, "Cyprus", raw.Location)
	assert.Empty(t, raw.Description)
	assert.Equal(t, "N/A", raw.SellerName)
	assert.Equal(t, "N/A", raw.ContactInfo)
	assert.Equal(t, time.Now().Format("2006-01-02"), raw.PostedDate)
	assert.Empty(t, raw.Images)
}
