package bazaraki

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"bazaraki-deals/config"
	"bazaraki-deals/models"
	"bazaraki-deals/utils"
)

const (
	baseURL = "https://www.bazaraki.com"

	// Hard cap on detail pages fetched per category page, to avoid
	// hammering the site.
	listingsPerPage = 20

	renderSettle = 2 * time.Second
	pageTimeout  = 60 * time.Second
)

type category struct {
	Slug string
	Path string
}

// categories lists the electronics sections in scan order.
var categories = []category{
	{"mobile-phones", "/en/search/electronics/mobile-phones/"},
	{"computers-laptops", "/en/search/electronics/computers-laptops/"},
	{"tablets", "/en/search/electronics/tablets/"},
	{"audio-video", "/en/search/electronics/audio-video/"},
	{"cameras", "/en/search/electronics/cameras/"},
	{"gaming", "/en/search/electronics/gaming/"},
	{"smartwatches-wearables", "/en/search/electronics/smartwatches-wearables/"},
}

// Scraper drives the sequential, paced crawl of bazaraki electronics
// categories. Pages are rendered headlessly; field extraction happens on the
// rendered HTML (see extract.go).
type Scraper struct {
	cfg     *config.Config
	logger  *utils.Logger
	pacer   *utils.Pacer
	visited *utils.URLSet
	retry   *utils.RetryConfig

	pagesRendered int
}

// New creates a ready-to-use bazaraki Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:     cfg,
		logger:  logger,
		pacer:   utils.NewPacer(time.Duration(cfg.RequestDelayMs) * time.Millisecond),
		visited: utils.NewURLSet(),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
}

// Scrape crawls every enabled category and returns the collected raw
// listings. Individual page and listing failures are logged and skipped; an
// error is returned only when the entire fetch phase produced nothing.
func (s *Scraper) Scrape() ([]*models.RawListing, error) {
	chromeBin := findChromeBinary(s.cfg.ChromeBin)
	s.logger.Info("[bazaraki] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.HeadlessMode),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("window-size", "1920,1080"),
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	silentCtx, cancelSilent := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelSilent()
	allocCtx = silentCtx

	var listings []*models.RawListing
	var lastErr error

	for _, cat := range categories {
		if !s.cfg.CategoryEnabled(cat.Slug) {
			s.logger.Debug("[bazaraki] Category disabled: %s", cat.Slug)
			continue
		}

		s.logger.Info("[bazaraki] Scraping category: %s", cat.Slug)
		catListings, err := s.scrapeCategory(allocCtx, cat)
		if err != nil {
			s.logger.Error("[bazaraki] Category %s failed: %v", cat.Slug, err)
			lastErr = err
		}
		listings = append(listings, catListings...)
		s.logger.Info("[bazaraki] Category %s done — %d listings", cat.Slug, len(catListings))
	}

	if s.pagesRendered == 0 && lastErr != nil {
		return nil, fmt.Errorf("fetch phase failed completely: %w", lastErr)
	}

	s.logger.Info("[bazaraki] Scrape complete — total raw listings: %d", len(listings))
	return listings, nil
}

// scrapeCategory walks the paginated category index, collecting listing
// links and scraping each detail page. A failed page is skipped; pagination
// stops early when a page yields no new listings.
func (s *Scraper) scrapeCategory(allocCtx context.Context, cat category) ([]*models.RawListing, error) {
	var listings []*models.RawListing
	var lastErr error

	for page := 1; page <= s.cfg.MaxPagesPerCategory; page++ {
		pageURL := fmt.Sprintf("%s%s?page=%d", baseURL, cat.Path, page)

		html, err := s.renderPage(allocCtx, fmt.Sprintf("%s-page-%d", cat.Slug, page), pageURL)
		if err != nil {
			lastErr = err
			continue
		}

		links := ExtractListingLinks(html)
		fresh := make([]string, 0, len(links))
		for _, u := range links {
			if s.visited.Add(u) {
				fresh = append(fresh, u)
			}
		}
		if len(fresh) > listingsPerPage {
			fresh = fresh[:listingsPerPage]
		}

		if len(fresh) == 0 {
			s.logger.Info("[bazaraki] No more listings in %s after page %d", cat.Slug, page)
			break
		}
		s.logger.Info("[bazaraki] Page %d of %s — %d unique listings", page, cat.Slug, len(fresh))

		for _, u := range fresh {
			detailHTML, err := s.renderPage(allocCtx, "listing", u)
			if err != nil {
				// A single bad detail page drops that listing only.
				s.logger.Warn("[bazaraki] Listing %s failed: %v", u, err)
				continue
			}
			listings = append(listings, ExtractListing(detailHTML, u))
		}
	}

	if len(listings) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return listings, nil
}

// renderPage navigates to the URL in a fresh tab, waits for the page to
// settle, and returns the rendered HTML. Every navigation goes through the
// pacer and the retry policy.
func (s *Scraper) renderPage(allocCtx context.Context, operation, url string) (string, error) {
	var html string

	err := s.retry.Do(operation, func() error {
		s.pacer.Wait()

		ctx, cancel := chromedp.NewContext(allocCtx)
		defer cancel()

		ctx, cancelTimeout := context.WithTimeout(ctx, pageTimeout)
		defer cancelTimeout()

		return chromedp.Run(ctx,
			chromedp.Navigate(url),
			chromedp.Sleep(renderSettle),
			chromedp.OuterHTML("html", &html),
		)
	})
	if err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}

	s.pagesRendered++
	return html, nil
}

// findChromeBinary locates a Chrome/Chromium binary, preferring an explicit
// configuration.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
