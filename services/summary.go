package services

import (
	"fmt"
	"strings"

	"bazaraki-deals/models"
	"bazaraki-deals/utils"
)

// topDealCount is how many deals the console summary prints in full.
const topDealCount = 5

// SummaryService prints the end-of-run summary. The summary is produced on
// every run, including partial-failure runs.
type SummaryService struct {
	logger *utils.Logger
}

// NewSummaryService creates a SummaryService.
func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Print renders the scan counters and the top deals to the console.
func (s *SummaryService) Print(sum *models.ScanSummary, deals []*models.Deal) {
	sep := strings.Repeat("═", 60)
	thin := strings.Repeat("─", 60)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  BAZARAKI ELECTRONICS DEAL SCAN\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Run Summary\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Listings fetched  : \033[1m%d\033[0m\n", sum.ListingsFetched)
	fmt.Printf("  Listings cleaned  : \033[1m%d\033[0m\n", sum.ListingsCleaned)
	fmt.Printf("  Deals found       : \033[1m%d\033[0m\n", sum.DealsFound)
	fmt.Printf("  Artifacts written : \033[1m%d\033[0m\n", len(sum.ArtifactsWritten))
	for _, path := range sum.ArtifactsWritten {
		fmt.Printf("    → %s\n", path)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top %d Deals\033[0m\n", topDealCount)
	fmt.Printf("  %s\n", thin)
	if len(deals) == 0 {
		fmt.Printf("  No deals found that meet the criteria.\n")
	} else {
		top := deals
		if len(top) > topDealCount {
			top = top[:topDealCount]
		}
		for i, d := range top {
			fmt.Printf("  \033[1m%d.\033[0m %s\n", i+1, truncate(d.Title, 60))
			fmt.Printf("     Price: \033[1;32m€%.2f\033[0m (Market: €%.2f)\n", d.Price, d.MarketPrice)
			fmt.Printf("     Deal Score: \033[1;32m%.1f%% OFF\033[0m (Save €%.2f)\n", d.DealScore, d.Savings)
			fmt.Printf("     Location: %s\n", d.Location)
			fmt.Printf("     URL: %s\n", d.URL)
			fmt.Println()
		}
	}

	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)
}
