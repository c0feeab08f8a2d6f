// Package export renders a ranked deal list into file artifacts: a CSV
// table, an indented JSON array, and a styled HTML report. Each enabled
// format is produced independently — one failing format never blocks the
// others.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"bazaraki-deals/models"
	"bazaraki-deals/utils"
)

// dealFields is the column order shared by the CSV header and the report
// tables.
var dealFields = []string{
	"title", "price", "market_price", "deal_score", "savings", "location",
	"url", "description", "seller", "posted_date", "product_type", "condition",
}

// Exporter writes deal artifacts into an output directory.
type Exporter struct {
	outputDir string
	csv       bool
	json      bool
	html      bool
	logger    *utils.Logger
}

// NewExporter creates an Exporter. The flags control which artifact formats
// are produced.
func NewExporter(outputDir string, csv, json, html bool, logger *utils.Logger) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		csv:       csv,
		json:      json,
		html:      html,
		logger:    logger,
	}
}

// Export ranks the deals by score descending and writes every enabled
// artifact. It returns the paths written; an empty deal list produces no
// artifacts and no error. When some formats fail, the surviving paths are
// returned together with an error naming the failures.
func (e *Exporter) Export(deals []*models.Deal) ([]string, error) {
	if len(deals) == 0 {
		e.logger.Info("[export] No deals to export")
		return nil, nil
	}

	ranked := make([]*models.Deal, len(deals))
	copy(ranked, deals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DealScore > ranked[j].DealScore
	})

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("export: create output dir: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")

	var written []string
	var errs []error

	if e.csv {
		path := filepath.Join(e.outputDir, fmt.Sprintf("bazaraki_deals_%s.csv", stamp))
		if err := writeCSV(path, ranked); err != nil {
			e.logger.Error("[export] CSV export failed: %v", err)
			errs = append(errs, err)
		} else {
			e.logger.Info("[export] Deals exported to %s", path)
			written = append(written, path)
		}
	}

	if e.json {
		path := filepath.Join(e.outputDir, fmt.Sprintf("bazaraki_deals_%s.json", stamp))
		if err := writeJSON(path, ranked); err != nil {
			e.logger.Error("[export] JSON export failed: %v", err)
			errs = append(errs, err)
		} else {
			e.logger.Info("[export] Deals exported to %s", path)
			written = append(written, path)
		}
	}

	if e.html {
		path := filepath.Join(e.outputDir, fmt.Sprintf("bazaraki_deals_report_%s.html", stamp))
		if err := writeHTML(path, ranked); err != nil {
			e.logger.Error("[export] HTML report failed: %v", err)
			errs = append(errs, err)
		} else {
			e.logger.Info("[export] HTML report created: %s", path)
			written = append(written, path)
		}
	}

	return written, errors.Join(errs...)
}
