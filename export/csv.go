package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"bazaraki-deals/models"
)

// writeCSV writes one row per deal. The file is written to a temp file and
// renamed into place so readers never observe a partial artifact.
func writeCSV(path string, deals []*models.Deal) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("csv: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(dealFields); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, d := range deals {
		row := []string{
			d.Title,
			formatAmount(d.Price),
			formatAmount(d.MarketPrice),
			formatAmount(d.DealScore),
			formatAmount(d.Savings),
			d.Location,
			d.URL,
			d.Description,
			d.Seller,
			d.PostedDate,
			d.ProductType,
			d.Condition,
		}
		if err := w.Write(row); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("csv: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("csv: close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("csv: rename into place: %w", err)
	}
	return nil
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
