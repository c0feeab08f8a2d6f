package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"bazaraki-deals/models"
)

// writeJSON serialises the ranked deals as an indented JSON array. HTML
// escaping is disabled so URLs and non-ASCII text survive verbatim.
func writeJSON(path string, deals []*models.Deal) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(deals); err != nil {
		return fmt.Errorf("json: encode deals: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("json: write file: %w", err)
	}
	return nil
}
