package pagefit

import (
	"bytes"
	"fmt"

	lpdf "github.com/ledongthuc/pdf"
)

// CountPages returns the structural page count of a PDF document. This is
// the ground truth for how many pages the engine actually produced,
// independent of the pre-print height estimate.
func CountPages(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty PDF data")
	}
	reader, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse PDF: %w", err)
	}
	pages := reader.NumPage()
	if pages < 1 {
		return 0, fmt.Errorf("PDF has no pages")
	}
	return pages, nil
}
