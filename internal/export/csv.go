package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
)

// CSVRenderer flattens every table in the document into one CSV stream:
// headers row, data rows, and a blank line between tables. Narrative
// sections have no tabular shape and are skipped.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSV renderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

func (r *CSVRenderer) ContentType() string { return "text/csv" }

func (r *CSVRenderer) Extension() string { return "csv" }

func (r *CSVRenderer) Render(doc *document.Document, style document.Style) ([]byte, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	first := true
	for _, section := range doc.Sections {
		for _, table := range section.Tables {
			if !first {
				writer.Flush()
				buf.WriteByte('\n')
			}
			first = false

			if err := writer.Write(stripCells(table.Headers)); err != nil {
				return nil, fmt.Errorf("failed to write header: %w", err)
			}
			for _, row := range table.Rows {
				if err := writer.Write(stripCells(row)); err != nil {
					return nil, fmt.Errorf("failed to write row: %w", err)
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stripCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = document.StripBold(cell)
	}
	return out
}
