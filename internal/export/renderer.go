package export

import (
	"fmt"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
)

// Format identifies an output encoding for a rendered document.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a wire format string. The empty string selects PDF.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "pdf":
		return FormatPDF, nil
	case "xlsx":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Renderer turns an assembled document into one concrete file encoding.
// Implementations are long-lived and safe for concurrent use.
type Renderer interface {
	Render(doc *document.Document, style document.Style) ([]byte, error)
	ContentType() string
	Extension() string
}

// Registry maps formats to their renderer instances.
type Registry struct {
	renderers map[Format]Renderer
}

// NewRegistry builds a registry with the built-in PDF, XLSX and CSV renderers.
func NewRegistry() *Registry {
	return &Registry{renderers: map[Format]Renderer{
		FormatPDF:  NewPDFRenderer(),
		FormatXLSX: NewExcelRenderer(),
		FormatCSV:  NewCSVRenderer(),
	}}
}

// Register adds or replaces the renderer for a format.
func (r *Registry) Register(f Format, renderer Renderer) {
	r.renderers[f] = renderer
}

// Get returns the renderer for a format.
func (r *Registry) Get(f Format) (Renderer, error) {
	renderer, ok := r.renderers[f]
	if !ok {
		return nil, fmt.Errorf("no renderer registered for format %q", f)
	}
	return renderer, nil
}

// validateDocument rejects documents a renderer cannot produce faithfully.
// Rendering must fail loudly rather than emit an empty or truncated file.
func validateDocument(doc *document.Document) error {
	if doc == nil {
		return fmt.Errorf("document is nil")
	}
	if doc.Title == "" {
		return fmt.Errorf("document has no title")
	}
	for i, section := range doc.Sections {
		if section.Level < 1 || section.Level > 6 {
			return fmt.Errorf("section %d has invalid level %d", i, section.Level)
		}
		for j, table := range section.Tables {
			if err := table.Validate(); err != nil {
				return fmt.Errorf("section %d table %d: %w", i, j, err)
			}
		}
	}
	return nil
}
