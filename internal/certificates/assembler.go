package certificates

import (
	"os"
	"strconv"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
	"internship-portal/pdf-export/pdf-export-backend/pkg/dates"
)

// documentAuthor signs every generated certificate.
const documentAuthor = "Sistema de Pasantías"

// tableHeaders is the fixed two-column layout of every key-facts table.
var tableHeaders = []string{"Campo", "Información"}

// Record is a business record that can be assembled into a document.
type Record interface {
	Validate() error
	Serial() int
}

// Assembler turns one record type into its document. Implementations are
// deterministic: the same record always yields the same document content.
type Assembler[R Record] interface {
	Assemble(rec R) (*document.Document, error)
}

// assemblerBase carries the collaborators both document types share.
type assemblerBase struct {
	formatter *dates.Formatter
	logoPath  string
}

// formatDate renders an ISO value as Spanish text through the shared cache.
func (b assemblerBase) formatDate(iso string) string {
	return b.formatter.Format(iso)
}

// formatDateOr substitutes fallback when the value is absent.
func (b assemblerBase) formatDateOr(iso, fallback string) string {
	if s := b.formatter.Format(iso); s != "" {
		return s
	}
	return fallback
}

// logoMetadata resolves the configured logo path when the file exists.
func (b assemblerBase) logoMetadata() (string, bool) {
	if b.logoPath == "" {
		return "", false
	}
	if _, err := os.Stat(b.logoPath); err != nil {
		return "", false
	}
	return b.logoPath, true
}

// formatHours prints weekly hours without a trailing ".0" for whole values.
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
