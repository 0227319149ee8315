package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "LETTER"
	PageLegal  PageSize = "LEGAL"
	PageA3     PageSize = "A3"
	PageA5     PageSize = "A5"
)

type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Heading levels with renderer-assigned roles: 1 renders in the title
// style, 3 in the footer style, everything else as a regular heading.
const (
	LevelPrimary = 1
	LevelBody    = 2
	LevelFooter  = 3
)

// DefaultAuthor is used when a document is created without an explicit author.
const DefaultAuthor = "System"

// Table holds tabular data attached to a section.
type Table struct {
	Title   string     `json:"title,omitempty"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// NewTable builds a table and validates its shape.
func NewTable(title string, headers []string, rows [][]string) (Table, error) {
	t := Table{Title: title, Headers: headers, Rows: rows}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Validate checks that the table has at least one header and that every
// row has exactly one cell per header.
func (t Table) Validate() error {
	if len(t.Headers) == 0 {
		return fmt.Errorf("la tabla debe tener al menos un header")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return fmt.Errorf("la fila %d tiene %d columnas, pero se esperaban %d", i, len(row), len(t.Headers))
		}
	}
	return nil
}

// Section is one block of document content: an optional title, free text
// and any number of tables.
type Section struct {
	Title   string  `json:"title"`
	Content string  `json:"content,omitempty"`
	Level   int     `json:"level"`
	Tables  []Table `json:"tables,omitempty"`
}

// NewSection builds a section with a validated heading level.
func NewSection(title, content string, level int) (Section, error) {
	if level < 1 || level > 6 {
		return Section{}, fmt.Errorf("el nivel de sección debe estar entre 1 y 6")
	}
	return Section{Title: title, Content: content, Level: level}, nil
}

// AddTable appends a table to the section after validating it.
func (s *Section) AddTable(t Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.Tables = append(s.Tables, t)
	return nil
}

// Document is the renderer-independent model every certificate is
// assembled into before export.
type Document struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Author      string                 `json:"author"`
	CreatedAt   time.Time              `json:"created_at"`
	PageSize    PageSize               `json:"page_size"`
	Orientation Orientation            `json:"orientation"`
	Sections    []Section              `json:"sections"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`

	generated bool
}

// New creates a document with defaults applied. The title is required.
func New(title string) (*Document, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("el título del documento es requerido")
	}
	return &Document{
		ID:          uuid.New(),
		Title:       title,
		Author:      DefaultAuthor,
		CreatedAt:   time.Now(),
		PageSize:    PageA4,
		Orientation: Portrait,
		Metadata:    map[string]interface{}{},
	}, nil
}

// AddSection appends a section. It fails once the document has been rendered.
func (d *Document) AddSection(s Section) error {
	if d.generated {
		return fmt.Errorf("no se pueden agregar secciones a un documento generado")
	}
	d.Sections = append(d.Sections, s)
	return nil
}

// AddTable appends a table wrapped in its own section.
func (d *Document) AddTable(t Table) error {
	if d.generated {
		return fmt.Errorf("no se pueden agregar tablas a un documento generado")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	title := t.Title
	if title == "" {
		title = "Tabla"
	}
	d.Sections = append(d.Sections, Section{Title: title, Level: LevelBody, Tables: []Table{t}})
	return nil
}

// SectionCount returns the number of sections.
func (d *Document) SectionCount() int {
	return len(d.Sections)
}

// MarkGenerated freezes the document; no further sections can be added.
func (d *Document) MarkGenerated() {
	d.generated = true
}

// Generated reports whether the document has already been rendered.
func (d *Document) Generated() bool {
	return d.generated
}
