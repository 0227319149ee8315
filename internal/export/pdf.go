package export

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
	"internship-portal/pdf-export/pdf-export-backend/pkg/memo"
)

const ptToMM = 25.4 / 72

// Table cells are always set in 10pt with 6pt padding, independent of the
// document style.
const (
	tableFontSize = 10
	tablePadding  = 2.1
	tableKeyCol   = 55
	tableValueCol = 110
)

// lineHeight converts a font size in points to a line advance in millimetres.
func lineHeight(size float64) float64 {
	return size * 1.4 * ptToMM
}

// PDFRenderer renders documents with gofpdf. Resolved styles are memoized
// in a bounded cache shared across renders; all other state is per call, so
// the renderer is safe for concurrent use.
type PDFRenderer struct {
	styles *memo.Cache[document.Style, resolvedStyle]
}

// NewPDFRenderer creates a PDF renderer with an empty style cache.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{
		styles: memo.New[document.Style, resolvedStyle](DefaultStyleCacheCapacity),
	}
}

func (r *PDFRenderer) ContentType() string { return "application/pdf" }

func (r *PDFRenderer) Extension() string { return "pdf" }

// StyleCacheStats reports the hit and size counters of the style cache.
func (r *PDFRenderer) StyleCacheStats() memo.Stats { return r.styles.Stats() }

// ClearStyleCache empties the style cache and resets its counters.
func (r *PDFRenderer) ClearStyleCache() { r.styles.Clear() }

// Render lays the document out page by page and returns the PDF bytes.
func (r *PDFRenderer) Render(doc *document.Document, style document.Style) ([]byte, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	rs := r.styles.GetOrCompute(style, resolveStyle)

	b := newPDFBuilder(doc, rs)
	b.addTitle(doc.Title)
	for _, section := range doc.Sections {
		b.addSection(section)
	}
	return b.output()
}

// pdfBuilder holds the in-progress gofpdf state for one render.
type pdfBuilder struct {
	pdf *gofpdf.Fpdf
	rs  resolvedStyle
	tr  func(string) string
}

func newPDFBuilder(doc *document.Document, rs resolvedStyle) *pdfBuilder {
	orientation := "P"
	if doc.Orientation == document.Landscape {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "mm", pageSizeName(doc.PageSize), "")
	pdf.SetMargins(rs.Margins.Left, rs.Margins.Top, rs.Margins.Right)
	pdf.SetAutoPageBreak(true, rs.Margins.Bottom)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.AddPage()

	return &pdfBuilder{
		pdf: pdf,
		rs:  rs,
		// Core fonts are cp1252; Spanish text needs the translator.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// pageSizeName maps the document page size onto gofpdf size names.
func pageSizeName(size document.PageSize) string {
	switch size {
	case document.PageLetter:
		return "Letter"
	case document.PageLegal:
		return "Legal"
	case document.PageA3:
		return "A3"
	case document.PageA5:
		return "A5"
	default:
		return "A4"
	}
}

// addTitle renders the document title centered in the title style.
func (b *pdfBuilder) addTitle(title string) {
	b.setFont(b.rs.Title)
	b.setTextColor(b.rs.Primary)
	b.pdf.MultiCell(0, lineHeight(b.rs.Title.Size), b.tr(document.StripBold(title)), "", "C", false)
	b.pdf.Ln(6)
}

// addSection renders a section title, its paragraphs and its tables.
func (b *pdfBuilder) addSection(section document.Section) {
	if section.Title != "" {
		b.addSectionTitle(section)
	}
	if section.Content != "" {
		b.addSectionContent(section)
	}
	for _, table := range section.Tables {
		b.addTable(table)
	}
	b.pdf.Ln(4)
}

// addSectionTitle picks the heading treatment by level: 1 gets the title
// style, 3 the right-aligned footer style, everything else a heading.
// Titles render with markup stripped; their fonts are already bold.
func (b *pdfBuilder) addSectionTitle(section document.Section) {
	spec, color, align := b.rs.Heading, b.rs.Primary, "C"
	switch section.Level {
	case document.LevelPrimary:
		spec = b.rs.Title
	case document.LevelFooter:
		spec, color, align = b.rs.Footer, colorGrey, "R"
	}
	b.setFont(spec)
	b.setTextColor(color)
	b.pdf.MultiCell(0, lineHeight(spec.Size), b.tr(document.StripBold(section.Title)), "", align, false)
	b.pdf.Ln(1)
}

func (b *pdfBuilder) addSectionContent(section document.Section) {
	spec, color, align := b.contentStyle(section)
	for _, para := range strings.Split(section.Content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.addParagraph(para, spec, color, align)
		b.pdf.Ln(2)
	}
}

// contentStyle selects the text treatment for section content. Level 3 is
// footer text; level 1 content under a blank title is a subtitle line.
func (b *pdfBuilder) contentStyle(section document.Section) (fontSpec, rgb, string) {
	switch {
	case section.Level == document.LevelFooter:
		return b.rs.Footer, colorGrey, "R"
	case section.Level == document.LevelPrimary && section.Title == "":
		return b.rs.Subtitle, colorGrey, "C"
	default:
		return b.rs.Body, b.rs.Text, "L"
	}
}

// addParagraph writes one paragraph line by line, honoring inline bold
// runs. Plain lines go through MultiCell so gofpdf wraps them; lines with
// markup are positioned run by run.
func (b *pdfBuilder) addParagraph(text string, spec fontSpec, color rgb, align string) {
	b.setTextColor(color)
	for _, line := range strings.Split(text, "\n") {
		runs := document.SplitBold(line)
		if len(runs) == 0 {
			b.pdf.Ln(lineHeight(spec.Size))
			continue
		}
		if len(runs) == 1 && !runs[0].Bold {
			b.setFont(spec)
			b.pdf.MultiCell(0, lineHeight(spec.Size), b.tr(runs[0].Text), "", align, false)
			continue
		}
		b.addStyledLine(runs, spec, align)
	}
}

// addStyledLine writes a line of mixed plain and bold runs. Centered and
// right-aligned lines are placed from the measured run widths; lines too
// wide for that fall back to left-aligned wrapping.
func (b *pdfBuilder) addStyledLine(runs []document.Run, spec fontSpec, align string) {
	h := lineHeight(spec.Size)

	if align == "L" {
		for _, run := range runs {
			b.setRunFont(spec, run.Bold)
			b.pdf.Write(h, b.tr(run.Text))
		}
		b.pdf.Ln(h)
		return
	}

	total := 0.0
	translated := make([]string, len(runs))
	for i, run := range runs {
		b.setRunFont(spec, run.Bold)
		translated[i] = b.tr(run.Text)
		total += b.pdf.GetStringWidth(translated[i])
	}

	left, _, right, _ := b.pdf.GetMargins()
	pageWidth, _ := b.pdf.GetPageSize()
	content := pageWidth - left - right
	if total > content {
		for i, run := range runs {
			b.setRunFont(spec, run.Bold)
			b.pdf.Write(h, translated[i])
		}
		b.pdf.Ln(h)
		return
	}

	x := left + (content-total)/2
	if align == "R" {
		x = left + content - total
	}
	b.pdf.SetX(x)
	for i, run := range runs {
		b.setRunFont(spec, run.Bold)
		b.pdf.Write(h, translated[i])
	}
	b.pdf.Ln(h)
}

// addTable renders a table with a filled header row, a grey outer box and
// a light inner grid. Row heights grow with the tallest wrapped cell, and
// tables that cross a page boundary get one box per page segment.
func (b *pdfBuilder) addTable(table document.Table) {
	if table.Title != "" {
		b.setFont(b.rs.Heading)
		b.setTextColor(b.rs.Primary)
		b.pdf.MultiCell(0, lineHeight(b.rs.Heading.Size), b.tr(document.StripBold(table.Title)), "", "C", false)
		b.pdf.Ln(1)
	}

	widths := b.columnWidths(table)
	totalWidth := 0.0
	for _, w := range widths {
		totalWidth += w
	}

	rows := make([][]string, 0, len(table.Rows)+1)
	rows = append(rows, table.Headers)
	rows = append(rows, table.Rows...)

	left, _, _, bottom := b.pdf.GetMargins()
	_, pageHeight := b.pdf.GetPageSize()
	limit := pageHeight - bottom

	b.pdf.SetAutoPageBreak(false, bottom)
	b.pdf.SetDrawColor(colorLightGrey.R, colorLightGrey.G, colorLightGrey.B)
	b.pdf.SetLineWidth(0.14)

	segmentTop := b.pdf.GetY()
	drawn := 0
	for i, row := range rows {
		height := b.rowHeight(row, widths)
		if b.pdf.GetY()+height > limit {
			if drawn > 0 {
				b.drawTableBox(left, segmentTop, totalWidth, b.pdf.GetY()-segmentTop)
			}
			if b.pdf.GetY() > b.rs.Margins.Top {
				b.pdf.AddPage()
			}
			segmentTop = b.pdf.GetY()
			drawn = 0
		}
		b.drawTableRow(left, row, widths, height, i == 0)
		drawn++
	}
	if drawn > 0 {
		b.drawTableBox(left, segmentTop, totalWidth, b.pdf.GetY()-segmentTop)
	}

	b.pdf.SetAutoPageBreak(true, bottom)
	b.pdf.Ln(4)
}

// columnWidths returns 55mm/110mm for the two-column key/value layout and
// an equal split otherwise.
func (b *pdfBuilder) columnWidths(table document.Table) []float64 {
	if len(table.Headers) == 2 {
		return []float64{tableKeyCol, tableValueCol}
	}
	left, _, right, _ := b.pdf.GetMargins()
	pageWidth, _ := b.pdf.GetPageSize()
	content := pageWidth - left - right
	widths := make([]float64, len(table.Headers))
	for i := range widths {
		widths[i] = content / float64(len(table.Headers))
	}
	return widths
}

func (b *pdfBuilder) rowHeight(row []string, widths []float64) float64 {
	b.pdf.SetFont("Helvetica", "", tableFontSize)
	maxLines := 1
	for i, cell := range row {
		lines := b.pdf.SplitText(b.tr(document.StripBold(cell)), widths[i]-2*tablePadding)
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	return float64(maxLines)*lineHeight(tableFontSize) + 2*tablePadding
}

func (b *pdfBuilder) drawTableRow(left float64, row []string, widths []float64, height float64, header bool) {
	b.pdf.SetFont("Helvetica", "", tableFontSize)
	b.setTextColor(colorBlack)
	lineH := lineHeight(tableFontSize)

	x := left
	y := b.pdf.GetY()
	for i, cell := range row {
		if header {
			b.pdf.SetFillColor(colorWhiteSmoke.R, colorWhiteSmoke.G, colorWhiteSmoke.B)
			b.pdf.Rect(x, y, widths[i], height, "FD")
		} else {
			b.pdf.Rect(x, y, widths[i], height, "D")
		}

		lines := b.pdf.SplitText(b.tr(document.StripBold(cell)), widths[i]-2*tablePadding)
		textY := y + (height-float64(len(lines))*lineH)/2
		for j, line := range lines {
			b.pdf.SetXY(x+tablePadding, textY+float64(j)*lineH)
			b.pdf.CellFormat(widths[i]-2*tablePadding, lineH, line, "", 0, "L", false, 0, "")
		}
		x += widths[i]
	}
	b.pdf.SetXY(left, y+height)
}

func (b *pdfBuilder) drawTableBox(x, y, w, h float64) {
	b.pdf.SetDrawColor(colorGrey.R, colorGrey.G, colorGrey.B)
	b.pdf.SetLineWidth(0.21)
	b.pdf.Rect(x, y, w, h, "D")
	b.pdf.SetDrawColor(colorLightGrey.R, colorLightGrey.G, colorLightGrey.B)
	b.pdf.SetLineWidth(0.14)
}

func (b *pdfBuilder) setFont(spec fontSpec) {
	b.pdf.SetFont(spec.Family, spec.Style, spec.Size)
}

func (b *pdfBuilder) setRunFont(spec fontSpec, bold bool) {
	style := spec.Style
	if bold && !strings.Contains(style, "B") {
		style += "B"
	}
	b.pdf.SetFont(spec.Family, style, spec.Size)
}

func (b *pdfBuilder) setTextColor(c rgb) {
	b.pdf.SetTextColor(c.R, c.G, c.B)
}

func (b *pdfBuilder) output() ([]byte, error) {
	if b.pdf.Err() {
		return nil, b.pdf.Error()
	}
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
