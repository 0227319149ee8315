package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
)

func testDocument(t *testing.T) *document.Document {
	t.Helper()

	doc, err := document.New("Comprobante de Postulación N° 1024")
	assert.NoError(t, err)
	doc.Author = "Sistema de Pasantías"

	header, err := document.NewSection("Universidad Tecnológica Nacional", "", document.LevelPrimary)
	assert.NoError(t, err)
	assert.NoError(t, doc.AddSection(header))

	facts, err := document.NewSection("COMPROBANTE DE POSTULACIÓN N° 1024", "Fecha de postulación: 20 de febrero de 2024 a las 11:30", document.LevelPrimary)
	assert.NoError(t, err)
	table, err := document.NewTable("", []string{"Campo", "Información"}, [][]string{
		{"Estudiante", "Juan Pérez"},
		{"DNI", "12345678"},
		{"Carrera", "Ingeniería en Sistemas de Información"},
	})
	assert.NoError(t, err)
	assert.NoError(t, facts.AddTable(table))
	assert.NoError(t, doc.AddSection(facts))

	narrative, err := document.NewSection("", "Por medio del presente se certifica que <b>Juan Pérez</b>, alumno/a de <b>Ingeniería en Sistemas de Información</b>.\n\nEsta postulación queda registrada bajo el número <b>1024</b>.", document.LevelBody)
	assert.NoError(t, err)
	assert.NoError(t, doc.AddSection(narrative))

	footer, err := document.NewSection("", "\n\n__________________________________\nFirma del responsable académico / Empresa", document.LevelFooter)
	assert.NoError(t, err)
	assert.NoError(t, doc.AddSection(footer))

	return doc
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"":     FormatPDF,
		"pdf":  FormatPDF,
		"xlsx": FormatXLSX,
		"csv":  FormatCSV,
	} {
		got, err := ParseFormat(input)
		assert.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"docx", "PDF", "excel", "html"} {
		_, err := ParseFormat(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRegistryCoversAllFormats(t *testing.T) {
	registry := NewRegistry()

	for _, format := range []Format{FormatPDF, FormatXLSX, FormatCSV} {
		renderer, err := registry.Get(format)
		assert.NoError(t, err)
		assert.NotNil(t, renderer)
		assert.NotEmpty(t, renderer.ContentType())
		assert.Equal(t, string(format), renderer.Extension())
	}

	_, err := registry.Get(Format("docx"))
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1A73E8")
	assert.NoError(t, err)
	assert.Equal(t, rgb{R: 26, G: 115, B: 232}, c)

	c, err = parseHexColor("#000000")
	assert.NoError(t, err)
	assert.Equal(t, rgb{}, c)

	c, err = parseHexColor("#FFFFFF")
	assert.NoError(t, err)
	assert.Equal(t, rgb{R: 255, G: 255, B: 255}, c)

	for _, input := range []string{"", "1A73E8", "#1A73E", "#GGGGGG", "#1A73E8FF"} {
		_, err := parseHexColor(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestResolveStyle(t *testing.T) {
	rs := resolveStyle(document.DefaultStyle())

	assert.Equal(t, rgb{R: 26, G: 115, B: 232}, rs.Primary)
	assert.Equal(t, rgb{R: 51, G: 51, B: 51}, rs.Text)
	assert.Equal(t, fontSpec{Family: "Helvetica", Style: "B", Size: 18}, rs.Title)
	assert.Equal(t, fontSpec{Family: "Helvetica", Style: "B", Size: 12}, rs.Heading)
	assert.Equal(t, fontSpec{Family: "Helvetica", Size: 10}, rs.Body)
	assert.Equal(t, fontSpec{Family: "Helvetica", Size: 9}, rs.Footer)
	assert.Equal(t, 20.0, rs.Margins.Left)
}

func TestResolveStyleMapsCoreFonts(t *testing.T) {
	pro := resolveStyle(document.ProfessionalStyle())
	assert.Equal(t, "Times", pro.Body.Family)

	courier := document.DefaultStyle()
	courier.Fonts.Family = "Courier"
	assert.Equal(t, "Courier", resolveStyle(courier).Body.Family)

	unknown := document.DefaultStyle()
	unknown.Fonts.Family = "Comic Sans"
	assert.Equal(t, "Helvetica", resolveStyle(unknown).Body.Family)
}

func TestResolveStyleFailsOpenOnBadColor(t *testing.T) {
	bad := document.DefaultStyle()
	bad.Colors.Primary = "not-a-color"
	bad.Colors.Text = "#zzzzzz"

	rs := resolveStyle(bad)
	assert.Equal(t, rgb{R: 26, G: 115, B: 232}, rs.Primary)
	assert.Equal(t, rgb{R: 51, G: 51, B: 51}, rs.Text)
}

func TestPDFRender(t *testing.T) {
	renderer := NewPDFRenderer()

	content, err := renderer.Render(testDocument(t), document.DefaultStyle())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")), "output should start with the PDF magic")
	assert.Greater(t, len(content), 1000)
}

func TestPDFRenderProfessionalStyle(t *testing.T) {
	renderer := NewPDFRenderer()

	content, err := renderer.Render(testDocument(t), document.ProfessionalStyle())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestPDFRenderLandscapeLegal(t *testing.T) {
	doc := testDocument(t)
	doc.PageSize = document.PageLegal
	doc.Orientation = document.Landscape

	content, err := NewPDFRenderer().Render(doc, document.DefaultStyle())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestPDFRenderManyRowsPaginates(t *testing.T) {
	doc, err := document.New("Listado")
	assert.NoError(t, err)

	rows := make([][]string, 120)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("Campo %d", i), strings.Repeat("texto largo que obliga a envolver la celda ", 3)}
	}
	table, err := document.NewTable("", []string{"Campo", "Información"}, rows)
	assert.NoError(t, err)
	assert.NoError(t, doc.AddTable(table))

	content, err := NewPDFRenderer().Render(doc, document.DefaultStyle())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	// Several pages worth of rows means a markedly bigger file.
	assert.Greater(t, len(content), 5000)
}

func TestPDFRenderRejectsMalformedDocuments(t *testing.T) {
	renderer := NewPDFRenderer()

	_, err := renderer.Render(nil, document.DefaultStyle())
	assert.Error(t, err)

	blank := &document.Document{}
	_, err = renderer.Render(blank, document.DefaultStyle())
	assert.Error(t, err)

	ragged := &document.Document{
		Title: "Documento",
		Sections: []document.Section{{
			Title: "Tabla",
			Level: document.LevelBody,
			Tables: []document.Table{{
				Headers: []string{"A", "B"},
				Rows:    [][]string{{"solo"}},
			}},
		}},
	}
	_, err = renderer.Render(ragged, document.DefaultStyle())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "columnas")
}

func TestPDFStyleCacheMemoizes(t *testing.T) {
	renderer := NewPDFRenderer()
	doc := testDocument(t)

	_, err := renderer.Render(doc, document.DefaultStyle())
	assert.NoError(t, err)
	stats := renderer.StyleCacheStats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)

	_, err = renderer.Render(doc, document.DefaultStyle())
	assert.NoError(t, err)
	stats = renderer.StyleCacheStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)

	_, err = renderer.Render(doc, document.ProfessionalStyle())
	assert.NoError(t, err)
	assert.Equal(t, 2, renderer.StyleCacheStats().Size)
}

func TestPDFStyleCacheStaysBounded(t *testing.T) {
	renderer := NewPDFRenderer()
	doc := testDocument(t)

	for i := 0; i < DefaultStyleCacheCapacity+10; i++ {
		style := document.DefaultStyle()
		style.Fonts.SizeBody = 8 + float64(i)*0.25
		_, err := renderer.Render(doc, style)
		assert.NoError(t, err)
	}

	stats := renderer.StyleCacheStats()
	assert.Equal(t, DefaultStyleCacheCapacity, stats.Size)
	assert.Equal(t, DefaultStyleCacheCapacity, stats.Capacity)
	assert.Equal(t, int64(DefaultStyleCacheCapacity+10), stats.Misses)
}

func TestPDFStyleCacheClear(t *testing.T) {
	renderer := NewPDFRenderer()

	_, err := renderer.Render(testDocument(t), document.DefaultStyle())
	assert.NoError(t, err)
	assert.Equal(t, 1, renderer.StyleCacheStats().Size)

	renderer.ClearStyleCache()
	stats := renderer.StyleCacheStats()
	assert.Equal(t, 0, stats.Size)
	assert.Equal(t, int64(0), stats.Misses)
}

func TestExcelRender(t *testing.T) {
	content, err := NewExcelRenderer().Render(testDocument(t), document.DefaultStyle())
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(excelSheetName, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Comprobante de Postulación N° 1024", title)

	rows, err := f.GetRows(excelSheetName)
	assert.NoError(t, err)

	assert.True(t, hasRow(rows, "Campo", "Información"), "table header row missing")
	assert.True(t, hasRow(rows, "Estudiante", "Juan Pérez"), "table data row missing")
	assert.True(t, hasRow(rows, "Carrera", "Ingeniería en Sistemas de Información"))
}

func TestExcelRenderStripsMarkup(t *testing.T) {
	content, err := NewExcelRenderer().Render(testDocument(t), document.DefaultStyle())
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(excelSheetName)
	assert.NoError(t, err)

	found := false
	for _, row := range rows {
		for _, cell := range row {
			assert.NotContains(t, cell, "<b>")
			if strings.Contains(cell, "Esta postulación queda registrada bajo el número 1024.") {
				found = true
			}
		}
	}
	assert.True(t, found, "narrative paragraph missing from sheet")
}

func TestExcelRenderRejectsNilDocument(t *testing.T) {
	_, err := NewExcelRenderer().Render(nil, document.DefaultStyle())
	assert.Error(t, err)
}

func TestCSVRenderFlattensTables(t *testing.T) {
	doc := testDocument(t)
	extra, err := document.NewSection("Extra", "", document.LevelBody)
	assert.NoError(t, err)
	second, err := document.NewTable("", []string{"Clave", "Valor"}, [][]string{{"numero", "<b>5432</b>"}})
	assert.NoError(t, err)
	assert.NoError(t, extra.AddTable(second))
	assert.NoError(t, doc.AddSection(extra))

	content, err := NewCSVRenderer().Render(doc, document.DefaultStyle())
	assert.NoError(t, err)

	// Tables are separated by a blank line.
	assert.Contains(t, string(content), "\n\nClave,Valor\n")

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	assert.NoError(t, err)

	assert.Equal(t, []string{"Campo", "Información"}, records[0])
	assert.Equal(t, []string{"Estudiante", "Juan Pérez"}, records[1])
	assert.Equal(t, []string{"numero", "5432"}, records[len(records)-1])
}

func TestCSVRenderWithoutTablesIsEmpty(t *testing.T) {
	doc, err := document.New("Sin tablas")
	assert.NoError(t, err)
	section, err := document.NewSection("Texto", "Solo narrativa.", document.LevelBody)
	assert.NoError(t, err)
	assert.NoError(t, doc.AddSection(section))

	content, err := NewCSVRenderer().Render(doc, document.DefaultStyle())
	assert.NoError(t, err)
	assert.Empty(t, content)
}

func hasRow(rows [][]string, first, second string) bool {
	for _, row := range rows {
		if len(row) >= 2 && row[0] == first && row[1] == second {
			return true
		}
	}
	return false
}
