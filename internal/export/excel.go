package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
)

const excelSheetName = "Documento"

// ExcelRenderer writes the document onto a single styled worksheet.
type ExcelRenderer struct{}

// NewExcelRenderer creates an XLSX renderer.
func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

func (r *ExcelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *ExcelRenderer) Extension() string { return "xlsx" }

// Render writes the document title, sections and tables as rows and
// returns the workbook bytes.
func (r *ExcelRenderer) Render(doc *document.Document, style document.Style) ([]byte, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", excelSheetName)

	w, err := newExcelWriter(f, style)
	if err != nil {
		return nil, fmt.Errorf("failed to create styles: %w", err)
	}
	if err := w.writeTitle(doc.Title); err != nil {
		return nil, err
	}
	for _, section := range doc.Sections {
		if err := w.writeSection(section); err != nil {
			return nil, err
		}
	}

	f.SetColWidth(excelSheetName, "A", "A", 45)
	f.SetColWidth(excelSheetName, "B", "B", 90)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// excelWriter tracks the current output row and the style IDs created for
// one workbook. Style IDs are per file, so they are built once per render.
type excelWriter struct {
	file *excelize.File
	row  int

	titleStyle   int
	sectionStyle int
	headerStyle  int
	cellStyle    int
}

func newExcelWriter(f *excelize.File, style document.Style) (*excelWriter, error) {
	w := &excelWriter{file: f, row: 1}
	primary := hexChannel(style.Colors.Primary)

	var err error
	w.titleStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: primary},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	w.sectionStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: primary},
	})
	if err != nil {
		return nil, err
	}

	w.headerStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{primary},
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    cellBorders(),
	})
	if err != nil {
		return nil, err
	}

	w.cellStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "left", WrapText: true},
		Border:    cellBorders(),
	})
	if err != nil {
		return nil, err
	}

	return w, nil
}

func cellBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

// hexChannel strips the leading # that excelize does not expect.
func hexChannel(color string) string {
	return strings.TrimPrefix(color, "#")
}

// writeTitle writes the document title merged across the first two columns.
func (w *excelWriter) writeTitle(title string) error {
	start, _ := excelize.CoordinatesToCellName(1, w.row)
	end, _ := excelize.CoordinatesToCellName(2, w.row)

	if err := w.file.SetCellValue(excelSheetName, start, document.StripBold(title)); err != nil {
		return err
	}
	w.file.MergeCell(excelSheetName, start, end)
	w.file.SetCellStyle(excelSheetName, start, end, w.titleStyle)
	w.row += 2
	return nil
}

// writeSection writes the section title, one row per paragraph and then
// its tables. Markup is stripped; bold weight does not survive into cells.
func (w *excelWriter) writeSection(section document.Section) error {
	if section.Title != "" {
		cell, _ := excelize.CoordinatesToCellName(1, w.row)
		if err := w.file.SetCellValue(excelSheetName, cell, document.StripBold(section.Title)); err != nil {
			return err
		}
		w.file.SetCellStyle(excelSheetName, cell, cell, w.sectionStyle)
		w.row++
	}

	if section.Content != "" {
		for _, para := range strings.Split(section.Content, "\n\n") {
			para = strings.TrimSpace(document.StripBold(para))
			if para == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(1, w.row)
			if err := w.file.SetCellValue(excelSheetName, cell, para); err != nil {
				return err
			}
			w.row++
		}
	}

	for _, table := range section.Tables {
		if err := w.writeTable(table); err != nil {
			return err
		}
	}

	w.row++
	return nil
}

func (w *excelWriter) writeTable(table document.Table) error {
	if table.Title != "" {
		cell, _ := excelize.CoordinatesToCellName(1, w.row)
		if err := w.file.SetCellValue(excelSheetName, cell, document.StripBold(table.Title)); err != nil {
			return err
		}
		w.file.SetCellStyle(excelSheetName, cell, cell, w.sectionStyle)
		w.row++
	}

	for i, header := range table.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, w.row)
		if err := w.file.SetCellValue(excelSheetName, cell, header); err != nil {
			return err
		}
		w.file.SetCellStyle(excelSheetName, cell, cell, w.headerStyle)
	}
	w.row++

	for _, row := range table.Rows {
		for i, value := range row {
			cell, _ := excelize.CoordinatesToCellName(i+1, w.row)
			if err := w.file.SetCellValue(excelSheetName, cell, document.StripBold(value)); err != nil {
				return err
			}
			w.file.SetCellStyle(excelSheetName, cell, cell, w.cellStyle)
		}
		w.row++
	}

	w.row++
	return nil
}
