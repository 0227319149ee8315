package certificates

import (
	"fmt"
	"strconv"
	"strings"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
	"internship-portal/pdf-export/pdf-export-backend/pkg/dates"
)

// ReceiptAssembler builds the application receipt: institution header,
// key-facts table, narrative certification and signature footer.
type ReceiptAssembler struct {
	assemblerBase
}

// NewReceiptAssembler creates the assembler for application receipts.
func NewReceiptAssembler(formatter *dates.Formatter, logoPath string) *ReceiptAssembler {
	return &ReceiptAssembler{assemblerBase{formatter: formatter, logoPath: logoPath}}
}

// Assemble validates rec and builds the receipt document.
func (a *ReceiptAssembler) Assemble(rec *ReceiptRecord) (*document.Document, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	doc, err := document.New(fmt.Sprintf("Comprobante de Postulación N° %d", rec.Postulacion.Numero))
	if err != nil {
		return nil, err
	}
	doc.Author = documentAuthor
	doc.Metadata = map[string]interface{}{
		"numero_postulacion": rec.Postulacion.Numero,
		"tipo_documento":     "comprobante_postulacion",
		"estudiante_dni":     rec.Estudiante.DNI,
		"universidad_nombre": rec.Universidad.Nombre,
	}
	if path, ok := a.logoMetadata(); ok {
		doc.Metadata["logo_path"] = path
	}

	sections := []document.Section{
		a.header(rec),
		a.keyFacts(rec),
		a.narrative(rec),
		a.signature(),
	}
	for _, s := range sections {
		if err := doc.AddSection(s); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (a *ReceiptAssembler) header(rec *ReceiptRecord) document.Section {
	return document.Section{Title: rec.Universidad.Nombre, Level: document.LevelPrimary}
}

func (a *ReceiptAssembler) keyFacts(rec *ReceiptRecord) document.Section {
	inicio := a.formatDateOr(rec.Proyecto.FechaInicio, "No especificada")

	table := document.Table{
		Headers: tableHeaders,
		Rows: [][]string{
			{"Estudiante", rec.Estudiante.Nombre + " " + rec.Estudiante.Apellido},
			{"DNI", rec.Estudiante.DNI},
			{"Carrera", rec.Carrera.Nombre},
			{"Empresa", rec.Empresa.Nombre},
			{"Puesto", rec.Puesto.Nombre},
			{"Proyecto", fmt.Sprintf("%s (inicio: %s)", rec.Proyecto.Nombre, inicio)},
			{"Materias aprobadas", strconv.Itoa(rec.Postulacion.CantidadMateriasAprobadas)},
			{"Materias en condición regular", strconv.Itoa(rec.Postulacion.CantidadMateriasRegulares)},
		},
	}

	return document.Section{
		Title:   fmt.Sprintf("COMPROBANTE DE POSTULACIÓN N° %d", rec.Postulacion.Numero),
		Content: "Fecha de postulación: " + a.formatDate(rec.Postulacion.Fecha),
		Level:   document.LevelPrimary,
		Tables:  []document.Table{table},
	}
}

func (a *ReceiptAssembler) narrative(rec *ReceiptRecord) document.Section {
	fechaPostulacion := a.formatDate(rec.Postulacion.Fecha)
	fechaInicio := a.formatDate(rec.Proyecto.FechaInicio)
	nombreCompleto := rec.Estudiante.Nombre + " " + rec.Estudiante.Apellido

	var msg strings.Builder
	fmt.Fprintf(&msg,
		"Por medio del presente se certifica que <b>%s</b>, "+
			"alumno/a de <b>%s</b> de la institución <b>%s</b>, "+
			"con DNI <b>%s</b>, se postuló para el proyecto "+
			"<b>\"%s\"</b> ofrecido por <b>%s</b> "+
			"para el puesto de <b>%s</b>.",
		nombreCompleto, rec.Carrera.Nombre, rec.Universidad.Nombre,
		rec.Estudiante.DNI, rec.Proyecto.Nombre, rec.Empresa.Nombre, rec.Puesto.Nombre)

	if fechaInicio != "" {
		fmt.Fprintf(&msg, " El proyecto tiene fecha de inicio estimada: <b>%s</b>.", fechaInicio)
	}

	fmt.Fprintf(&msg,
		"\n\n"+
			"Al momento de la postulación, el/la estudiante registra "+
			"<b>%d materias aprobadas</b> y "+
			"<b>%d materias en condición regular</b>. "+
			"Esta postulación queda registrada bajo el número <b>%d</b>",
		rec.Postulacion.CantidadMateriasAprobadas,
		rec.Postulacion.CantidadMateriasRegulares,
		rec.Postulacion.Numero)

	if fechaPostulacion != "" {
		fmt.Fprintf(&msg, " y fue realizada el <b>%s</b>.", fechaPostulacion)
	} else {
		msg.WriteString(".")
	}

	return document.Section{Content: msg.String(), Level: document.LevelBody}
}

func (a *ReceiptAssembler) signature() document.Section {
	const contenido = "\n\n" +
		"__________________________________\n" +
		"Firma del responsable académico / Empresa\n\n" +
		"Este comprobante es emitido electrónicamente y puede ser impreso para presentar en la empresa."

	return document.Section{Content: contenido, Level: document.LevelFooter}
}
