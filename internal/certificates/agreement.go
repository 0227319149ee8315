package certificates

import (
	"fmt"
	"strings"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
	"internship-portal/pdf-export/pdf-export-backend/pkg/dates"
)

// AgreementAssembler builds the internship agreement: institution header,
// contract title, key-facts table, the five contract clauses and the twin
// signature footer.
type AgreementAssembler struct {
	assemblerBase
}

// NewAgreementAssembler creates the assembler for internship agreements.
func NewAgreementAssembler(formatter *dates.Formatter, logoPath string) *AgreementAssembler {
	return &AgreementAssembler{assemblerBase{formatter: formatter, logoPath: logoPath}}
}

// Assemble validates rec and builds the agreement document.
func (a *AgreementAssembler) Assemble(rec *AgreementRecord) (*document.Document, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	doc, err := document.New(fmt.Sprintf("Contrato de Pasantía N° %d", rec.Contrato.Numero))
	if err != nil {
		return nil, err
	}
	doc.Author = documentAuthor
	doc.Metadata = map[string]interface{}{
		"numero_contrato":    rec.Contrato.Numero,
		"tipo_documento":     "contrato_pasantia",
		"estudiante_dni":     rec.Estudiante.DNI,
		"universidad_nombre": rec.Universidad.Nombre,
	}
	if path, ok := a.logoMetadata(); ok {
		doc.Metadata["logo_path"] = path
	}

	sections := []document.Section{
		a.header(rec),
		a.contractTitle(rec),
		a.keyFacts(rec),
		a.clauseAntecedentes(rec),
		a.clauseObjeto(rec),
		a.clauseLugarYHorario(rec),
		a.clauseRemuneracion(),
		a.clauseDuracion(rec),
		a.signatures(rec),
	}
	for _, s := range sections {
		if err := doc.AddSection(s); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (a *AgreementAssembler) header(rec *AgreementRecord) document.Section {
	return document.Section{
		Title:   rec.Universidad.Nombre,
		Content: rec.Universidad.Correo,
		Level:   document.LevelPrimary,
	}
}

func (a *AgreementAssembler) contractTitle(rec *AgreementRecord) document.Section {
	emision := a.formatDate(rec.Contrato.FechaEmision)

	return document.Section{
		Title:   "<b>CONTRATO DE PASANTÍA</b>",
		Content: fmt.Sprintf("Nº: <b>%d</b>\n\nFecha de emisión: <b>%s</b>", rec.Postulacion.Numero, emision),
		Level:   document.LevelPrimary,
	}
}

func (a *AgreementAssembler) keyFacts(rec *AgreementRecord) document.Section {
	inicio := a.formatDateOr(rec.Proyecto.FechaInicio, "No especificada")
	fin := a.formatDateOr(rec.Proyecto.FechaFin, "No especificada")

	table := document.Table{
		Headers: tableHeaders,
		Rows: [][]string{
			{"Estudiante:", rec.Estudiante.Nombre + " " + rec.Estudiante.Apellido},
			{"DNI / Email:", fmt.Sprintf("%s / %s", rec.Estudiante.DNI, rec.Estudiante.Email)},
			{"Carrera:", fmt.Sprintf("%s (%s)", rec.Carrera.Nombre, rec.Carrera.PlanEstudios)},
			{"Empresa:", rec.Empresa.Nombre},
			{"Dirección / Tel:", fmt.Sprintf("%s / %s", rec.Empresa.Direccion, rec.Empresa.Telefono)},
			{"Proyecto:", rec.Proyecto.Nombre},
			{"Periodo del proyecto:", inicio + " — " + fin},
			{"Puesto / Horas sem.:", fmt.Sprintf("%s / %s hs sem.", rec.Puesto.Nombre, formatHours(rec.Puesto.HorasDedicadas))},
			{"Materias aprobadas / regulares:", fmt.Sprintf("%d / %d", rec.Postulacion.CantidadMateriasAprobadas, rec.Postulacion.CantidadMateriasRegulares)},
			{"Estado de la postulación:", rec.Postulacion.Estado},
		},
	}

	return document.Section{Level: document.LevelBody, Tables: []document.Table{table}}
}

func (a *AgreementAssembler) clauseAntecedentes(rec *AgreementRecord) document.Section {
	nombre := strings.TrimSpace(rec.Estudiante.Nombre + " " + rec.Estudiante.Apellido)

	contenido := fmt.Sprintf(
		"<b>PRIMERA: ANTECEDENTES. -</b>\n\n"+
			"Comparecen a la suscripción del presente Contrato, por una parte la Empresa <b>%s</b>, "+
			"con domicilio en <b>%s</b>, representada para estos actos por su representante legal, "+
			"y por otra parte, el/la estudiante <b>%s</b>, DNI <b>%s</b>, "+
			"alumno/a de la carrera <b>%s</b>, "+
			"quien se presenta voluntariamente para realizar las prácticas previstas en el presente contrato.",
		rec.Empresa.Nombre, rec.Empresa.Direccion, nombre, rec.Estudiante.DNI, rec.Carrera.Nombre)

	return document.Section{Content: contenido, Level: document.LevelBody}
}

func (a *AgreementAssembler) clauseObjeto(rec *AgreementRecord) document.Section {
	contenido := fmt.Sprintf(
		"<b>SEGUNDA: OBJETO. -</b>\n\n"+
			"El objeto del presente contrato es que el/la estudiante realice prácticas profesionales en el proyecto "+
			"denominado <b>\"%s\"</b> con funciones de <b>%s</b>, "+
			"bajo la supervisión y dirección de la Empresa. "+
			"Las tareas estarán relacionadas con la formación académica del/la estudiante y con las necesidades del proyecto.",
		rec.Proyecto.Nombre, rec.Puesto.Nombre)

	return document.Section{Content: contenido, Level: document.LevelBody}
}

func (a *AgreementAssembler) clauseLugarYHorario(rec *AgreementRecord) document.Section {
	contenido := fmt.Sprintf(
		"<b>TERCERA: LUGAR DE PRÁCTICAS Y HORARIO. -</b>\n\n"+
			"Las prácticas se desarrollarán en las oficinas de la Empresa ubicadas en <b>%s</b> "+
			"y/o en modalidad remota según lo acuerden las partes. "+
			"El/la estudiante dedicará aproximadamente <b>%s horas semanales</b>, "+
			"en jornadas compatibles con sus obligaciones académicas.",
		rec.Empresa.Direccion, formatHours(rec.Puesto.HorasDedicadas))

	return document.Section{Content: contenido, Level: document.LevelBody}
}

func (a *AgreementAssembler) clauseRemuneracion() document.Section {
	const contenido = "<b>CUARTA: PENSIÓN / REMUNERACIÓN. -</b>\n\n" +
		"Las partes acuerdan que la pasantía será no remunerada. " +
		"En caso de corresponder, la determinación y forma de pago se registrará en anexo aparte. " +
		"El/la estudiante conservará los derechos y beneficios de orden legal que correspondan."

	return document.Section{Content: contenido, Level: document.LevelBody}
}

func (a *AgreementAssembler) clauseDuracion(rec *AgreementRecord) document.Section {
	inicio := a.formatDate(rec.Contrato.FechaInicio)
	fin := a.formatDate(rec.Contrato.FechaFin)

	contenido := fmt.Sprintf(
		"<b>QUINTA: DURACIÓN. -</b>\n\n"+
			"El presente contrato tendrá vigencia desde <b>%s</b> hasta <b>%s</b>, "+
			"sin perjuicio de su prórroga por acuerdo expreso de las partes.",
		inicio, fin)

	return document.Section{Content: contenido, Level: document.LevelBody}
}

func (a *AgreementAssembler) signatures(rec *AgreementRecord) document.Section {
	nombre := strings.TrimSpace(rec.Estudiante.Nombre + " " + rec.Estudiante.Apellido)

	contenido := fmt.Sprintf(
		"\n\n"+
			"______________________________          ______________________________\n\n"+
			"Firma y sello - %s            Firma del/de la estudiante: %s\n\n",
		rec.Empresa.Nombre, nombre)

	if rec.Universidad.Correo != "" {
		contenido += "Contacto prácticas: " + rec.Universidad.Correo
	}

	return document.Section{Content: contenido, Level: document.LevelFooter}
}
