package certificates

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
	"internship-portal/pdf-export/pdf-export-backend/pkg/dates"
)

var cuilPattern = regexp.MustCompile(`^\d{2}-\d{7,8}-\d$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return dates.Valid(fl.Field().String())
		})
		v.RegisterValidation("cuil", func(fl validator.FieldLevel) bool {
			return cuilPattern.MatchString(fl.Field().String())
		})
	}
}

// ReceiptRequest is the wire shape accepted by the application receipt
// endpoint. Field names and constraints are fixed by the portal contract.
type ReceiptRequest struct {
	Estudiante  ReceiptStudent     `json:"estudiante" binding:"required"`
	Universidad ReceiptUniversity  `json:"universidad" binding:"required"`
	Carrera     ReceiptCareer      `json:"carrera" binding:"required"`
	Empresa     ReceiptCompany     `json:"empresa" binding:"required"`
	Proyecto    ReceiptProject     `json:"proyecto" binding:"required"`
	Puesto      ReceiptPosition    `json:"puesto" binding:"required"`
	Postulacion ReceiptApplication `json:"postulacion" binding:"required"`
	Style       *StylePayload      `json:"style"`
}

type ReceiptStudent struct {
	Nombre          string `json:"nombre" binding:"required,min=1,max=100"`
	Apellido        string `json:"apellido" binding:"required,min=1,max=100"`
	DNI             string `json:"dni" binding:"required,min=7,max=10"`
	Email           string `json:"email" binding:"omitempty,email"`
	CUIL            string `json:"cuil" binding:"omitempty,cuil"`
	FechaNacimiento string `json:"fecha_nacimiento" binding:"omitempty,isodate"`
	TipoDNI         string `json:"tipo_dni" binding:"omitempty,max=20"`
}

type ReceiptUniversity struct {
	Nombre       string `json:"nombre" binding:"required,min=1,max=200"`
	Direccion    string `json:"direccion" binding:"required,min=1,max=300"`
	CodigoPostal int    `json:"codigo_postal" binding:"omitempty,min=1000,max=9999"`
	Correo       string `json:"correo" binding:"omitempty,email"`
	Telefono     string `json:"telefono" binding:"omitempty,max=14"`
}

type ReceiptCareer struct {
	Nombre       string `json:"nombre" binding:"required,min=1,max=200"`
	Codigo       string `json:"codigo" binding:"omitempty,min=1,max=50"`
	Descripcion  string `json:"descripcion" binding:"omitempty,max=100"`
	PlanEstudios string `json:"plan_estudios" binding:"omitempty,max=100"`
}

type ReceiptCompany struct {
	Nombre       string `json:"nombre" binding:"required,min=1,max=200"`
	Direccion    string `json:"direccion" binding:"omitempty,min=1,max=300"`
	CodigoPostal int    `json:"codigo_postal" binding:"omitempty,min=1000,max=9999"`
	Telefono     string `json:"telefono" binding:"omitempty,max=50"`
	Codigo       int    `json:"codigo" binding:"omitempty,min=1"`
}

type ReceiptProject struct {
	Nombre      string `json:"nombre" binding:"required,min=1,max=200"`
	FechaInicio string `json:"fecha_inicio" binding:"omitempty,isodate"`
	Descripcion string `json:"descripcion" binding:"omitempty,min=1,max=1000"`
	Numero      int    `json:"numero" binding:"omitempty,min=1"`
	Estado      string `json:"estado" binding:"omitempty,max=50"`
	FechaFin    string `json:"fecha_fin" binding:"omitempty,isodate"`
}

type ReceiptPosition struct {
	Nombre         string  `json:"nombre" binding:"required,min=1,max=200"`
	Descripcion    string  `json:"descripcion" binding:"omitempty,min=1,max=1000"`
	Codigo         int     `json:"codigo" binding:"omitempty,min=1"`
	HorasDedicadas float64 `json:"horas_dedicadas" binding:"omitempty,min=0,max=168"`
}

type ReceiptApplication struct {
	Numero                    int    `json:"numero" binding:"required,min=1"`
	Fecha                     string `json:"fecha" binding:"required,isodate"`
	CantidadMateriasAprobadas *int   `json:"cantidad_materias_aprobadas" binding:"required,min=0"`
	CantidadMateriasRegulares *int   `json:"cantidad_materias_regulares" binding:"required,min=0"`
	Estado                    string `json:"estado" binding:"omitempty,min=1,max=50"`
}

// ToRecord maps the bound request onto the unified record, applying the
// documented defaults (tipo_dni "DNI", estado "Pendiente").
func (r *ReceiptRequest) ToRecord() *ReceiptRecord {
	rec := &ReceiptRecord{
		Estudiante: Student{
			Nombre:          r.Estudiante.Nombre,
			Apellido:        r.Estudiante.Apellido,
			DNI:             r.Estudiante.DNI,
			TipoDNI:         r.Estudiante.TipoDNI,
			Email:           r.Estudiante.Email,
			CUIL:            r.Estudiante.CUIL,
			FechaNacimiento: r.Estudiante.FechaNacimiento,
		},
		Universidad: University{
			Nombre:       r.Universidad.Nombre,
			Direccion:    r.Universidad.Direccion,
			CodigoPostal: r.Universidad.CodigoPostal,
			Correo:       r.Universidad.Correo,
			Telefono:     r.Universidad.Telefono,
		},
		Carrera: Career{
			Nombre:       r.Carrera.Nombre,
			Codigo:       r.Carrera.Codigo,
			Descripcion:  r.Carrera.Descripcion,
			PlanEstudios: r.Carrera.PlanEstudios,
		},
		Empresa: Company{
			Nombre:       r.Empresa.Nombre,
			Direccion:    r.Empresa.Direccion,
			CodigoPostal: r.Empresa.CodigoPostal,
			Telefono:     r.Empresa.Telefono,
			Codigo:       r.Empresa.Codigo,
		},
		Proyecto: Project{
			Nombre:      r.Proyecto.Nombre,
			Descripcion: r.Proyecto.Descripcion,
			Numero:      r.Proyecto.Numero,
			Estado:      r.Proyecto.Estado,
			FechaInicio: r.Proyecto.FechaInicio,
			FechaFin:    r.Proyecto.FechaFin,
		},
		Puesto: Position{
			Nombre:         r.Puesto.Nombre,
			Descripcion:    r.Puesto.Descripcion,
			Codigo:         r.Puesto.Codigo,
			HorasDedicadas: r.Puesto.HorasDedicadas,
		},
		Postulacion: Application{
			Numero:                    r.Postulacion.Numero,
			Fecha:                     r.Postulacion.Fecha,
			Estado:                    r.Postulacion.Estado,
			CantidadMateriasAprobadas: intOrZero(r.Postulacion.CantidadMateriasAprobadas),
			CantidadMateriasRegulares: intOrZero(r.Postulacion.CantidadMateriasRegulares),
		},
	}
	if rec.Estudiante.TipoDNI == "" {
		rec.Estudiante.TipoDNI = "DNI"
	}
	if rec.Postulacion.Estado == "" {
		rec.Postulacion.Estado = "Pendiente"
	}
	return rec
}

// AgreementRequest is the wire shape accepted by the internship agreement
// endpoint. It shares the receipt vocabulary with stricter required-ness.
type AgreementRequest struct {
	Estudiante  AgreementStudent     `json:"estudiante" binding:"required"`
	Universidad AgreementUniversity  `json:"universidad" binding:"required"`
	Carrera     AgreementCareer      `json:"carrera" binding:"required"`
	Empresa     AgreementCompany     `json:"empresa" binding:"required"`
	Proyecto    AgreementProject     `json:"proyecto" binding:"required"`
	Puesto      AgreementPosition    `json:"puesto" binding:"required"`
	Postulacion AgreementApplication `json:"postulacion" binding:"required"`
	Contrato    AgreementContract    `json:"contrato" binding:"required"`
	Style       *StylePayload        `json:"style"`
}

type AgreementStudent struct {
	Nombre          string `json:"nombre" binding:"required,min=1,max=100"`
	Apellido        string `json:"apellido" binding:"required,min=1,max=100"`
	DNI             string `json:"dni" binding:"required,min=7,max=10"`
	Email           string `json:"email" binding:"required,email"`
	CUIL            string `json:"cuil" binding:"omitempty,cuil"`
	FechaNacimiento string `json:"fecha_nacimiento" binding:"omitempty,isodate"`
	TipoDNI         string `json:"tipo_dni" binding:"omitempty,max=20"`
}

type AgreementUniversity struct {
	Nombre       string `json:"nombre" binding:"required,min=1,max=200"`
	Direccion    string `json:"direccion" binding:"omitempty,min=1,max=300"`
	CodigoPostal int    `json:"codigo_postal" binding:"omitempty,min=1000,max=9999"`
	Correo       string `json:"correo" binding:"required,email"`
	Telefono     string `json:"telefono" binding:"required,max=18"`
}

type AgreementCareer struct {
	Nombre       string `json:"nombre" binding:"required,min=1,max=200"`
	Codigo       string `json:"codigo" binding:"omitempty,min=1,max=50"`
	Descripcion  string `json:"descripcion" binding:"omitempty,max=100"`
	PlanEstudios string `json:"plan_estudios" binding:"required,max=100"`
}

type AgreementCompany struct {
	Nombre       string `json:"nombre" binding:"required,min=1,max=200"`
	Direccion    string `json:"direccion" binding:"omitempty,min=1,max=300"`
	CodigoPostal int    `json:"codigo_postal" binding:"omitempty,min=1000,max=9999"`
	Correo       string `json:"correo" binding:"required,email"`
	Telefono     string `json:"telefono" binding:"required,max=18"`
	Codigo       int    `json:"codigo" binding:"omitempty,min=1"`
}

type AgreementProject struct {
	Nombre      string `json:"nombre" binding:"required,min=1,max=50"`
	FechaInicio string `json:"fecha_inicio" binding:"omitempty,isodate"`
	Descripcion string `json:"descripcion" binding:"omitempty,max=500"`
	Numero      int    `json:"numero" binding:"required,min=1"`
	Estado      string `json:"estado" binding:"omitempty,max=50"`
	FechaFin    string `json:"fecha_fin" binding:"required,isodate"`
}

type AgreementPosition struct {
	Nombre         string `json:"nombre" binding:"required,min=1,max=200"`
	Descripcion    string `json:"descripcion" binding:"omitempty,max=200"`
	Codigo         int    `json:"codigo" binding:"omitempty,min=1"`
	HorasDedicadas *int   `json:"horas_dedicadas" binding:"required,min=0"`
}

type AgreementApplication struct {
	Numero                    int    `json:"numero" binding:"required,min=1"`
	Fecha                     string `json:"fecha" binding:"required,isodate"`
	CantidadMateriasAprobadas *int   `json:"cantidad_materias_aprobadas" binding:"required,min=0"`
	CantidadMateriasRegulares *int   `json:"cantidad_materias_regulares" binding:"required,min=0"`
	Estado                    string `json:"estado" binding:"omitempty,max=50"`
}

type AgreementContract struct {
	Numero       int    `json:"numero" binding:"required,min=1"`
	FechaInicio  string `json:"fecha_inicio" binding:"required,isodate"`
	FechaFin     string `json:"fecha_fin" binding:"required,isodate"`
	FechaEmision string `json:"fecha_emision" binding:"required,isodate"`
	Estado       string `json:"estado" binding:"omitempty,max=50"`
}

// ToRecord maps the bound request onto the unified record.
func (r *AgreementRequest) ToRecord() *AgreementRecord {
	rec := &AgreementRecord{
		Estudiante: Student{
			Nombre:          r.Estudiante.Nombre,
			Apellido:        r.Estudiante.Apellido,
			DNI:             r.Estudiante.DNI,
			TipoDNI:         r.Estudiante.TipoDNI,
			Email:           r.Estudiante.Email,
			CUIL:            r.Estudiante.CUIL,
			FechaNacimiento: r.Estudiante.FechaNacimiento,
		},
		Universidad: University{
			Nombre:       r.Universidad.Nombre,
			Direccion:    r.Universidad.Direccion,
			CodigoPostal: r.Universidad.CodigoPostal,
			Correo:       r.Universidad.Correo,
			Telefono:     r.Universidad.Telefono,
		},
		Carrera: Career{
			Nombre:       r.Carrera.Nombre,
			Codigo:       r.Carrera.Codigo,
			Descripcion:  r.Carrera.Descripcion,
			PlanEstudios: r.Carrera.PlanEstudios,
		},
		Empresa: Company{
			Nombre:       r.Empresa.Nombre,
			Direccion:    r.Empresa.Direccion,
			CodigoPostal: r.Empresa.CodigoPostal,
			Correo:       r.Empresa.Correo,
			Telefono:     r.Empresa.Telefono,
			Codigo:       r.Empresa.Codigo,
		},
		Proyecto: Project{
			Nombre:      r.Proyecto.Nombre,
			Descripcion: r.Proyecto.Descripcion,
			Numero:      r.Proyecto.Numero,
			Estado:      r.Proyecto.Estado,
			FechaInicio: r.Proyecto.FechaInicio,
			FechaFin:    r.Proyecto.FechaFin,
		},
		Puesto: Position{
			Nombre:         r.Puesto.Nombre,
			Descripcion:    r.Puesto.Descripcion,
			Codigo:         r.Puesto.Codigo,
			HorasDedicadas: float64(intOrZero(r.Puesto.HorasDedicadas)),
		},
		Postulacion: Application{
			Numero:                    r.Postulacion.Numero,
			Fecha:                     r.Postulacion.Fecha,
			Estado:                    r.Postulacion.Estado,
			CantidadMateriasAprobadas: intOrZero(r.Postulacion.CantidadMateriasAprobadas),
			CantidadMateriasRegulares: intOrZero(r.Postulacion.CantidadMateriasRegulares),
		},
		Contrato: Contract{
			Numero:       r.Contrato.Numero,
			FechaInicio:  r.Contrato.FechaInicio,
			FechaFin:     r.Contrato.FechaFin,
			FechaEmision: r.Contrato.FechaEmision,
			Estado:       r.Contrato.Estado,
		},
	}
	if rec.Estudiante.TipoDNI == "" {
		rec.Estudiante.TipoDNI = "DNI"
	}
	if rec.Postulacion.Estado == "" {
		rec.Postulacion.Estado = "Pendiente"
	}
	return rec
}

// DocumentRequest is the free-form wire shape accepted by the generic
// endpoint: the caller provides the sections and tables verbatim.
type DocumentRequest struct {
	Title       string                 `json:"title" binding:"required,min=1,max=200"`
	Author      string                 `json:"author" binding:"omitempty,max=100"`
	PageSize    string                 `json:"page_size" binding:"omitempty,oneof=A4 LETTER LEGAL A3 A5"`
	Orientation string                 `json:"orientation" binding:"omitempty,oneof=portrait landscape"`
	Sections    []SectionPayload       `json:"sections" binding:"required,min=1,dive"`
	Style       *StylePayload          `json:"style"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type SectionPayload struct {
	Title   string         `json:"title" binding:"required,min=1,max=200"`
	Content string         `json:"content" binding:"omitempty,max=50000"`
	Level   int            `json:"level" binding:"omitempty,min=1,max=6"`
	Tables  []TablePayload `json:"tables" binding:"omitempty,dive"`
}

type TablePayload struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers" binding:"required,min=1"`
	Rows    [][]string `json:"rows"`
}

// StylePayload carries optional style overrides. Absent fields keep the
// configured defaults.
type StylePayload struct {
	PrimaryColor string   `json:"primary_color" binding:"omitempty,len=7,hexcolor"`
	TextColor    string   `json:"text_color" binding:"omitempty,len=7,hexcolor"`
	FontFamily   string   `json:"font_family" binding:"omitempty,oneof=Helvetica Times-Roman Courier"`
	FontSize     float64  `json:"font_size" binding:"omitempty,min=6,max=72"`
	MarginTop    *float64 `json:"margin_top" binding:"omitempty,min=0,max=300"`
	MarginBottom *float64 `json:"margin_bottom" binding:"omitempty,min=0,max=300"`
	MarginLeft   *float64 `json:"margin_left" binding:"omitempty,min=0,max=300"`
	MarginRight  *float64 `json:"margin_right" binding:"omitempty,min=0,max=300"`
}

// ApplyTo patches the provided base style with the overrides present in the
// payload. Font size patches the body size only; heading sizes are fixed.
func (p *StylePayload) ApplyTo(base document.Style) document.Style {
	s := base
	if p == nil {
		return s
	}
	if p.PrimaryColor != "" {
		s.Colors.Primary = p.PrimaryColor
	}
	if p.TextColor != "" {
		s.Colors.Text = p.TextColor
	}
	if p.FontFamily != "" {
		s.Fonts.Family = p.FontFamily
	}
	if p.FontSize != 0 {
		s.Fonts.SizeBody = p.FontSize
	}
	if p.MarginTop != nil {
		s.Margins.Top = *p.MarginTop
	}
	if p.MarginBottom != nil {
		s.Margins.Bottom = *p.MarginBottom
	}
	if p.MarginLeft != nil {
		s.Margins.Left = *p.MarginLeft
	}
	if p.MarginRight != nil {
		s.Margins.Right = *p.MarginRight
	}
	return s
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
