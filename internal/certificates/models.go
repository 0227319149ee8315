package certificates

import "strings"

type Student struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	DNI             string `json:"dni"`
	TipoDNI         string `json:"tipo_dni"`
	Email           string `json:"email"`
	CUIL            string `json:"cuil"`
	FechaNacimiento string `json:"fecha_nacimiento"`
}

type University struct {
	Nombre       string `json:"nombre"`
	Direccion    string `json:"direccion"`
	CodigoPostal int    `json:"codigo_postal"`
	Correo       string `json:"correo"`
	Telefono     string `json:"telefono"`
}

type Career struct {
	Nombre       string `json:"nombre"`
	Codigo       string `json:"codigo"`
	Descripcion  string `json:"descripcion"`
	PlanEstudios string `json:"plan_estudios"`
}

type Company struct {
	Nombre       string `json:"nombre"`
	Direccion    string `json:"direccion"`
	CodigoPostal int    `json:"codigo_postal"`
	Correo       string `json:"correo"`
	Telefono     string `json:"telefono"`
	Codigo       int    `json:"codigo"`
}

type Project struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Numero      int    `json:"numero"`
	Estado      string `json:"estado"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}

type Position struct {
	Nombre         string  `json:"nombre"`
	Descripcion    string  `json:"descripcion"`
	Codigo         int     `json:"codigo"`
	HorasDedicadas float64 `json:"horas_dedicadas"`
}

type Application struct {
	Numero                    int    `json:"numero"`
	Fecha                     string `json:"fecha"`
	Estado                    string `json:"estado"`
	CantidadMateriasAprobadas int    `json:"cantidad_materias_aprobadas"`
	CantidadMateriasRegulares int    `json:"cantidad_materias_regulares"`
}

type Contract struct {
	Numero       int    `json:"numero"`
	FechaInicio  string `json:"fecha_inicio"`
	FechaFin     string `json:"fecha_fin"`
	FechaEmision string `json:"fecha_emision"`
	Estado       string `json:"estado"`
}

type ReceiptRecord struct {
	Estudiante  Student     `json:"estudiante"`
	Universidad University  `json:"universidad"`
	Carrera     Career      `json:"carrera"`
	Empresa     Company     `json:"empresa"`
	Proyecto    Project     `json:"proyecto"`
	Puesto      Position    `json:"puesto"`
	Postulacion Application `json:"postulacion"`
}

func (r *ReceiptRecord) Validate() error {
	if strings.TrimSpace(r.Estudiante.Nombre) == "" {
		return &ValidationError{Field: "estudiante.nombre", Message: "Los datos del estudiante son requeridos"}
	}
	if r.Postulacion.Numero <= 0 {
		return &ValidationError{Field: "postulacion.numero", Message: "Los datos de la postulación son requeridos"}
	}
	if strings.TrimSpace(r.Universidad.Nombre) == "" {
		return &ValidationError{Field: "universidad.nombre", Message: "Los datos de la universidad son requeridos"}
	}
	return nil
}

func (r *ReceiptRecord) Serial() int {
	return r.Postulacion.Numero
}

type AgreementRecord struct {
	Estudiante  Student     `json:"estudiante"`
	Universidad University  `json:"universidad"`
	Carrera     Career      `json:"carrera"`
	Empresa     Company     `json:"empresa"`
	Proyecto    Project     `json:"proyecto"`
	Puesto      Position    `json:"puesto"`
	Postulacion Application `json:"postulacion"`
	Contrato    Contract    `json:"contrato"`
}

func (r *AgreementRecord) Validate() error {
	if strings.TrimSpace(r.Estudiante.Nombre) == "" {
		return &ValidationError{Field: "estudiante.nombre", Message: "Los datos del estudiante son requeridos"}
	}
	if r.Contrato.Numero <= 0 {
		return &ValidationError{Field: "contrato.numero", Message: "Los datos del contrato son requeridos"}
	}
	if strings.TrimSpace(r.Universidad.Nombre) == "" {
		return &ValidationError{Field: "universidad.nombre", Message: "Los datos de la universidad son requeridos"}
	}
	return nil
}

func (r *AgreementRecord) Serial() int {
	return r.Contrato.Numero
}
