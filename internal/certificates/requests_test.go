package certificates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestReceiptRequestToRecordAppliesDefaults(t *testing.T) {
	req := &ReceiptRequest{
		Estudiante:  ReceiptStudent{Nombre: "Juan", Apellido: "Pérez", DNI: "12345678"},
		Universidad: ReceiptUniversity{Nombre: "UTN", Direccion: "Av. Medrano 951"},
		Carrera:     ReceiptCareer{Nombre: "Ingeniería en Sistemas de Información"},
		Empresa:     ReceiptCompany{Nombre: "Tech Solutions S.A."},
		Proyecto:    ReceiptProject{Nombre: "Desarrollo de Microservicios"},
		Puesto:      ReceiptPosition{Nombre: "Desarrollador Backend Junior"},
		Postulacion: ReceiptApplication{
			Numero:                    1024,
			Fecha:                     "2024-02-20T14:30:00Z",
			CantidadMateriasAprobadas: intPtr(25),
			CantidadMateriasRegulares: intPtr(2),
		},
	}

	rec := req.ToRecord()
	assert.Equal(t, "DNI", rec.Estudiante.TipoDNI)
	assert.Equal(t, "Pendiente", rec.Postulacion.Estado)
	assert.Equal(t, 25, rec.Postulacion.CantidadMateriasAprobadas)
	assert.Equal(t, 2, rec.Postulacion.CantidadMateriasRegulares)
}

func TestReceiptRequestToRecordKeepsExplicitValues(t *testing.T) {
	req := &ReceiptRequest{
		Estudiante: ReceiptStudent{Nombre: "Juan", Apellido: "Pérez", DNI: "12345678", TipoDNI: "Pasaporte"},
		Postulacion: ReceiptApplication{
			Numero:                    1,
			Estado:                    "Aceptada",
			CantidadMateriasAprobadas: intPtr(0),
			CantidadMateriasRegulares: intPtr(0),
		},
	}

	rec := req.ToRecord()
	assert.Equal(t, "Pasaporte", rec.Estudiante.TipoDNI)
	assert.Equal(t, "Aceptada", rec.Postulacion.Estado)
	assert.Equal(t, 0, rec.Postulacion.CantidadMateriasAprobadas)
}

func TestAgreementRequestToRecordMapsContract(t *testing.T) {
	req := &AgreementRequest{
		Estudiante:  AgreementStudent{Nombre: "Juan", Apellido: "Pérez", DNI: "12345678", Email: "juan.perez@frba.utn.edu.ar"},
		Universidad: AgreementUniversity{Nombre: "UTN", Correo: "pasantias@utn.edu.ar", Telefono: "011-4867-7500"},
		Carrera:     AgreementCareer{Nombre: "Ingeniería en Sistemas de Información", PlanEstudios: "Plan 2023"},
		Empresa:     AgreementCompany{Nombre: "Tech Solutions S.A.", Correo: "rrhh@techsolutions.com", Telefono: "011-5555-1234"},
		Proyecto:    AgreementProject{Nombre: "Desarrollo de Microservicios", Numero: 15, FechaFin: "2024-10-01"},
		Puesto:      AgreementPosition{Nombre: "Desarrollador Backend Junior", HorasDedicadas: intPtr(20)},
		Postulacion: AgreementApplication{
			Numero:                    1024,
			Fecha:                     "2024-02-20T14:30:00Z",
			CantidadMateriasAprobadas: intPtr(25),
			CantidadMateriasRegulares: intPtr(2),
		},
		Contrato: AgreementContract{
			Numero:       777,
			FechaInicio:  "2024-04-01",
			FechaFin:     "2024-10-01",
			FechaEmision: "2024-03-20T10:00:00Z",
		},
	}

	rec := req.ToRecord()
	assert.Equal(t, 777, rec.Contrato.Numero)
	assert.Equal(t, float64(20), rec.Puesto.HorasDedicadas)
	assert.Equal(t, "Pendiente", rec.Postulacion.Estado)
	assert.Equal(t, 777, rec.Serial())
}

func TestStylePayloadApplyToPatchesOnlyProvidedFields(t *testing.T) {
	base := document.DefaultStyle()

	patched := (&StylePayload{
		PrimaryColor: "#FF0000",
		FontSize:     12,
		MarginTop:    floatPtr(0),
	}).ApplyTo(base)

	assert.Equal(t, "#FF0000", patched.Colors.Primary)
	assert.Equal(t, base.Colors.Text, patched.Colors.Text)
	assert.Equal(t, base.Fonts.Family, patched.Fonts.Family)
	assert.Equal(t, float64(12), patched.Fonts.SizeBody)
	assert.Equal(t, base.Fonts.SizeTitle, patched.Fonts.SizeTitle)
	assert.Equal(t, float64(0), patched.Margins.Top)
	assert.Equal(t, base.Margins.Left, patched.Margins.Left)
}

func TestStylePayloadApplyToNilKeepsBase(t *testing.T) {
	base := document.ProfessionalStyle()

	var payload *StylePayload
	assert.Equal(t, base, payload.ApplyTo(base))
}

func TestCUILPattern(t *testing.T) {
	assert.True(t, cuilPattern.MatchString("20-12345678-3"))
	assert.True(t, cuilPattern.MatchString("27-1234567-4"))
	assert.False(t, cuilPattern.MatchString("20-123456-3"))
	assert.False(t, cuilPattern.MatchString("2012345678"))
	assert.False(t, cuilPattern.MatchString("20-12345678-34"))
}
