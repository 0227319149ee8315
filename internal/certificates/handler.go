package certificates

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-portal/pdf-export/pdf-export-backend/internal/export"
)

// ErrorResponse is the wire shape of every failed response.
type ErrorResponse struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// statusByCode maps domain error codes onto HTTP statuses; unknown codes
// answer 400.
var statusByCode = map[string]int{
	CodeNotFound:      http.StatusNotFound,
	CodePDFGeneration: http.StatusInternalServerError,
}

// Handler exposes certificate generation over HTTP.
type Handler struct {
	service Service
	version string
}

// NewHandler creates a new certificates handler.
func NewHandler(service Service, version string) *Handler {
	return &Handler{service: service, version: version}
}

// RegisterRoutes registers the generation routes under /pdf.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	pdf := rg.Group("/pdf")
	{
		pdf.GET("/health", h.Health)
		pdf.POST("/generate", h.GenerateDocument)
		pdf.POST("/generate/comprobante_postulacion", h.GenerateReceipt)
		pdf.POST("/generate/comprobante_contrato", h.GenerateAgreement)
	}
}

// Health handles GET /pdf/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pdf-generator",
		"version": h.version,
	})
}

// GenerateReceipt handles POST /pdf/generate/comprobante_postulacion
func (h *Handler) GenerateReceipt(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", "pdf"))
	if err != nil {
		respondError(c, CodeValidation, err.Error(), nil)
		return
	}

	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, CodeValidation, err.Error(), nil)
		return
	}

	result, err := h.service.GenerateReceipt(c.Request.Context(), req.ToRecord(), ExportOptions{Format: format, Style: req.Style})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondFile(c, result)
}

// GenerateAgreement handles POST /pdf/generate/comprobante_contrato
func (h *Handler) GenerateAgreement(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", "pdf"))
	if err != nil {
		respondError(c, CodeValidation, err.Error(), nil)
		return
	}

	var req AgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, CodeValidation, err.Error(), nil)
		return
	}

	result, err := h.service.GenerateAgreement(c.Request.Context(), req.ToRecord(), ExportOptions{Format: format, Style: req.Style})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondFile(c, result)
}

// GenerateDocument handles POST /pdf/generate
func (h *Handler) GenerateDocument(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", "pdf"))
	if err != nil {
		respondError(c, CodeValidation, err.Error(), nil)
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, CodeValidation, err.Error(), nil)
		return
	}

	result, err := h.service.GenerateDocument(c.Request.Context(), &req, ExportOptions{Format: format, Style: req.Style})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondFile(c, result)
}

// respondFile sends the rendered bytes as a download attachment.
func respondFile(c *gin.Context, result *ExportResult) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

// respondDomainError translates service errors into the wire taxonomy.
func respondDomainError(c *gin.Context, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		respondError(c, CodeInvalidDocument, vErr.Message, map[string]interface{}{"field": vErr.Field})
		return
	}

	var rErr *RenderError
	if errors.As(err, &rErr) {
		respondError(c, CodePDFGeneration, rErr.Error(), map[string]interface{}{"document_id": rErr.DocumentID})
		return
	}

	respondError(c, CodePDFGeneration, err.Error(), nil)
}

func respondError(c *gin.Context, code, message string, details map[string]interface{}) {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   code,
		Message: message,
		Details: details,
	})
}
