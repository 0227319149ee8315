package certificates

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
	"internship-portal/pdf-export/pdf-export-backend/internal/export"
)

// ExportOptions selects the output format and an optional style override.
// Override fields patch the configured default style.
type ExportOptions struct {
	Format export.Format
	Style  *StylePayload
}

// ExportResult is a rendered document ready to be returned to the caller.
type ExportResult struct {
	Content     []byte
	FileName    string
	ContentType string
	DocumentID  string
	Serial      int
}

// Service generates certificate documents and renders them for download.
type Service interface {
	GenerateReceipt(ctx context.Context, rec *ReceiptRecord, opts ExportOptions) (*ExportResult, error)
	GenerateAgreement(ctx context.Context, rec *AgreementRecord, opts ExportOptions) (*ExportResult, error)
	GenerateDocument(ctx context.Context, req *DocumentRequest, opts ExportOptions) (*ExportResult, error)
}

type service struct {
	receipts   *ReceiptAssembler
	agreements *AgreementAssembler
	registry   *export.Registry
	style      document.Style
	logger     *zap.Logger
}

// NewService wires the assemblers and the renderer registry together. The
// style is the configured default; requests may override it per call.
func NewService(receipts *ReceiptAssembler, agreements *AgreementAssembler, registry *export.Registry, style document.Style, logger *zap.Logger) Service {
	return &service{
		receipts:   receipts,
		agreements: agreements,
		registry:   registry,
		style:      style,
		logger:     logger,
	}
}

// GenerateReceipt assembles and renders an application receipt.
func (s *service) GenerateReceipt(ctx context.Context, rec *ReceiptRecord, opts ExportOptions) (*ExportResult, error) {
	doc, err := s.receipts.Assemble(rec)
	if err != nil {
		return nil, err
	}

	content, renderer, err := s.render(doc, opts, "Error al generar el comprobante de postulación")
	if err != nil {
		s.logger.Error("Receipt rendering failed",
			zap.Int("numero_postulacion", rec.Postulacion.Numero),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Receipt generated",
		zap.Int("numero_postulacion", rec.Postulacion.Numero),
		zap.String("document_id", doc.ID.String()),
		zap.String("format", renderer.Extension()))

	return &ExportResult{
		Content:     content,
		FileName:    fmt.Sprintf("comprobante_postulacion_%d.%s", rec.Postulacion.Numero, renderer.Extension()),
		ContentType: renderer.ContentType(),
		DocumentID:  doc.ID.String(),
		Serial:      rec.Serial(),
	}, nil
}

// GenerateAgreement assembles and renders an internship agreement.
func (s *service) GenerateAgreement(ctx context.Context, rec *AgreementRecord, opts ExportOptions) (*ExportResult, error) {
	doc, err := s.agreements.Assemble(rec)
	if err != nil {
		return nil, err
	}

	content, renderer, err := s.render(doc, opts, "Error al generar el contrato de pasantía")
	if err != nil {
		s.logger.Error("Agreement rendering failed",
			zap.Int("numero_contrato", rec.Contrato.Numero),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Agreement generated",
		zap.Int("numero_contrato", rec.Contrato.Numero),
		zap.String("document_id", doc.ID.String()),
		zap.String("format", renderer.Extension()))

	return &ExportResult{
		Content:     content,
		FileName:    fmt.Sprintf("contrato_pasantia_%d.%s", rec.Contrato.Numero, renderer.Extension()),
		ContentType: renderer.ContentType(),
		DocumentID:  doc.ID.String(),
		Serial:      rec.Serial(),
	}, nil
}

// GenerateDocument renders a free-form document from caller-provided sections.
func (s *service) GenerateDocument(ctx context.Context, req *DocumentRequest, opts ExportOptions) (*ExportResult, error) {
	doc, err := s.buildDocument(req)
	if err != nil {
		return nil, err
	}

	content, renderer, err := s.render(doc, opts, "Error al generar el PDF")
	if err != nil {
		s.logger.Error("Document rendering failed",
			zap.String("title", req.Title),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Document generated",
		zap.String("title", req.Title),
		zap.String("document_id", doc.ID.String()),
		zap.String("format", renderer.Extension()))

	return &ExportResult{
		Content:     content,
		FileName:    fmt.Sprintf("%s_%s.%s", sanitizeTitle(doc.Title), doc.ID.String(), renderer.Extension()),
		ContentType: renderer.ContentType(),
		DocumentID:  doc.ID.String(),
	}, nil
}

// render resolves the renderer, applies any style override and produces the
// output bytes. Renderer failures come back as *RenderError.
func (s *service) render(doc *document.Document, opts ExportOptions, errMessage string) ([]byte, export.Renderer, error) {
	format := opts.Format
	if format == "" {
		format = export.FormatPDF
	}
	renderer, err := s.registry.Get(format)
	if err != nil {
		return nil, nil, err
	}

	content, err := renderer.Render(doc, opts.Style.ApplyTo(s.style))
	if err != nil {
		return nil, nil, &RenderError{DocumentID: doc.ID.String(), Message: errMessage, Err: err}
	}
	doc.MarkGenerated()
	return content, renderer, nil
}

func (s *service) buildDocument(req *DocumentRequest) (*document.Document, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Field: "title", Message: "El título del documento es requerido"}
	}
	if len(req.Sections) == 0 {
		return nil, &ValidationError{Field: "sections", Message: "El documento debe tener al menos una sección"}
	}

	doc, err := document.New(req.Title)
	if err != nil {
		return nil, &ValidationError{Field: "title", Message: err.Error()}
	}
	if req.Author != "" {
		doc.Author = req.Author
	}
	if req.PageSize != "" {
		doc.PageSize = document.PageSize(req.PageSize)
	}
	if req.Orientation != "" {
		doc.Orientation = document.Orientation(req.Orientation)
	}
	if req.Metadata != nil {
		doc.Metadata = req.Metadata
	}

	for i, sp := range req.Sections {
		level := sp.Level
		if level == 0 {
			level = document.LevelPrimary
		}
		section, err := document.NewSection(sp.Title, sp.Content, level)
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("sections[%d].level", i), Message: err.Error()}
		}
		for j, tp := range sp.Tables {
			table, err := document.NewTable(tp.Title, tp.Headers, tp.Rows)
			if err != nil {
				return nil, &ValidationError{Field: fmt.Sprintf("sections[%d].tables[%d]", i, j), Message: err.Error()}
			}
			if err := section.AddTable(table); err != nil {
				return nil, &ValidationError{Field: fmt.Sprintf("sections[%d].tables[%d]", i, j), Message: err.Error()}
			}
		}
		if err := doc.AddSection(section); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// sanitizeTitle keeps letters, digits, spaces, dashes and underscores, then
// joins words with underscores so the title can be used in a filename.
func sanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}
