package certificates

import "fmt"

// Error codes carried in the "error" field of failed responses. The codes are
// part of the contract with the portal frontend and must not be renamed.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidDocument = "INVALID_DOCUMENT"
	CodePDFGeneration   = "PDF_GENERATION_ERROR"
	CodeNotFound        = "DOCUMENT_NOT_FOUND"
)

// ValidationError reports a business precondition violated by an incoming
// record. Messages are Spanish because they travel back to the portal UI.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RenderError wraps a renderer failure together with the document being
// produced when it happened.
type RenderError struct {
	DocumentID string
	Message    string
	Err        error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
