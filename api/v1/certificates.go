package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"internship-portal/pdf-export/pdf-export-backend/internal/certificates"
	"internship-portal/pdf-export/pdf-export-backend/internal/document"
	"internship-portal/pdf-export/pdf-export-backend/internal/export"
	"internship-portal/pdf-export/pdf-export-backend/pkg/dates"
)

// CertificatesAPI holds the certificates API dependencies
type CertificatesAPI struct {
	Handler  *certificates.Handler
	Service  certificates.Service
	Registry *export.Registry
}

// SetupCertificatesAPI sets up the certificates API with all dependencies
func SetupCertificatesAPI(cfg CertificatesConfig, logger *zap.Logger) *CertificatesAPI {
	// Create shared date formatter
	formatter := dates.NewFormatter(cfg.DateCacheCapacity)

	// Create assemblers
	receipts := certificates.NewReceiptAssembler(formatter, cfg.LogoPath)
	agreements := certificates.NewAgreementAssembler(formatter, cfg.LogoPath)

	// Create renderer registry
	registry := export.NewRegistry()

	// Create service and handler
	service := certificates.NewService(receipts, agreements, registry, cfg.DocumentStyle(), logger)
	handler := certificates.NewHandler(service, cfg.Version)

	return &CertificatesAPI{
		Handler:  handler,
		Service:  service,
		Registry: registry,
	}
}

// RegisterCertificatesRoutes registers the certificates routes on the router group
func RegisterCertificatesRoutes(router *gin.RouterGroup, api *CertificatesAPI) {
	api.Handler.RegisterRoutes(router)
}

// CertificatesConfig holds configuration for the certificates API
type CertificatesConfig struct {
	// Version reported by the health endpoint
	Version string `json:"version"`

	// Document styling overrides
	PrimaryColor string `json:"primary_color"`
	TextColor    string `json:"text_color"`
	FontFamily   string `json:"font_family"`
	LogoPath     string `json:"logo_path"`

	// Date formatter cache capacity
	DateCacheCapacity int `json:"date_cache_capacity"`
}

// DefaultCertificatesConfig returns default certificates configuration
func DefaultCertificatesConfig() CertificatesConfig {
	return CertificatesConfig{
		Version:           "1.0.0",
		DateCacheCapacity: dates.DefaultCacheCapacity,
	}
}

// DocumentStyle applies the configured overrides on top of the default look.
func (c CertificatesConfig) DocumentStyle() document.Style {
	style := document.DefaultStyle()
	if c.PrimaryColor != "" {
		style.Colors.Primary = c.PrimaryColor
	}
	if c.TextColor != "" {
		style.Colors.Text = c.TextColor
	}
	if c.FontFamily != "" {
		style.Fonts.Family = c.FontFamily
	}
	return style
}
