// Package quotes provides the quote PDF generation domain module.
package quotes

import (
	apphttp "quote_pdf_backend/internal/http"
	"quote_pdf_backend/internal/quotes/handler"
	"quote_pdf_backend/internal/quotes/service"
	"quote_pdf_backend/internal/quotes/transport"
	"quote_pdf_backend/platform/logger"
	"quote_pdf_backend/platform/validator"
)

// Module represents the quotes domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new quotes module with all dependencies wired.
func NewModule(renderer service.Renderer, val *validator.Validator, log *logger.Logger) *Module {
	// Register the opportunity ID format rule on the shared validator.
	_ = transport.RegisterValidations(val)

	svc := service.New(renderer, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "quotes"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes. Template listing is public;
// generation requires a verified client context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Root.GET("/templates", m.handler.ListTemplates)
	ctx.Protected.POST("/generate-quote-pdf", m.handler.GeneratePDF)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
