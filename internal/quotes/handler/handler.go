package handler

import (
	"errors"
	"net/http"

	"quote_pdf_backend/internal/quotes/service"
	"quote_pdf_backend/internal/quotes/transport"
	"quote_pdf_backend/internal/salesforce"
	"quote_pdf_backend/platform/apperr"
	"quote_pdf_backend/platform/httpkit"
	appvalidator "quote_pdf_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidRequest    = "invalid request body"
	msgValidationFailed  = "validation failed"
	msgMissingOrgContext = "missing client context"
)

// Handler handles HTTP requests for quote PDF generation.
type Handler struct {
	svc *service.Service
	val *appvalidator.Validator
}

// New creates a new quotes handler.
func New(svc *service.Service, val *appvalidator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GeneratePDF handles POST /generate-quote-pdf.
//
//	@Summary	Generate a quote PDF for an opportunity
//	@Tags		quotes
//	@Accept		json
//	@Produce	json
//	@Param		x-client-context	header	string								true	"Base64-encoded JSON org context"
//	@Param		request				body	transport.GenerateQuotePDFRequest	true	"Generation options"
//	@Success	200	{object}	transport.GenerateQuotePDFResponse
//	@Failure	400	{object}	httpkit.ErrorResponse
//	@Failure	401	{object}	httpkit.ErrorResponse
//	@Failure	404	{object}	httpkit.ErrorResponse
//	@Failure	500	{object}	httpkit.ErrorResponse
//	@Router		/generate-quote-pdf [post]
func (h *Handler) GeneratePDF(c *gin.Context) {
	var req transport.GenerateQuotePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, apperr.CodeValidation, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, apperr.CodeValidation, msgValidationFailed, validationDetails(err))
		return
	}

	api, ok := salesforce.ClientFrom(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, apperr.CodeHTTP, msgMissingOrgContext, nil)
		return
	}

	result, err := h.svc.Generate(c.Request.Context(), api, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListTemplates handles GET /templates.
//
//	@Summary	List the built-in PDF templates
//	@Tags		quotes
//	@Produce	json
//	@Success	200	{object}	transport.TemplateListResponse
//	@Router		/templates [get]
func (h *Handler) ListTemplates(c *gin.Context) {
	httpkit.OK(c, h.svc.ListTemplates())
}

// validationDetails flattens field violations into a map from field name to
// the rule it failed.
func validationDetails(err error) interface{} {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
