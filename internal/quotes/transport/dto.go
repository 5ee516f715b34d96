// Package transport defines the request and response shapes for the quotes
// module.
package transport

// ── Requests ──────────────────────────────────────────────────────────────────

// GenerateQuotePDFRequest is the request body for generating a quote PDF.
// TemplateName is free-form; unrecognized values fall back to the standard
// template rather than failing.
type GenerateQuotePDFRequest struct {
	OpportunityID string `json:"opportunityId" validate:"required,opportunity_id"`
	IncludeTerms  bool   `json:"includeTerms"`
	TemplateName  string `json:"templateName"`
	CustomHeader  string `json:"customHeader" validate:"max=200"`
	CustomFooter  string `json:"customFooter" validate:"max=500"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// GenerateQuotePDFResponse is returned once the PDF is stored and linked to
// the opportunity.
type GenerateQuotePDFResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	ContentVersionID  string `json:"contentVersionId,omitempty"`
	ContentDocumentID string `json:"contentDocumentId"`
	PDFURL            string `json:"pdfUrl,omitempty"`
}

// TemplateResponse describes one built-in PDF template.
type TemplateResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
}

// TemplateListResponse is the payload for the template listing endpoint.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}
