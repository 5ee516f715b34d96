// Package service implements the quote PDF generation workflow.
package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"quote_pdf_backend/internal/pdf"
	"quote_pdf_backend/internal/quotes/transport"
	"quote_pdf_backend/internal/salesforce"
	"quote_pdf_backend/platform/apperr"
	"quote_pdf_backend/platform/logger"
	"quote_pdf_backend/platform/sanitize"
)

const (
	statusSuccess = "success"

	msgOpportunityNotFound = "Opportunity not found"
	msgPDFAttached         = "PDF generated and attached to Opportunity."
)

// RecordAPI is the narrow interface the service needs to read and write CRM
// records. salesforce.Client implements it; an instance is built per request
// because it carries the caller's credentials.
type RecordAPI interface {
	Query(ctx context.Context, soql string) (*salesforce.QueryResult, error)
	Create(ctx context.Context, sobject string, fields map[string]interface{}) (*salesforce.SaveResult, error)
	BaseURL() string
	UserID() string
}

// Renderer converts a composed HTML document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, indexHTML []byte) ([]byte, error)
}

// Service provides business logic for quote PDF generation.
type Service struct {
	renderer Renderer
	log      *logger.Logger
	now      func() time.Time
}

// New creates a new quotes service.
func New(renderer Renderer, log *logger.Logger) *Service {
	return &Service{renderer: renderer, log: log, now: time.Now}
}

// Generate renders the quote PDF for one opportunity and attaches it to the
// record as a shared file. Storage writes only start after a successful
// render, so a failed render leaves the org untouched.
func (s *Service) Generate(ctx context.Context, api RecordAPI, req transport.GenerateQuotePDFRequest) (*transport.GenerateQuotePDFResponse, error) {
	// 1. Fetch the opportunity. The ID is validated upstream as strictly
	// alphanumeric, so interpolating it cannot break out of the query literal.
	oppResult, err := api.Query(ctx, fmt.Sprintf(
		"SELECT Id, Name, Amount, StageName, CloseDate, Account.Name FROM Opportunity WHERE Id = '%s' LIMIT 1",
		req.OpportunityID))
	if err != nil {
		return nil, err
	}
	if len(oppResult.Records) == 0 {
		return nil, apperr.NotFound(msgOpportunityNotFound)
	}
	opportunity := oppResult.Records[0]

	// 2. Fetch its quote line items in store order
	itemsResult, err := api.Query(ctx, fmt.Sprintf(
		"SELECT Id, Description, Quantity, UnitPrice, TotalPrice FROM QuoteLineItem WHERE Quote.OpportunityId = '%s'",
		req.OpportunityID))
	if err != nil {
		return nil, err
	}
	lineItems := make([]map[string]interface{}, len(itemsResult.Records))
	for i, record := range itemsResult.Records {
		lineItems[i] = record
	}

	// 3. Compose the HTML document
	generatedAt := s.now().UTC()
	document := pdf.ComposeQuoteHTML(opportunity, lineItems, pdf.ComposeOptions{
		TemplateName: req.TemplateName,
		IncludeTerms: req.IncludeTerms,
		CustomHeader: sanitize.Line(req.CustomHeader),
		CustomFooter: sanitize.Block(req.CustomFooter),
		GeneratedAt:  generatedAt,
	})

	// 4. Render to PDF
	pdfBytes, err := s.renderer.Render(ctx, []byte(document))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "render quote PDF", err)
	}

	// 5. Store the PDF as a file version owned by the calling user
	opportunityName := opportunity.StringField("Name")
	if opportunityName == "" {
		opportunityName = "Quote"
	}
	fileName := fmt.Sprintf("Quote_%s_%s.pdf", req.OpportunityID, generatedAt.Format("20060102_150405"))

	version, err := api.Create(ctx, "ContentVersion", map[string]interface{}{
		"Title":        "Quote - " + opportunityName,
		"PathOnClient": fileName,
		"VersionData":  base64.StdEncoding.EncodeToString(pdfBytes),
		"OwnerId":      api.UserID(),
		"Description":  "Auto-generated quote PDF for Opportunity: " + opportunityName,
	})
	if err != nil {
		return nil, err
	}

	// 6. The create call does not return the document ID, so read it back
	docResult, err := api.Query(ctx, fmt.Sprintf(
		"SELECT ContentDocumentId FROM ContentVersion WHERE Id = '%s'", version.ID))
	if err != nil {
		return nil, err
	}
	var contentDocumentID string
	if len(docResult.Records) > 0 {
		contentDocumentID = docResult.Records[0].StringField("ContentDocumentId")
	}
	if contentDocumentID == "" {
		return nil, apperr.Internal("stored content version has no content document")
	}

	// 7. Share the document with the opportunity so it shows on the record
	if _, err := api.Create(ctx, "ContentDocumentLink", map[string]interface{}{
		"ContentDocumentId": contentDocumentID,
		"LinkedEntityId":    req.OpportunityID,
		"ShareType":         "V",
		"Visibility":        "AllUsers",
	}); err != nil {
		return nil, err
	}

	s.log.Info("quote PDF attached",
		"opportunityId", req.OpportunityID,
		"contentVersionId", version.ID,
		"contentDocumentId", contentDocumentID,
		"bytes", len(pdfBytes))

	resp := &transport.GenerateQuotePDFResponse{
		Status:            statusSuccess,
		Message:           msgPDFAttached,
		ContentVersionID:  version.ID,
		ContentDocumentID: contentDocumentID,
	}
	if base := api.BaseURL(); base != "" {
		resp.PDFURL = base + "/sfc/servlet.shepherd/document/download/" + contentDocumentID
	}
	return resp, nil
}

// ListTemplates returns the built-in template catalog.
func (s *Service) ListTemplates() transport.TemplateListResponse {
	infos := pdf.Templates()
	templates := make([]transport.TemplateResponse, len(infos))
	for i, info := range infos {
		templates[i] = transport.TemplateResponse{
			Name:        info.Name,
			Description: info.Description,
			IsDefault:   info.IsDefault,
		}
	}
	return transport.TemplateListResponse{Templates: templates}
}
