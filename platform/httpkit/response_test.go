package httpkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"quote_pdf_backend/platform/apperr"
)

func newErrorContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp
}

func TestHandleErrorIgnoresNil(t *testing.T) {
	c, rec := newErrorContext(t)

	if HandleError(c, nil) {
		t.Fatal("expected nil error to be left alone")
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected no body, got %s", rec.Body.String())
	}
}

func TestHandleErrorKeepsDomainStatusAndCode(t *testing.T) {
	c, rec := newErrorContext(t)

	if !HandleError(c, apperr.NotFound("Opportunity not found")) {
		t.Fatal("expected error to be handled")
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	if resp.Status != "error" || resp.Message != "Opportunity not found" || resp.ErrorCode != "NOT_FOUND" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestHandleErrorCarriesDetails(t *testing.T) {
	c, rec := newErrorContext(t)

	err := apperr.Validation("validation failed").WithDetails(map[string]string{"opportunityId": "opportunity_id"})
	HandleError(c, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	details, ok := resp.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("expected details map, got %T", resp.Details)
	}
	if details["opportunityId"] != "opportunity_id" {
		t.Fatalf("unexpected details: %v", details)
	}
}

func TestHandleErrorWrapsUntypedErrors(t *testing.T) {
	c, rec := newErrorContext(t)

	HandleError(c, errors.New("pipe burst"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Message != "Internal Server Error: pipe burst" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.ErrorCode != "INTERNAL_ERROR" {
		t.Fatalf("unexpected code: %q", resp.ErrorCode)
	}
	details, ok := resp.Details.(map[string]interface{})
	if !ok || details["exception_type"] != "*errors.errorString" {
		t.Fatalf("unexpected details: %v", resp.Details)
	}
}

func TestErrorWritesEnvelope(t *testing.T) {
	c, rec := newErrorContext(t)

	Error(c, http.StatusBadRequest, apperr.CodeValidation, "invalid request body", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Status != "error" || resp.ErrorCode != "VALIDATION_ERROR" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp.Details != nil {
		t.Fatalf("expected omitted details, got %v", resp.Details)
	}
}
