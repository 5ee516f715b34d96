package apperr

import (
	"errors"
	"net/http"
	"testing"
)

func TestKindMapsToStatusAndCode(t *testing.T) {
	cases := []struct {
		name   string
		err    *Error
		status int
		code   string
	}{
		{"not found", NotFound("missing"), http.StatusNotFound, CodeNotFound},
		{"validation", Validation("bad input"), http.StatusBadRequest, CodeValidation},
		{"unauthorized", Unauthorized("no context"), http.StatusUnauthorized, CodeHTTP},
		{"rate limited", RateLimited("slow down"), http.StatusTooManyRequests, CodeHTTP},
		{"internal", Internal("broken"), http.StatusInternalServerError, CodeInternal},
		{"unknown", New(KindUnknown, "odd"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.status, got)
		}
		if got := tc.err.Code(); got != tc.code {
			t.Fatalf("%s: expected code %s, got %s", tc.name, tc.code, got)
		}
	}
}

func TestErrorIncludesOp(t *testing.T) {
	err := Internal("query failed").WithOp("salesforce.Query")
	if err.Error() != "salesforce.Query: query failed" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindInternal, "render quote PDF", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if err.Error() != "render quote PDF" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestGetKindOnForeignError(t *testing.T) {
	if kind := GetKind(errors.New("plain")); kind != KindUnknown {
		t.Fatalf("expected unknown kind, got %v", kind)
	}
	if Is(errors.New("plain"), KindInternal) {
		t.Fatal("expected foreign error to not match a kind")
	}
}
