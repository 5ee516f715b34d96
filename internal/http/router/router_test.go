package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apphttp "quote_pdf_backend/internal/http"
	"quote_pdf_backend/platform/httpkit"
	"quote_pdf_backend/platform/logger"
)

type testRouterConfig struct{}

func (testRouterConfig) GetHTTPAddr() string      { return ":0" }
func (testRouterConfig) GetCORSAllowAll() bool    { return true }
func (testRouterConfig) GetCORSOrigins() []string { return nil }
func (testRouterConfig) GetCORSAllowCreds() bool  { return false }

func (testRouterConfig) GetRateLimitRPS() float64 { return 100 }
func (testRouterConfig) GetRateLimitBurst() int   { return 100 }

func (testRouterConfig) GetSalesforceAPIVersion() string     { return "62.0" }
func (testRouterConfig) GetSalesforceTimeout() time.Duration { return 5 * time.Second }

// pingModule registers one public and one protected probe route.
type pingModule struct {
	registered bool
}

func (m *pingModule) Name() string { return "ping" }

func (m *pingModule) RegisterRoutes(rc *apphttp.RouterContext) {
	m.registered = true
	rc.Root.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	rc.Protected.GET("/secure-ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
}

func newTestEngine(t *testing.T, modules ...apphttp.Module) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New(&apphttp.App{
		Config:  testRouterConfig{},
		Logger:  logger.New("development"),
		Modules: modules,
	})
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRouterServesHealth(t *testing.T) {
	engine := newTestEngine(t)

	rec := get(engine, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode health body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("unexpected status: %q", body["status"])
	}
	if body["version"] != serviceVersion {
		t.Fatalf("unexpected version: %q", body["version"])
	}
	if body["timestamp"] == "" {
		t.Fatal("expected a timestamp")
	}
}

func TestRouterServesServiceInfo(t *testing.T) {
	engine := newTestEngine(t)

	rec := get(engine, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode info body: %v", err)
	}
	if body["name"] != serviceName {
		t.Fatalf("unexpected name: %q", body["name"])
	}
	if body["docs"] != "/docs" {
		t.Fatalf("unexpected docs path: %q", body["docs"])
	}
}

func TestRouterUnknownRouteReturnsErrorEnvelope(t *testing.T) {
	engine := newTestEngine(t)

	rec := get(engine, "/no-such-route")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp httpkit.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Status != "error" || resp.ErrorCode != "HTTP_ERROR" {
		t.Fatalf("unexpected error envelope: %+v", resp)
	}
}

func TestRouterRejectsUnknownMethod(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodDelete, "/health", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestRouterTagsResponsesWithRequestID(t *testing.T) {
	engine := newTestEngine(t)

	rec := get(engine, "/health")
	if rec.Header().Get(httpkit.RequestIDHeader) == "" {
		t.Fatal("expected a request ID header")
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("expected security headers")
	}
}

func TestRouterRegistersModuleRoutes(t *testing.T) {
	module := &pingModule{}
	engine := newTestEngine(t, module)

	if !module.registered {
		t.Fatal("expected module routes to be registered")
	}

	if rec := get(engine, "/ping"); rec.Code != http.StatusOK {
		t.Fatalf("expected public route to respond 200, got %d", rec.Code)
	}
	if rec := get(engine, "/secure-ping"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected protected route to require client context, got %d", rec.Code)
	}
}
