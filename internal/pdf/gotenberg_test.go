package pdf

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGotenbergRenderSendsConversionForm(t *testing.T) {
	var (
		gotPath   string
		gotFields map[string]string
		gotHTML   string
		gotAuth   bool
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _, gotAuth = r.BasicAuth()

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart form: %v", err)
		}
		gotFields = make(map[string]string)
		for key, values := range r.MultipartForm.Value {
			gotFields[key] = values[0]
		}
		file, header, err := r.FormFile("files")
		if err != nil {
			t.Fatalf("read form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "index.html" {
			t.Fatalf("expected index.html part, got %s", header.Filename)
		}
		content, _ := io.ReadAll(file)
		gotHTML = string(content)

		w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	client := NewGotenbergClient(srv.URL, "render", "secret", 5*time.Second)
	out, err := client.Render(context.Background(), []byte("<html><body>quote</body></html>"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if string(out) != "%PDF-1.7 fake" {
		t.Fatalf("expected PDF bytes passed through, got %q", out)
	}
	if gotPath != "/forms/chromium/convert/html" {
		t.Fatalf("expected chromium convert endpoint, got %s", gotPath)
	}
	if !gotAuth {
		t.Fatalf("expected basic auth on the request")
	}
	if gotHTML != "<html><body>quote</body></html>" {
		t.Fatalf("unexpected document payload %q", gotHTML)
	}
	if gotFields["preferCssPageSize"] != "true" {
		t.Fatalf("expected preferCssPageSize=true, got %q", gotFields["preferCssPageSize"])
	}
	if gotFields["printBackground"] != "true" {
		t.Fatalf("expected printBackground=true, got %q", gotFields["printBackground"])
	}
	for _, margin := range []string{"marginTop", "marginBottom", "marginLeft", "marginRight"} {
		if gotFields[margin] != "0" {
			t.Fatalf("expected %s=0, got %q", margin, gotFields[margin])
		}
	}
}

func TestGotenbergRenderSurfacesUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "conversion crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewGotenbergClient(srv.URL, "", "", 5*time.Second)
	_, err := client.Render(context.Background(), []byte("<html></html>"))
	if err == nil {
		t.Fatalf("expected an error for a 500 response")
	}
	if !strings.Contains(err.Error(), "returned 500") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestGotenbergRenderWithoutCredentialsSkipsBasicAuth(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, sawAuth = r.BasicAuth()
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := NewGotenbergClient(srv.URL, "", "", 5*time.Second)
	if _, err := client.Render(context.Background(), []byte("<html></html>")); err != nil {
		t.Fatalf("render: %v", err)
	}
	if sawAuth {
		t.Fatalf("did not expect basic auth without credentials")
	}
}
