// Package pdf provides quote document composition and HTML-to-PDF rendering.
package pdf

import (
	"context"

	"quote_pdf_backend/platform/config"
)

// Renderer converts a complete HTML document into PDF bytes.
type Renderer interface {
	// Render converts the document synchronously. Implementations honor
	// ctx cancellation; a failed render is fatal to the request.
	Render(ctx context.Context, indexHTML []byte) ([]byte, error)
	// Name identifies the rendering engine for logging.
	Name() string
}

// NewRenderer picks the rendering engine from configuration: Gotenberg when a
// URL is configured, otherwise in-process headless Chromium.
func NewRenderer(cfg config.RendererConfig) Renderer {
	if cfg.IsGotenbergEnabled() {
		return NewGotenbergClient(cfg.GetGotenbergURL(), cfg.GetGotenbergUsername(), cfg.GetGotenbergPassword(), cfg.GetRenderTimeout())
	}
	return NewChromiumRenderer(cfg.GetChromePath(), cfg.GetRenderTimeout())
}
