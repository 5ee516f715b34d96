package salesforce

import (
	"net/http"

	"quote_pdf_backend/platform/apperr"
	"quote_pdf_backend/platform/config"
	"quote_pdf_backend/platform/httpkit"
	"quote_pdf_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// ContextRequired validates the x-client-context header and attaches the
// decoded context plus a per-request data client to the gin context.
// Requests without a usable context are rejected before any handler runs.
func ContextRequired(cfg config.SalesforceConfig, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ClientContextHeader)
		if raw == "" {
			httpkit.AbortError(c, http.StatusUnauthorized, apperr.CodeHTTP, "missing client context", nil)
			return
		}

		cc, err := ParseClientContext(raw)
		if err != nil {
			if log != nil {
				log.Warn("rejected client context", "error", err.Error(), "path", c.Request.URL.Path)
			}
			httpkit.AbortError(c, http.StatusUnauthorized, apperr.CodeHTTP, "invalid client context", nil)
			return
		}

		c.Set(contextKeyContext, cc)
		c.Set(contextKeyClient, NewClient(cc, cfg, log))
		c.Next()
	}
}
