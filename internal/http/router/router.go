// Package router assembles the Gin engine: global middleware, service
// metadata endpoints and domain module routes.
package router

import (
	"net/http"
	"time"

	apphttp "quote_pdf_backend/internal/http"
	"quote_pdf_backend/internal/salesforce"
	"quote_pdf_backend/platform/apperr"
	"quote_pdf_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

// serviceName and serviceVersion are reported by the metadata endpoints.
const (
	serviceName    = "Opportunity Quote PDF Generator API"
	serviceVersion = "1.0.0"
)

// New builds the HTTP engine from the assembled application.
func New(app *apphttp.App) *gin.Engine {
	cfg := app.Config
	log := app.Logger

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(log))
	engine.Use(httpkit.Recovery(log))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(cfg)))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(cfg.GetRateLimitRPS()), cfg.GetRateLimitBurst(), log)
	engine.Use(limiter.RateLimit())

	engine.NoRoute(func(c *gin.Context) {
		httpkit.Error(c, http.StatusNotFound, apperr.CodeHTTP, "resource not found", nil)
	})
	engine.NoMethod(func(c *gin.Context) {
		httpkit.Error(c, http.StatusMethodNotAllowed, apperr.CodeHTTP, "method not allowed", nil)
	})

	registerInfoRoutes(engine)
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	contextMiddleware := salesforce.ContextRequired(cfg, log)
	rc := &apphttp.RouterContext{
		Engine:            engine,
		Root:              engine.Group(""),
		Protected:         engine.Group("", contextMiddleware),
		ContextMiddleware: contextMiddleware,
	}
	for _, module := range app.Modules {
		module.RegisterRoutes(rc)
		log.Info("registered module routes", "module", module.Name())
	}

	return engine
}

// corsConfig maps the application CORS settings onto gin-contrib/cors.
func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", salesforce.ClientContextHeader},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}
	return corsCfg
}

// registerInfoRoutes mounts the health and service info endpoints.
func registerInfoRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   serviceVersion,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    serviceName,
			"version": serviceVersion,
			"docs":    "/docs",
			"health":  "/health",
		})
	})
}
