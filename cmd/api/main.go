package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "quote_pdf_backend/docs"
	apphttp "quote_pdf_backend/internal/http"
	"quote_pdf_backend/internal/http/router"
	"quote_pdf_backend/internal/pdf"
	"quote_pdf_backend/internal/quotes"
	"quote_pdf_backend/platform/config"
	"quote_pdf_backend/platform/logger"
	"quote_pdf_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// @title			Opportunity Quote PDF Generator API
// @version		1.0.0
// @description	Generates quote PDFs for CRM opportunities and attaches them to the opportunity record.

// @host		localhost:8080
// @BasePath	/

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Shared validator instance for dependency injection
	val := validator.New()

	renderer := pdf.NewRenderer(cfg)
	log.Info("PDF renderer initialized", "engine", renderer.Name())

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	quotesModule := quotes.NewModule(renderer, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			quotesModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
