package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Arun-Dalakoti/CardGenius/internal/catalog"
	"github.com/Arun-Dalakoti/CardGenius/internal/config"
	"github.com/Arun-Dalakoti/CardGenius/internal/handlers"
	"github.com/Arun-Dalakoti/CardGenius/internal/middleware"
	"github.com/Arun-Dalakoti/CardGenius/internal/services"
)

func main() {
	// .env is optional; real deployments set variables directly
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	cfg := config.Load()

	setupLogger(cfg)

	if err := catalog.Validate(); err != nil {
		slog.Error("Card catalog failed validation", "error", err)
		os.Exit(1)
	}
	slog.Info("Card catalog loaded", "cards", catalog.Size())

	metrics := services.NewPrometheusMetrics()
	recommendationService := services.NewRecommendationService(metrics)
	savingsService := services.NewSavingsService(metrics)
	sessionService := services.NewSessionService(
		catalog.Cards(),
		recommendationService,
		savingsService,
		metrics,
		cfg.Sessions.IdleTTL,
		cfg.Sessions.SweepInterval,
	)
	defer sessionService.Stop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	registerRoutes(e, cfg, recommendationService, savingsService, sessionService)

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

func registerRoutes(
	e *echo.Echo,
	cfg *config.Config,
	recommendationService services.RecommendationServiceInterface,
	savingsService services.SavingsServiceInterface,
	sessionService services.SessionServiceInterface,
) {
	healthHandler := handlers.NewHealthCheckHandler()
	catalogHandler := handlers.NewCatalogHandler()
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, savingsService)
	savingsHandler := handlers.NewSavingsHandler(savingsService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	devHandler := handlers.NewDevHandler(services.NewCardGenerator(), cfg.IsDevelopment())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	v1.GET("/cards", catalogHandler.ListCards)
	v1.GET("/cards/:id", catalogHandler.GetCard)
	v1.GET("/categories", catalogHandler.ListCategories)

	v1.POST("/recommendations", recommendationHandler.Recommend)
	v1.POST("/savings/breakdown", savingsHandler.ComputeBreakdown)

	v1.POST("/sessions", sessionHandler.Create)
	v1.GET("/sessions/:id", sessionHandler.Get)
	v1.PUT("/sessions/:id/selection", sessionHandler.UpdateSelection)
	v1.PUT("/sessions/:id/card", sessionHandler.SelectCard)
	v1.GET("/sessions/:id/savings", sessionHandler.Savings)
	v1.DELETE("/sessions/:id", sessionHandler.Delete)

	v1.GET("/dev/cards/sample", devHandler.GenerateSampleCards)
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
