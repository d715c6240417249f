package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ai_site_builder/config"
	"ai_site_builder/internal/ai"
	"ai_site_builder/internal/api"
	"ai_site_builder/internal/llm"
	"ai_site_builder/internal/logger"
)

func main() {
	// --- Load .env file ---
	// Must happen before viper reads the environment.
	envErr := godotenv.Load()

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zapLog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Cannot build logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()

	switch {
	case envErr == nil:
		zapLog.Info("loaded environment variables from .env file")
	case errors.Is(envErr, os.ErrNotExist):
		zapLog.Info(".env file not found, relying on system environment variables")
	default:
		zapLog.Warn("error loading .env file", zap.Error(envErr))
	}
	if cfg.ConfigFile != "" {
		zapLog.Info("using configuration file", zap.String("path", cfg.ConfigFile))
	}

	// --- Dependency Initialization ---
	completer, providerErr := llm.NewProvider(context.Background(), cfg.LLMProvider, cfg.ProviderSettings())
	switch {
	case errors.Is(providerErr, llm.ErrConfigurationMissing):
		// The server still starts; generation endpoints report the missing key.
		zapLog.Error("LLM provider is not configured; generation endpoints will return 500",
			zap.String("provider", cfg.LLMProvider), zap.Error(providerErr))
	case providerErr != nil:
		zapLog.Fatal("cannot initialize LLM provider", zap.Error(providerErr))
	default:
		zapLog.Info("LLM provider ready", zap.String("provider", completer.Name()))
	}

	generator := ai.NewGenerator(completer, ai.GeneratorConfig{
		Timeout:          cfg.GenerationTimeout,
		SanitizeEnhanced: cfg.EnhanceSanitize,
	}, zapLog)

	apiHandler := api.NewAPIHandler(generator, providerErr, zapLog)

	// --- Start API Server ---
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(api.RequestID(zapLog))
	router.Use(logger.GinMiddleware(zapLog))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, api.RequestIDHeader)
	corsConfig.ExposeHeaders = []string{api.RequestIDHeader, "Content-Disposition"}
	router.Use(cors.New(corsConfig))

	api.RegisterRoutes(router, apiHandler)

	// Model calls routinely take tens of seconds.
	writeTimeout := 120 * time.Second
	if cfg.GenerationTimeout > 0 && cfg.GenerationTimeout+30*time.Second > writeTimeout {
		writeTimeout = cfg.GenerationTimeout + 30*time.Second
	}

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLog.Info("starting API server", zap.String("address", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("API server listen error", zap.Error(err))
		}
		zapLog.Info("API server has stopped listening")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLog.Info("shutting down server", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("API server forced shutdown", zap.Error(err))
	} else {
		zapLog.Info("API server gracefully stopped")
	}

	zapLog.Info("application exiting")
}
