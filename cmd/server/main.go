// Command server runs the coffee deposit tracker HTTP API.
//
// Startup order:
//  1. Load .env (best effort) and environment configuration
//  2. Configure global logging (level, optional pretty console)
//  3. Open SQLite and migrate the schema
//  4. Start the export mirror worker (optional)
//  5. Install OpenTelemetry tracing (optional)
//  6. Wire the Gin engine and serve until SIGINT/SIGTERM
//
// Shutdown drains in the reverse order: HTTP server first, then the export
// queue, then the trace exporter.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/coffeenote/go-deposit-backend/internal/config"
	"github.com/coffeenote/go-deposit-backend/internal/export"
	httpapi "github.com/coffeenote/go-deposit-backend/internal/http"
	"github.com/coffeenote/go-deposit-backend/internal/observability"
	"github.com/coffeenote/go-deposit-backend/internal/repo"
	"github.com/coffeenote/go-deposit-backend/internal/services"
	"github.com/coffeenote/go-deposit-backend/internal/sysutil"
)

// version is stamped via -ldflags at build time.
var version = "dev"

// @title           Coffee Deposit API
// @version         1.0
// @description     Tracks prepaid coffee deposits: add, redeem one cup at a time, and watch expiry dates.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey SessionAuth
// @in   header
// @name X-Session-ID
func main() {
	// .env is optional; real deployments use process env.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}
	if cfg.OTEL.Enabled {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			log.Fatal().Err(err).Msg("install gorm tracing")
		}
	}

	var exporter services.Exporter
	var mirror *export.Mirror
	if cfg.ExportEnabled {
		mirror, err = export.NewMirror(cfg.ExportDir, cfg.ExportQueue)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.ExportDir).Msg("start export mirror")
		}
		exporter = mirror
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("setup opentelemetry")
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, exporter, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if mirror != nil {
		mirror.Close()
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
	log.Info().Msg("bye")
}
