package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"micropay-gateway/config"
	httpHandler "micropay-gateway/internal/adapter/http/handler"
	"micropay-gateway/internal/adapter/metrics"
	"micropay-gateway/internal/adapter/storage/memory"
	redisStorage "micropay-gateway/internal/adapter/storage/redis"
	"micropay-gateway/internal/core/ports"
	"micropay-gateway/internal/service"
	"micropay-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("MPG_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("ledger", cfg.Ledger.Backend).
		Msg("Starting MicroPay Gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Gateway identity: a malformed seed must stop the process
	seed, err := cfg.Gateway.SeedBytes()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid gateway seed")
	}
	identity, err := service.NewGatewayIdentity(seed)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid gateway seed")
	}
	if seed == nil {
		log.Warn().Msg("gateway.seed not set: using an ephemeral signing key, receipts will not survive a restart")
	}
	log.Info().Str("pubkey", identity.PublicKeyBase64()).Msg("Gateway identity loaded")

	// Nonce ledger backend
	var (
		ledger         ports.NonceLedger
		healthCheckers []ports.HealthChecker
	)
	switch cfg.Ledger.Backend {
	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		ledger = redisStorage.NewNonceLedger(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	default:
		ledger = memory.NewNonceLedger()
	}

	archive := memory.NewReceiptArchive(cfg.Archive.Capacity)
	promMetrics := metrics.NewPrometheus(cfg.Invoice.Feature, httpHandler.TranslateFeature)

	// Initialize services
	gatewaySvc := service.NewGatewayService(service.GatewayDeps{
		Identity: identity,
		Issuer:   service.NewInvoiceIssuer(cfg.Invoice, identity, time.Now),
		Verifier: service.NewWalletProofVerifier(),
		Ledger:   ledger,
		Archive:  archive,
		Metrics:  promMetrics,
		Log:      logger.Component(log, "gateway"),
	})
	auditSvc := service.NewAuditService(logger.Component(log, "audit"))

	var tokenSvc ports.TokenService
	if cfg.Admin.JWTSecret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.Admin.JWTSecret, cfg.Admin.JWTExpiry, cfg.Admin.JWTIssuer)
	}

	// Load OpenAPI spec for Swagger UI
	specBytes, err := os.ReadFile(cfg.Server.OpenAPIPath)
	if err != nil {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		GatewaySvc:     gatewaySvc,
		TokenSvc:       tokenSvc,
		AuditSvc:       auditSvc,
		HTTPMetrics:    promMetrics,
		MetricsHandler: promMetrics.Handler(),
		HealthCheckers: healthCheckers,
		OpenAPISpec:    specBytes,
		Logger:         log,
	})

	// Background nonce eviction
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		service.RunNonceJanitor(ctx, ledger, cfg.Ledger.EvictInterval, promMetrics, logger.Component(log, "janitor"))
	}()

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	<-janitorDone

	log.Info().Int("archived_receipts", archive.Len()).Msg("Server exited")
}
