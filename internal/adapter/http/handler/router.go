package handler

import (
	"net/http"

	"micropay-gateway/internal/adapter/http/middleware"
	"micropay-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// TranslateFeature is the feature a receipt must grant to call the translate resource.
const TranslateFeature = "api.translate"

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	GatewaySvc     ports.GatewayService
	TokenSvc       ports.TokenService // nil = receipt listing is open
	AuditSvc       ports.AuditService // nil = audit logging disabled
	HTTPMetrics    middleware.HTTPObserver
	MetricsHandler http.Handler // nil = /metrics not served
	HealthCheckers []ports.HealthChecker
	OpenAPISpec    []byte
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.GatewaySvc.PublicKey(), deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec(deps.OpenAPISpec))
	}

	v1 := r.Group("/api/v1")

	// --- Settlement protocol (public) ---
	gatewayHandler := NewGatewayHandler(deps.GatewaySvc)
	v1.GET("/gateway/pubkey", gatewayHandler.PublicKey)
	v1.POST("/invoices", gatewayHandler.IssueInvoice)
	v1.POST("/settle", gatewayHandler.Settle)
	v1.POST("/receipts/verify", gatewayHandler.VerifyReceipt)

	// --- Receipt archive (operators) ---
	receiptsHandler := NewReceiptsHandler(deps.GatewaySvc)
	if deps.TokenSvc != nil {
		v1.GET("/receipts", middleware.JWTAuth(deps.TokenSvc, deps.Logger), receiptsHandler.List)
	} else {
		deps.Logger.Warn().Msg("admin.jwt_secret not set: receipt listing is unauthenticated")
		v1.GET("/receipts", receiptsHandler.List)
	}

	// --- Paid resources ---
	resourceHandler := NewResourceHandler()
	v1.POST("/translate",
		middleware.RequireReceipt(deps.GatewaySvc, TranslateFeature, deps.Logger),
		resourceHandler.Translate,
	)

	return r
}
