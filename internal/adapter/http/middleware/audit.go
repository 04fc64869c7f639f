package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"micropay-gateway/internal/core/domain"
	"micropay-gateway/internal/core/ports"
	"micropay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful protocol operations after the handler has run.
// Handlers may set CtxAuditResourceID to name the affected nonce.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath())
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(response.CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.GetString(CtxAuditResourceID),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(route string) (domain.AuditAction, string) {
	switch route {
	case "/api/v1/invoices":
		return domain.AuditActionInvoiceIssued, "invoice"
	case "/api/v1/settle":
		return domain.AuditActionSettled, "receipt"
	case "/api/v1/receipts/verify":
		return domain.AuditActionReceiptVerified, "receipt"
	case "/api/v1/translate":
		return domain.AuditActionResourceAccess, "resource"
	}
	return "", ""
}
