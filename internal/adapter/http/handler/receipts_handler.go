package handler

import (
	"micropay-gateway/internal/adapter/http/dto"
	"micropay-gateway/internal/core/domain"
	"micropay-gateway/internal/core/ports"
	"micropay-gateway/pkg/apperror"
	"micropay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReceiptsHandler exposes the receipt archive to operators.
type ReceiptsHandler struct {
	svc ports.GatewayService
}

func NewReceiptsHandler(svc ports.GatewayService) *ReceiptsHandler {
	return &ReceiptsHandler{svc: svc}
}

// List handles GET /api/v1/receipts?limit=N.
func (h *ReceiptsHandler) List(c *gin.Context) {
	var q dto.ReceiptListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipts := h.svc.RecentReceipts(q.Limit)
	if receipts == nil {
		receipts = []domain.Receipt{}
	}
	response.OK(c, dto.ReceiptListResponse{OK: true, Count: len(receipts), Receipts: receipts})
}
