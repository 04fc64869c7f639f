package handler

import (
	"fmt"

	"micropay-gateway/internal/adapter/http/dto"
	"micropay-gateway/internal/adapter/http/middleware"
	"micropay-gateway/internal/core/domain"
	"micropay-gateway/pkg/apperror"
	"micropay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultTranslateTarget = "en"

// ResourceHandler serves the paid resources. It runs behind middleware.RequireReceipt.
type ResourceHandler struct{}

func NewResourceHandler() *ResourceHandler {
	return &ResourceHandler{}
}

// Translate handles POST /api/v1/translate. The translation itself is a placeholder.
func (h *ResourceHandler) Translate(c *gin.Context) {
	var req dto.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	target := req.Target
	if target == "" {
		target = defaultTranslateTarget
	}

	var payer string
	if r, ok := c.Get(middleware.CtxReceipt); ok {
		if receipt, ok := r.(*domain.Receipt); ok {
			payer = receipt.Payer
		}
	}

	response.OK(c, dto.TranslateResponse{
		OK:         true,
		Translated: fmt.Sprintf("[%s] %s", target, req.Text),
		Target:     target,
		Payer:      payer,
	})
}
