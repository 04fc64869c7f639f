package handler

import (
	"errors"
	"io"

	"micropay-gateway/internal/adapter/http/dto"
	"micropay-gateway/internal/adapter/http/middleware"
	"micropay-gateway/internal/core/ports"
	"micropay-gateway/pkg/apperror"
	"micropay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// GatewayHandler serves the settlement protocol endpoints.
type GatewayHandler struct {
	svc ports.GatewayService
}

// NewGatewayHandler creates a new GatewayHandler.
func NewGatewayHandler(svc ports.GatewayService) *GatewayHandler {
	return &GatewayHandler{svc: svc}
}

// PublicKey handles GET /api/v1/gateway/pubkey.
func (h *GatewayHandler) PublicKey(c *gin.Context) {
	response.OK(c, dto.PubkeyResponse{OK: true, PubkeyBase64: h.svc.PublicKey()})
}

// IssueInvoice handles POST /api/v1/invoices. An empty body issues a default invoice.
func (h *GatewayHandler) IssueInvoice(c *gin.Context) {
	var req dto.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	issued, err := h.svc.IssueInvoice(c.Request.Context(), ports.InvoiceRequest{
		Feature: req.Feature,
		Amount:  req.Amount,
		Unit:    req.Unit,
		TTLSec:  req.TTLSec,
		Wallet:  req.Wallet,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, issued.Invoice.Nonce)
	response.OK(c, dto.IssueInvoiceResponse{
		OK:            true,
		Invoice:       issued.Invoice,
		MessageToSign: issued.MessageToSign,
		GatewayPubkey: issued.GatewayPubkey,
	})
}

// Settle handles POST /api/v1/settle.
func (h *GatewayHandler) Settle(c *gin.Context) {
	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMissingBody())
		return
	}

	receipt, err := h.svc.Settle(c.Request.Context(), req.Invoice, req.WalletProof)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, receipt.Nonce)
	response.OK(c, dto.SettleResponse{OK: true, Receipt: receipt})
}

// VerifyReceipt handles POST /api/v1/receipts/verify.
func (h *GatewayHandler) VerifyReceipt(c *gin.Context) {
	var req dto.VerifyReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrBadReceiptJSON())
		return
	}
	if req.Receipt == nil {
		response.Error(c, apperror.ErrMissingBody())
		return
	}

	result, err := h.svc.VerifyReceipt(c.Request.Context(), req.Receipt)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, req.Receipt.Nonce)
	response.OK(c, dto.VerifyReceiptResponse{OK: true, ReplayProtected: result.ReplayProtected})
}
