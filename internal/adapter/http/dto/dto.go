package dto

import "micropay-gateway/internal/core/domain"

// IssueInvoiceRequest is the request body for POST /api/v1/invoices. Every field is optional.
type IssueInvoiceRequest struct {
	Feature string `json:"feature" binding:"omitempty,max=64"`
	Amount  string `json:"amount" binding:"omitempty,decimal_amount"`
	Unit    string `json:"unit" binding:"omitempty,max=16"`
	TTLSec  int64  `json:"ttlSec" binding:"omitempty,gt=0"`
	Wallet  string `json:"wallet" binding:"omitempty,wallet_kind"`
}

// IssueInvoiceResponse carries everything a wallet needs to pay.
type IssueInvoiceResponse struct {
	OK            bool           `json:"ok"`
	Invoice       domain.Invoice `json:"invoice"`
	MessageToSign string         `json:"messageToSign"`
	GatewayPubkey string         `json:"gatewayPubkey"`
}

// SettleRequest is the request body for POST /api/v1/settle. Presence checks are
// left to the service so that an incomplete body maps to missing-body.
type SettleRequest struct {
	Invoice     *domain.Invoice     `json:"invoice"`
	WalletProof *domain.WalletProof `json:"walletProof"`
}

type SettleResponse struct {
	OK      bool            `json:"ok"`
	Receipt *domain.Receipt `json:"receipt"`
}

// VerifyReceiptRequest is the request body for POST /api/v1/receipts/verify.
type VerifyReceiptRequest struct {
	Receipt *domain.Receipt `json:"receipt"`
}

type VerifyReceiptResponse struct {
	OK              bool `json:"ok"`
	ReplayProtected bool `json:"replayProtected"`
}

type PubkeyResponse struct {
	OK           bool   `json:"ok"`
	PubkeyBase64 string `json:"pubkeyBase64"`
}

// ReceiptListResponse is the archive listing, most recent first.
type ReceiptListResponse struct {
	OK       bool             `json:"ok"`
	Count    int              `json:"count"`
	Receipts []domain.Receipt `json:"receipts"`
}

// ReceiptListQuery holds the query parameters of GET /api/v1/receipts.
type ReceiptListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// TranslateRequest is the body of the paid translate resource.
type TranslateRequest struct {
	Text   string `json:"text" binding:"required,max=4096"`
	Target string `json:"target" binding:"omitempty,min=2,max=8"`
}

type TranslateResponse struct {
	OK         bool   `json:"ok"`
	Translated string `json:"translated"`
	Target     string `json:"target"`
	Payer      string `json:"payer"`
}
