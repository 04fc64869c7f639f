package middleware

import (
	"encoding/json"
	"strings"

	"micropay-gateway/internal/core/domain"
	"micropay-gateway/internal/core/ports"
	"micropay-gateway/pkg/apperror"
	"micropay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequireReceipt guards a paid resource. The caller presents the receipt JSON in
// the X-Payment-Receipt header; it must verify against the gateway key, still be
// fresh and grant feature.
//
//	missing header        402 payment-required
//	unparseable receipt   400 bad-receipt-json
//	expired               401 expired
//	bad signature         401 bad-sig
//	other feature         403 wrong-feature
func RequireReceipt(svc ports.GatewayService, feature string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderPaymentReceipt))
		if raw == "" {
			response.Abort(c, apperror.ErrPaymentRequired())
			return
		}

		var receipt domain.Receipt
		if err := json.Unmarshal([]byte(raw), &receipt); err != nil {
			response.Abort(c, apperror.ErrBadReceiptJSON())
			return
		}

		if _, err := svc.VerifyReceipt(c.Request.Context(), &receipt); err != nil {
			switch apperror.CodeOf(err) {
			case apperror.CodeExpired:
				response.Abort(c, apperror.ErrReceiptExpired())
			case apperror.CodeBadSig, apperror.CodeMissingBody:
				response.Abort(c, apperror.ErrBadSig())
			default:
				log.Error().Err(err).Str("nonce", receipt.Nonce).Msg("receipt verification failed")
				response.Abort(c, err)
			}
			return
		}

		if receipt.Feature != feature {
			response.Abort(c, apperror.ErrWrongFeature(feature))
			return
		}

		c.Set(CtxReceipt, &receipt)
		c.Set(CtxAuditResourceID, receipt.Nonce)
		c.Next()
	}
}
