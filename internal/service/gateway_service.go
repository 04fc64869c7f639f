package service

import (
	"context"
	"fmt"
	"time"

	"micropay-gateway/internal/core/domain"
	"micropay-gateway/internal/core/ports"
	"micropay-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const outcomeOK = "ok"

// defaultMaxInvoiceTTL bounds settled invoices when the service is built without an issuer.
const defaultMaxInvoiceTTL = 3600

// GatewayServiceImpl implements ports.GatewayService. A single instance owns the
// nonce ledger and the receipt archive for the life of the process.
type GatewayServiceImpl struct {
	identity  *GatewayIdentity
	issuer    *InvoiceIssuer
	authority *ReceiptAuthority
	verifier  ports.ProofVerifier
	ledger    ports.NonceLedger
	archive   ports.ReceiptArchive
	metrics   ports.GatewayMetrics
	log       zerolog.Logger
	now       func() time.Time
	maxTTL    int64
}

// GatewayDeps groups the collaborators of GatewayServiceImpl.
type GatewayDeps struct {
	Identity *GatewayIdentity
	Issuer   *InvoiceIssuer
	Verifier ports.ProofVerifier
	Ledger   ports.NonceLedger
	Archive  ports.ReceiptArchive
	Metrics  ports.GatewayMetrics
	Log      zerolog.Logger
	Now      func() time.Time
}

// NewGatewayService creates a new GatewayServiceImpl.
func NewGatewayService(deps GatewayDeps) *GatewayServiceImpl {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	maxTTL := int64(defaultMaxInvoiceTTL)
	if deps.Issuer != nil {
		maxTTL = deps.Issuer.MaxTTL()
	}
	return &GatewayServiceImpl{
		identity:  deps.Identity,
		issuer:    deps.Issuer,
		authority: NewReceiptAuthority(deps.Identity),
		verifier:  deps.Verifier,
		ledger:    deps.Ledger,
		archive:   deps.Archive,
		metrics:   deps.Metrics,
		log:       deps.Log,
		now:       now,
		maxTTL:    maxTTL,
	}
}

// PublicKey returns the base64 gateway public key.
func (s *GatewayServiceImpl) PublicKey() string {
	return s.identity.PublicKeyBase64()
}

// IssueInvoice issues a fresh invoice. It does not consult the ledger.
func (s *GatewayServiceImpl) IssueInvoice(_ context.Context, req ports.InvoiceRequest) (*ports.IssuedInvoice, error) {
	issued, err := s.issuer.Issue(req)
	if err != nil {
		return nil, err
	}
	s.metrics.InvoiceIssued(issued.Invoice.Feature)
	s.log.Debug().
		Str("nonce", issued.Invoice.Nonce).
		Str("feature", issued.Invoice.Feature).
		Int64("ttl", issued.Invoice.TTL).
		Msg("invoice issued")
	return issued, nil
}

// Settle verifies the wallet proof for invoice, consumes its nonce and returns a
// signed receipt. Each invoice settles at most once.
func (s *GatewayServiceImpl) Settle(ctx context.Context, invoice *domain.Invoice, proof *domain.WalletProof) (*domain.Receipt, error) {
	start := s.now()
	kind := domain.WalletKindUnknown
	if proof != nil {
		kind = domain.ParseWalletKind(proof.Kind)
	}

	receipt, err := s.settle(ctx, invoice, proof, kind)

	s.metrics.SettlementObserved(kind.String(), outcomeOf(err), s.now().Sub(start))
	if err != nil {
		s.logFailure(err, "settlement rejected")
		return nil, err
	}

	s.log.Info().
		Str("nonce", receipt.Nonce).
		Str("feature", receipt.Feature).
		Str("payer", receipt.Payer).
		Str("wallet_kind", kind.String()).
		Msg("invoice settled")
	return receipt, nil
}

func (s *GatewayServiceImpl) settle(ctx context.Context, invoice *domain.Invoice, proof *domain.WalletProof, kind domain.WalletKind) (*domain.Receipt, error) {
	if invoice == nil || proof == nil || invoice.Nonce == "" || proof.Account == "" || proof.Signature() == "" {
		return nil, apperror.ErrMissingBody()
	}

	now := s.now().Unix()
	// ttl is not in the signed message; it must be one the issuer could have granted.
	if invoice.TTL <= 0 || invoice.TTL > s.maxTTL {
		return nil, apperror.Validation(fmt.Sprintf("invoice ttl must be between 1 and %d", s.maxTTL))
	}
	if invoice.TS > now {
		return nil, apperror.Validation("invoice timestamp is in the future")
	}
	if !invoice.IsFresh(now) {
		return nil, apperror.ErrExpired()
	}

	seen, err := s.ledger.Seen(ctx, invoice.Nonce)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("nonce lookup: %w", err))
	}
	if seen {
		return nil, apperror.ErrReplay()
	}

	if !s.verifier.Verify(kind, invoice.CanonicalMessage(), proof.Account, proof.Signature()) {
		return nil, apperror.ErrBadWalletProof()
	}

	// Only a verified proof consumes the nonce; a concurrent winner turns this into a replay.
	won, err := s.ledger.Reserve(ctx, invoice.Nonce, s.nonceHoldUntil(invoice))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("nonce reserve: %w", err))
	}
	if !won {
		return nil, apperror.ErrReplay()
	}

	receipt := s.authority.Issue(invoice, proof.Account, now)
	s.archive.Record(*receipt)
	s.metrics.ArchiveSize(s.archive.Len())

	s.evict(ctx)
	return receipt, nil
}

// nonceHoldUntil is the last second any variant of invoice could still be fresh.
// TS has already been checked against now, so the sum cannot overflow.
func (s *GatewayServiceImpl) nonceHoldUntil(invoice *domain.Invoice) int64 {
	return invoice.TS + s.maxTTL
}

// VerifyReceipt checks freshness and the gateway signature of receipt. The replay
// flag in the result is advisory and never causes a rejection.
func (s *GatewayServiceImpl) VerifyReceipt(ctx context.Context, receipt *domain.Receipt) (*ports.ReceiptVerification, error) {
	if receipt == nil {
		err := apperror.ErrMissingBody()
		s.metrics.ReceiptVerified(err.Code)
		return nil, err
	}

	if err := s.authority.Verify(receipt, s.now()); err != nil {
		s.metrics.ReceiptVerified(apperror.CodeOf(err))
		s.logFailure(err, "receipt rejected")
		return nil, err
	}

	seen, err := s.ledger.Seen(ctx, receipt.Nonce)
	if err != nil {
		s.log.Warn().Err(err).Str("nonce", receipt.Nonce).Msg("nonce lookup failed during receipt verification")
		seen = false
	}

	s.metrics.ReceiptVerified(outcomeOK)
	return &ports.ReceiptVerification{ReplayProtected: seen}, nil
}

// RecentReceipts returns up to limit archived receipts, newest first.
func (s *GatewayServiceImpl) RecentReceipts(limit int) []domain.Receipt {
	return s.archive.Recent(limit)
}

// evict drops expired nonces. Failures are logged and never fail a settlement.
func (s *GatewayServiceImpl) evict(ctx context.Context) {
	n, err := s.ledger.EvictExpired(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("nonce eviction failed")
		return
	}
	if n > 0 {
		s.metrics.NoncesEvicted(n)
	}
}

func (s *GatewayServiceImpl) logFailure(err error, msg string) {
	if apperror.CodeOf(err) == apperror.CodeServerError {
		s.log.Error().Err(err).Msg(msg)
		return
	}
	s.log.Debug().Str("error", apperror.CodeOf(err)).Msg(msg)
}

func outcomeOf(err error) string {
	if err == nil {
		return outcomeOK
	}
	return apperror.CodeOf(err)
}

// RunNonceJanitor evicts expired nonces every interval until ctx is cancelled.
func RunNonceJanitor(ctx context.Context, ledger ports.NonceLedger, interval time.Duration, metrics ports.GatewayMetrics, log zerolog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("nonce janitor stopped")
			return
		case <-ticker.C:
			n, err := ledger.EvictExpired(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("nonce janitor eviction failed")
				continue
			}
			if n > 0 {
				metrics.NoncesEvicted(n)
				log.Debug().Int("evicted", n).Msg("expired nonces evicted")
			}
		}
	}
}
