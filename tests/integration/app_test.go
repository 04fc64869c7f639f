package integration

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"micropay-gateway/config"
	httpHandler "micropay-gateway/internal/adapter/http/handler"
	"micropay-gateway/internal/adapter/metrics"
	"micropay-gateway/internal/adapter/storage/memory"
	redisStorage "micropay-gateway/internal/adapter/storage/redis"
	"micropay-gateway/internal/core/ports"
	"micropay-gateway/internal/service"
	"micropay-gateway/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/mr-tron/base58"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const testAdminSecret = "integration-admin-secret"

// testApp runs the full stack (router, middleware, services, storage) behind an
// httptest server. The redis variant backs the nonce ledger with miniredis.
type testApp struct {
	server   *httptest.Server
	tokenSvc *service.JWTTokenService
	redis    *miniredis.Miniredis
}

func newTestApp(t *testing.T, backend string) *testApp {
	t.Helper()

	log := logger.New("error", false)
	app := &testApp{}

	var (
		ledger   ports.NonceLedger
		checkers []ports.HealthChecker
	)
	switch backend {
	case "redis":
		app.redis = miniredis.RunT(t)
		rdb := goredis.NewClient(&goredis.Options{Addr: app.redis.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
		ledger = redisStorage.NewNonceLedger(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	default:
		ledger = memory.NewNonceLedger()
	}

	identity, err := service.NewGatewayIdentity(nil)
	require.NoError(t, err)

	defaults := config.InvoiceConfig{
		Feature: "api.translate",
		Amount:  "0.01",
		Unit:    "SOL",
		TTLSec:  90,
		MaxTTL:  3600,
		Wallet:  "solana",
	}
	promMetrics := metrics.NewPrometheus(defaults.Feature, httpHandler.TranslateFeature)

	gatewaySvc := service.NewGatewayService(service.GatewayDeps{
		Identity: identity,
		Issuer:   service.NewInvoiceIssuer(defaults, identity, time.Now),
		Verifier: service.NewWalletProofVerifier(),
		Ledger:   ledger,
		Archive:  memory.NewReceiptArchive(memory.DefaultArchiveCapacity),
		Metrics:  promMetrics,
		Log:      log,
	})
	app.tokenSvc = service.NewJWTTokenService(testAdminSecret, time.Hour, "micropay-gateway")

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		GatewaySvc:     gatewaySvc,
		TokenSvc:       app.tokenSvc,
		AuditSvc:       service.NewAuditService(log),
		HTTPMetrics:    promMetrics,
		MetricsHandler: promMetrics.Handler(),
		HealthCheckers: checkers,
		OpenAPISpec:    []byte("openapi: 3.0.3\n"),
		Logger:         log,
	})

	app.server = httptest.NewServer(router)
	t.Cleanup(app.server.Close)
	return app
}

func (a *testApp) url(path string) string {
	return a.server.URL + path
}

// postJSON posts body and decodes the JSON reply into out (when non-nil).
func (a *testApp) postJSON(t *testing.T, path string, body interface{}, headers map[string]string, out interface{}) int {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, a.url(path), bytes.NewReader(buf))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return a.do(t, req, out)
}

func (a *testApp) get(t *testing.T, path string, headers map[string]string, out interface{}) int {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, a.url(path), nil)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return a.do(t, req, out)
}

func (a *testApp) do(t *testing.T, req *http.Request, out interface{}) int {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode
}

// solanaKey is a caller wallet: base58 account, base64 signatures.
type solanaKey struct {
	priv    ed25519.PrivateKey
	account string
}

func newSolanaKey(t *testing.T) solanaKey {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return solanaKey{priv: priv, account: base58.Encode(pub)}
}

func (k solanaKey) sign(message string) string {
	return base64.StdEncoding.EncodeToString(ed25519.Sign(k.priv, []byte(message)))
}

type invoiceReply struct {
	OK            bool            `json:"ok"`
	Invoice       json.RawMessage `json:"invoice"`
	MessageToSign string          `json:"messageToSign"`
	GatewayPubkey string          `json:"gatewayPubkey"`
}

type settleReply struct {
	OK      bool            `json:"ok"`
	Error   string          `json:"error"`
	Receipt json.RawMessage `json:"receipt"`
}

type errorReply struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

// settleBody builds the settle request exactly as a client would: the invoice is
// echoed back verbatim next to the wallet proof.
func settleBody(invoice json.RawMessage, kind, account, sigField, sig string) map[string]interface{} {
	return map[string]interface{}{
		"invoice": invoice,
		"walletProof": map[string]string{
			"kind":    kind,
			"account": account,
			sigField:  sig,
		},
	}
}
