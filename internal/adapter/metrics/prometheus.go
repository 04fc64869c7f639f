package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "micropay"

// otherFeature labels invoices for features the gateway does not serve.
const otherFeature = "other"

// Prometheus implements ports.GatewayMetrics on a private registry.
type Prometheus struct {
	registry *prometheus.Registry
	features map[string]struct{}

	invoicesIssued     *prometheus.CounterVec
	settlements        *prometheus.CounterVec
	settlementDuration *prometheus.HistogramVec
	receiptsVerified   *prometheus.CounterVec
	noncesEvicted      prometheus.Counter
	archiveSize        prometheus.Gauge
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// NewPrometheus registers the gateway collectors, plus Go runtime and process
// collectors, on a fresh registry. Invoice counts are labelled with one of
// features; any other requested feature is counted as "other".
func NewPrometheus(features ...string) *Prometheus {
	known := make(map[string]struct{}, len(features))
	for _, f := range features {
		known[f] = struct{}{}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		features: known,
		invoicesIssued: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invoices_issued_total",
				Help:      "Invoices issued by feature",
			},
			[]string{"feature"},
		),
		settlements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "settlements_total",
				Help:      "Settlement attempts by wallet kind and outcome",
			},
			[]string{"wallet_kind", "outcome"},
		),
		settlementDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "settlement_duration_seconds",
				Help:      "Settlement latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"wallet_kind"},
		),
		receiptsVerified: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "receipt_verifications_total",
				Help:      "Receipt verifications by outcome",
			},
			[]string{"outcome"},
		),
		noncesEvicted: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nonces_evicted_total",
				Help:      "Expired nonces removed from the ledger",
			},
		),
		archiveSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "receipt_archive_size",
				Help:      "Receipts currently held in the archive",
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
}

// InvoiceIssued counts an issued invoice. feature comes from the request body.
func (p *Prometheus) InvoiceIssued(feature string) {
	if _, ok := p.features[feature]; !ok {
		feature = otherFeature
	}
	p.invoicesIssued.WithLabelValues(feature).Inc()
}

func (p *Prometheus) SettlementObserved(kind, outcome string, elapsed time.Duration) {
	p.settlements.WithLabelValues(kind, outcome).Inc()
	p.settlementDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

func (p *Prometheus) ReceiptVerified(outcome string) {
	p.receiptsVerified.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) NoncesEvicted(n int) {
	if n > 0 {
		p.noncesEvicted.Add(float64(n))
	}
}

func (p *Prometheus) ArchiveSize(n int) {
	p.archiveSize.Set(float64(n))
}

// ObserveHTTP records one served request. route is the matched route template.
func (p *Prometheus) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	p.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry returns the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Noop discards all measurements.
type Noop struct{}

func (Noop) InvoiceIssued(string)                             {}
func (Noop) SettlementObserved(string, string, time.Duration) {}
func (Noop) ReceiptVerified(string)                           {}
func (Noop) NoncesEvicted(int)                                {}
func (Noop) ArchiveSize(int)                                  {}
func (Noop) ObserveHTTP(string, string, int, time.Duration)   {}
