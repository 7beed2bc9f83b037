package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	LettersClaimed   prometheus.Counter
	ClaimsRejected   *prometheus.CounterVec
	AssetsMinted     prometheus.Counter
	LettersConsumed  prometheus.Counter
	PurchasesSettled prometheus.Counter
	FeesAccruedTotal prometheus.Counter
	ListingsActive   prometheus.Gauge
	EventsPublished  *prometheus.CounterVec
}

// NewCollector creates a new metrics collector with the given namespace.
// A process-wide singleton avoids duplicate registration in tests.
func NewCollector(namespace string) *Collector {
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	lettersClaimed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "letters_claimed_total",
		Help:      "Total number of letters claimed at locations",
	})

	claimsRejected := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_rejected_total",
			Help:      "Claim rejections by reason",
		},
		[]string{"reason"},
	)

	assetsMinted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assets_minted_total",
		Help:      "Total number of word assets minted",
	})

	lettersConsumed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "letters_consumed_total",
		Help:      "Total count of letters consumed by minting",
	})

	purchasesSettled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_settled_total",
		Help:      "Total number of settled exchange purchases",
	})

	feesAccrued := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fees_accrued_total",
		Help:      "Total exchange fees accrued",
	})

	listingsActive := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "listings_active",
		Help:      "Number of currently active exchange listings",
	})

	eventsPublished := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Domain events published by type and status",
		},
		[]string{"event_type", "status"},
	)

	registry.MustRegister(
		httpRequests, httpDuration,
		lettersClaimed, claimsRejected, assetsMinted, lettersConsumed,
		purchasesSettled, feesAccrued, listingsActive, eventsPublished,
	)

	globalCollector = &Collector{
		registry:         registry,
		HTTPRequests:     httpRequests,
		HTTPDuration:     httpDuration,
		LettersClaimed:   lettersClaimed,
		ClaimsRejected:   claimsRejected,
		AssetsMinted:     assetsMinted,
		LettersConsumed:  lettersConsumed,
		PurchasesSettled: purchasesSettled,
		FeesAccruedTotal: feesAccrued,
		ListingsActive:   listingsActive,
		EventsPublished:  eventsPublished,
	}
	return globalCollector
}

// Handler returns an HTTP handler serving the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
