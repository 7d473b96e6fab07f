package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service owns a private Prometheus registry for the API.
type Service struct {
	registry            *prometheus.Registry
	handler             http.Handler
	requestDuration     *prometheus.HistogramVec
	requestTotal        *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
	offerConflicts      prometheus.Counter
}

func NewService() *Service {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	aggregationDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_aggregation_duration_seconds",
		Help:    "Duration of report aggregations, store round trip included",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "outcome"})

	offerConflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offer_element_conflicts_total",
		Help: "Offer element writes rejected because the offer changed since it was read",
	})

	registry.MustRegister(
		requestDuration,
		requestTotal,
		aggregationDuration,
		offerConflicts,
		collectors.NewGoCollector(),
	)

	return &Service{
		registry:            registry,
		handler:             promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:     requestDuration,
		requestTotal:        requestTotal,
		aggregationDuration: aggregationDuration,
		offerConflicts:      offerConflicts,
	}
}

// Handler exposes the registry in the Prometheus text format.
func (s *Service) Handler() http.Handler {
	return s.handler
}

func (s *Service) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	labelStatus := strconv.Itoa(status)
	s.requestDuration.WithLabelValues(method, route, labelStatus).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(method, route, labelStatus).Inc()
}

func (s *Service) ObserveAggregation(operation string, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.aggregationDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

func (s *Service) IncOfferConflict() {
	s.offerConflicts.Inc()
}
