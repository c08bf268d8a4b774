package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FindRouteRequests counts matching pipeline invocations
	FindRouteRequests = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cropool", Name: "find_route_requests_total",
		Help: "Total find-route requests handled",
	})

	// FindRouteLatency tracks end-to-end matching latency
	FindRouteLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cropool", Name: "find_route_latency_seconds",
		Help:    "Find-route latency distribution",
		Buckets: prometheus.DefBuckets,
	})

	// DirectionsCalls counts routing-service calls by outcome
	DirectionsCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cropool", Name: "directions_calls_total",
		Help: "Total routing-service calls",
	}, []string{"outcome"})

	// CandidatesDropped counts candidates dropped during detour ranking by reason
	CandidatesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cropool", Name: "candidates_dropped_total",
		Help: "Candidates dropped during detour ranking",
	}, []string{"reason"})

	// DirectionsCacheHits counts cache hits for checkpoint-only estimates
	DirectionsCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cropool", Name: "directions_cache_hits_total",
		Help: "Cached pickup-dropoff estimates served without a routing-service call",
	})
)
