package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of a full recommendation request (catalog + subscription fetch + ranking)
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of recommendation requests",
		Buckets: prometheus.DefBuckets,
	})

	RecommendTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Recommendations served by tier and profile source.",
	}, []string{"tier", "source"})

	RecommendEmpty = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_empty_results_total",
		Help: "Recommendations that matched no catalog product",
	})

	FaceScanAnalyses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "face_scan_analyses_total",
		Help: "Face scan analyses by outcome.",
	}, []string{"outcome"})

	QuestionnaireSubmissions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "questionnaire_submissions_total",
		Help: "Questionnaires that reached the submitted state",
	})

	// 0 closed, 1 half-open, 2 open
	FaceAnalyzerBreakerState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "face_analyzer_circuit_breaker_state",
		Help: "Circuit breaker state of the face analyzer.",
	}, []string{"name"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendTotal,
		RecommendEmpty,
		FaceScanAnalyses,
		QuestionnaireSubmissions,
		FaceAnalyzerBreakerState,
	)
}
