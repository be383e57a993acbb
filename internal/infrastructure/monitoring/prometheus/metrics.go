package prometheus

import (
	"strconv"
	"time"
)

// AppMetrics groups every metric the service emits.
type AppMetrics struct {
	// HTTP layer.
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Recommendation pipeline.
	RecommendationsTotal      CounterVec
	RecommendationDuration    HistogramVec
	ClassifierDetectionsTotal CounterVec
	SimilaritySearchDuration  HistogramVec
	SimilarityFallbacksTotal  CounterVec

	// Evidence aggregation.
	AggregationRuns        CounterVec
	AggregationDuration    HistogramVec
	AggregationRowsScanned CounterVec
	SummaryGenerations     GaugeVec

	// Dataset ingestion.
	DatasetScansTotal   CounterVec
	DatasetScanDuration HistogramVec
	DatasetRecords      GaugeVec

	// Infrastructure.
	CacheHitsTotal    CounterVec
	CacheMissesTotal  CounterVec
	DBQueryDuration   HistogramVec
	DBPoolConnections GaugeVec
	EventsPublished   CounterVec

	// Health.
	HealthCheckStatus GaugeVec
	ErrorsTotal       CounterVec
}

var (
	DefaultHTTPDurationBuckets  = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultBatchDurationBuckets = []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300}
	DefaultDBDurationBuckets    = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5}
)

// NewAppMetrics registers the full metric set against the collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "In-flight HTTP requests", "method")

	m.RecommendationsTotal = collector.RegisterCounter("recommendations_total", "Served recommendations", "reaction_type", "analysis_type")
	m.RecommendationDuration = collector.RegisterHistogram("recommendation_duration_seconds", "End-to-end recommendation duration", DefaultHTTPDurationBuckets, "reaction_type")
	m.ClassifierDetectionsTotal = collector.RegisterCounter("classifier_detections_total", "Reaction type detections", "reaction_type", "method")
	m.SimilaritySearchDuration = collector.RegisterHistogram("similarity_search_duration_seconds", "Fingerprint similarity search duration", DefaultHTTPDurationBuckets, "fingerprint")
	m.SimilarityFallbacksTotal = collector.RegisterCounter("similarity_fallbacks_total", "Requests answered via similarity fallback")

	m.AggregationRuns = collector.RegisterCounter("aggregation_runs_total", "Evidence aggregation runs", "reaction_type", "status")
	m.AggregationDuration = collector.RegisterHistogram("aggregation_duration_seconds", "Evidence aggregation duration", DefaultBatchDurationBuckets, "reaction_type")
	m.AggregationRowsScanned = collector.RegisterCounter("aggregation_rows_scanned_total", "Dataset rows scanned by aggregation", "reaction_type")
	m.SummaryGenerations = collector.RegisterGauge("summary_generations", "Retained summary generations", "reaction_type")

	m.DatasetScansTotal = collector.RegisterCounter("dataset_scans_total", "Dataset directory scans", "status")
	m.DatasetScanDuration = collector.RegisterHistogram("dataset_scan_duration_seconds", "Dataset scan duration", DefaultBatchDurationBuckets)
	m.DatasetRecords = collector.RegisterGauge("dataset_records", "Records available per source", "source")

	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Cache hits", "cache")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Cache misses", "cache")
	m.DBQueryDuration = collector.RegisterHistogram("db_query_duration_seconds", "Database query duration", DefaultDBDurationBuckets, "operation")
	m.DBPoolConnections = collector.RegisterGauge("db_pool_connections", "Database pool connections", "state")
	m.EventsPublished = collector.RegisterCounter("events_published_total", "Broker events published", "topic", "status")

	m.HealthCheckStatus = collector.RegisterGauge("health_check_status", "Component health (1=up, 0=down)", "component")
	m.ErrorsTotal = collector.RegisterCounter("errors_total", "Errors by component", "component", "code")

	return m
}

// RecordHTTPRequest observes one finished request.
func RecordHTTPRequest(m *AppMetrics, method, path string, statusCode int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRecommendation observes one served recommendation.
func RecordRecommendation(m *AppMetrics, reactionType, analysisType string, cacheHit bool, duration time.Duration) {
	m.RecommendationsTotal.WithLabelValues(reactionType, analysisType).Inc()
	m.RecommendationDuration.WithLabelValues(reactionType).Observe(duration.Seconds())
	if cacheHit {
		m.CacheHitsTotal.WithLabelValues("recommendation").Inc()
	} else {
		m.CacheMissesTotal.WithLabelValues("recommendation").Inc()
	}
	if analysisType == "similarity_fallback" {
		m.SimilarityFallbacksTotal.WithLabelValues().Inc()
	}
}

// RecordAggregation observes one evidence aggregation run.
func RecordAggregation(m *AppMetrics, reactionType string, rows int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.AggregationRuns.WithLabelValues(reactionType, status).Inc()
	m.AggregationDuration.WithLabelValues(reactionType).Observe(duration.Seconds())
	m.AggregationRowsScanned.WithLabelValues(reactionType).Add(float64(rows))
}

// RecordError counts an error against its component and code.
func RecordError(m *AppMetrics, component, code string) {
	m.ErrorsTotal.WithLabelValues(component, code).Inc()
}
