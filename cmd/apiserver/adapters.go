package main

import (
	"context"
	"time"

	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/domain/recommend"
	"github.com/reactwise/condrec/internal/infrastructure/messaging/kafka"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/prometheus"
	"github.com/reactwise/condrec/pkg/errors"
)

const eventSource = "condrec-apiserver"

// instrumentedRecommender wraps the engine with metrics and served-event
// publication.  Publication is async; a broker outage never slows a request.
type instrumentedRecommender struct {
	engine   *recommend.Engine
	metrics  *prometheus.AppMetrics
	producer *kafka.Producer
}

func (r *instrumentedRecommender) Recommend(ctx context.Context, req recommend.Request) (*recommend.Export, error) {
	start := time.Now()
	export, err := r.engine.Recommend(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		if r.metrics != nil {
			prometheus.RecordError(r.metrics, "recommend", string(errors.GetCode(err)))
		}
		return nil, err
	}

	rt := export.Detection.ReactionType
	at := export.Meta.AnalysisType
	if r.metrics != nil {
		r.metrics.RecommendationsTotal.WithLabelValues(rt, at).Inc()
		r.metrics.RecommendationDuration.WithLabelValues(rt).Observe(elapsed.Seconds())
		if at == "similarity_fallback" {
			r.metrics.SimilarityFallbacksTotal.WithLabelValues().Inc()
		}
	}

	if r.producer != nil {
		env, envErr := kafka.NewEventEnvelope(kafka.TopicRecommendationServed, eventSource, kafka.RecommendationServedPayload{
			ReactionType: rt,
			AnalysisType: at,
			DurationMs:   float64(elapsed.Milliseconds()),
			ServedAt:     time.Now().UTC(),
		})
		if envErr == nil {
			if msg, msgErr := env.ToMessage(kafka.TopicRecommendationServed); msgErr == nil {
				r.producer.PublishAsync(context.WithoutCancel(ctx), msg)
			}
		}
	}
	return export, nil
}

// instrumentedCache counts hits and misses on the shared result cache.
type instrumentedCache struct {
	inner   recommend.ResultCache
	metrics *prometheus.AppMetrics
}

func (c *instrumentedCache) Get(ctx context.Context, key string) (*recommend.Export, bool) {
	ex, ok := c.inner.Get(ctx, key)
	if c.metrics != nil {
		if ok {
			c.metrics.CacheHitsTotal.WithLabelValues("recommendation").Inc()
		} else {
			c.metrics.CacheMissesTotal.WithLabelValues("recommendation").Inc()
		}
	}
	return ex, ok
}

func (c *instrumentedCache) Set(ctx context.Context, key string, ex *recommend.Export) {
	c.inner.Set(ctx, key, ex)
}

// publishingSummaryStore emits a summary-published event after every
// successful Save.
type publishingSummaryStore struct {
	evidence.SummaryStore
	producer *kafka.Producer
}

func (s *publishingSummaryStore) Save(ctx context.Context, sum *evidence.Summary) (string, error) {
	gen, err := s.SummaryStore.Save(ctx, sum)
	if err != nil {
		return "", err
	}
	env, envErr := kafka.NewEventEnvelope(kafka.TopicSummaryPublished, eventSource, kafka.SummaryPublishedPayload{
		ReactionType: sum.Meta.Tag,
		Generation:   gen,
		Fingerprint:  sum.Meta.Fingerprint,
		AnalyzedRows: sum.Meta.AnalyzedRows,
		PublishedAt:  time.Now().UTC(),
	})
	if envErr == nil {
		if msg, msgErr := env.ToMessage(kafka.TopicSummaryPublished); msgErr == nil {
			s.producer.PublishAsync(context.WithoutCancel(ctx), msg)
		}
	}
	return gen, nil
}
