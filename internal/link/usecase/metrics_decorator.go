package usecase

import (
	"context"
	"time"

	"github.com/vdolink/vdolink/internal/metrics"
)

const metricsDomain = "link"

// linkUseCaseWithMetrics decorates LinkUseCase with metrics instrumentation.
type linkUseCaseWithMetrics struct {
	next    LinkUseCase
	metrics metrics.BusinessMetrics
}

// NewLinkUseCaseWithMetrics wraps a LinkUseCase with metrics recording.
func NewLinkUseCaseWithMetrics(useCase LinkUseCase, m metrics.BusinessMetrics) LinkUseCase {
	return &linkUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GenerateAndPersist records metrics for link generation.
func (l *linkUseCaseWithMetrics) GenerateAndPersist(ctx context.Context) (string, error) {
	start := time.Now()
	url, err := l.next.GenerateAndPersist(ctx)
	metrics.Observe(ctx, l.metrics, metricsDomain, "link_generate", start, metrics.StatusOf(err))
	return url, err
}

// SetManual records metrics for manual link updates.
func (l *linkUseCaseWithMetrics) SetManual(ctx context.Context, pushID, audience string) error {
	start := time.Now()
	err := l.next.SetManual(ctx, pushID, audience)
	metrics.Observe(ctx, l.metrics, metricsDomain, "link_set", start, metrics.StatusOf(err))
	return err
}

// Load records metrics for link loads. A load without a value counts as a miss.
func (l *linkUseCaseWithMetrics) Load(ctx context.Context) (string, bool) {
	start := time.Now()
	url, ok := l.next.Load(ctx)

	status := metrics.StatusSuccess
	if !ok {
		status = metrics.StatusMiss
	}
	metrics.Observe(ctx, l.metrics, metricsDomain, "link_load", start, status)

	return url, ok
}

// Ensure records metrics for ensure calls.
func (l *linkUseCaseWithMetrics) Ensure(ctx context.Context) (string, bool, error) {
	start := time.Now()
	url, generated, err := l.next.Ensure(ctx)
	metrics.Observe(ctx, l.metrics, metricsDomain, "link_ensure", start, metrics.StatusOf(err))
	return url, generated, err
}
