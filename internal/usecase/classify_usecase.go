package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Pravhesh/GrievAI/internal/domain/category"
	"github.com/Pravhesh/GrievAI/internal/domain/entity"
	"github.com/Pravhesh/GrievAI/internal/domain/service"
	"github.com/Pravhesh/GrievAI/internal/infrastructure/cache"
	"github.com/Pravhesh/GrievAI/internal/infrastructure/executor"
	"github.com/Pravhesh/GrievAI/internal/infrastructure/metrics"
)

// Error definitions for the classification usecase
var (
	ErrEmptyText             = errors.New("text cannot be empty")
	ErrEmptyImageURL         = errors.New("image_url cannot be empty")
	ErrClassificationTimeout = errors.New("classification timed out")
	ErrClassification        = errors.New("classification failed")
)

// ClassifyUsecase orchestrates validation, cache lookup, bounded-latency
// classification, label normalization and cache fill.
type ClassifyUsecase interface {
	ClassifyText(ctx context.Context, text string) (*entity.Classification, error)
	ClassifyImage(ctx context.Context, imageURL string) (*entity.Classification, error)
}

type classifyUsecase struct {
	textClassifier  service.Classifier
	imageClassifier service.Classifier
	mapping         *category.Mapping
	store           cache.Store
	pool            *executor.Pool
	timeout         time.Duration
	log             *zap.Logger
}

// NewClassifyUsecase creates the classification usecase.
func NewClassifyUsecase(
	textClassifier, imageClassifier service.Classifier,
	mapping *category.Mapping,
	store cache.Store,
	pool *executor.Pool,
	timeout time.Duration,
	log *zap.Logger,
) ClassifyUsecase {
	return &classifyUsecase{
		textClassifier:  textClassifier,
		imageClassifier: imageClassifier,
		mapping:         mapping,
		store:           store,
		pool:            pool,
		timeout:         timeout,
		log:             log,
	}
}

func (u *classifyUsecase) ClassifyText(ctx context.Context, text string) (*entity.Classification, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyText
	}

	// Content-addressed key: same text modulo case and surrounding
	// whitespace maps to the same entry.
	key := cache.Key(strings.ToLower(trimmed))
	return u.classify(ctx, "text", key, trimmed, u.textClassifier)
}

func (u *classifyUsecase) ClassifyImage(ctx context.Context, imageURL string) (*entity.Classification, error) {
	if imageURL == "" {
		return nil, ErrEmptyImageURL
	}

	key := cache.Key(imageURL)
	return u.classify(ctx, "image", key, imageURL, u.imageClassifier)
}

func (u *classifyUsecase) classify(ctx context.Context, kind, key, input string, classifier service.Classifier) (*entity.Classification, error) {
	if cached, ok, err := u.store.Get(ctx, key); err != nil {
		u.log.Warn("cache lookup failed", zap.String("kind", kind), zap.Error(err))
	} else if ok {
		metrics.CacheHits.WithLabelValues(kind).Inc()
		return &cached, nil
	}
	metrics.CacheMisses.WithLabelValues(kind).Inc()

	// The task normalizes and fills the cache itself so that a run that
	// outlives the timeout still warms the cache for the next request.
	// Same key, same value, so a late fill is a harmless overwrite.
	resultCh := make(chan entity.Classification, 1)
	start := time.Now()
	err := u.pool.Run(ctx, u.timeout, func(taskCtx context.Context) error {
		pairs, err := classifier.Classify(taskCtx, input, u.mapping.CandidateLabels())
		if err != nil {
			return err
		}
		if len(pairs) == 0 {
			return errors.New("classifier returned no labels")
		}

		top := pairs[0]
		result := entity.Classification{
			Label:         u.mapping.Normalize(top.Label),
			Score:         top.Score,
			OriginalLabel: top.Label,
		}
		if err := u.store.Set(taskCtx, key, result); err != nil {
			u.log.Warn("cache fill failed", zap.String("kind", kind), zap.Error(err))
		}
		resultCh <- result
		return nil
	})
	metrics.ClassifyDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, executor.ErrTimedOut):
		metrics.ClassifyTimeouts.WithLabelValues(kind).Inc()
		u.log.Warn("classification timed out",
			zap.String("kind", kind),
			zap.Duration("timeout", u.timeout))
		return nil, ErrClassificationTimeout
	case err != nil:
		// The raw error is for the logs only; callers get the opaque
		// taxonomy error.
		u.log.Error("classifier invocation failed", zap.String("kind", kind), zap.Error(err))
		return nil, ErrClassification
	}

	result := <-resultCh
	return &result, nil
}
