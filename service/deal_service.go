package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/domain"
	"github.com/tony-42069/biz-acquisition/repository"
)

// DealService wraps the pure engine with caching, identifiers and the
// narrative summary.
type DealService struct {
	cache    repository.CacheRepository
	ai       *AIService
	logger   arbor.ILogger
	cacheTTL time.Duration
	now      func() time.Time
}

func NewDealService(
	cache repository.CacheRepository,
	ai *AIService,
	cacheTTL time.Duration,
	logger arbor.ILogger,
) *DealService {
	return &DealService{
		cache:    cache,
		ai:       ai,
		logger:   logger,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// Evaluate normalizes and evaluates a submitted deal. Repeated submissions
// of the same deal are served from the cache.
func (s *DealService) Evaluate(ctx context.Context, input domain.DealInput) (domain.DealEvaluation, error) {
	deal, err := NormalizeDeal(input)
	if err != nil {
		return domain.DealEvaluation{}, err
	}
	if err := ValidateDeal(deal); err != nil {
		return domain.DealEvaluation{}, err
	}

	key := CacheKey(deal)
	if cached, ok := s.lookup(ctx, key); ok {
		s.logger.Debug().Str("cache_key", key).Str("evaluation_id", cached.ID).Msg("Serving cached evaluation")
		cached.Deal = input
		return cached, nil
	}

	metrics := ComputeMetrics(deal)
	analysis := EvaluateDeal(metrics)

	evaluation := domain.DealEvaluation{
		ID:          uuid.NewString(),
		EvaluatedAt: s.now().UTC(),
		Deal:        input,
		Metrics:     metrics,
		Analysis:    analysis,
		Summary:     s.ai.ExplainDeal(ctx, metrics, analysis),
	}

	s.logger.Info().
		Str("evaluation_id", evaluation.ID).
		Str("industry", string(deal.Industry)).
		Str("recommendation", string(analysis.Recommendation)).
		Int("score", int(analysis.Score)).
		Msg("Deal evaluated")

	s.store(ctx, key, evaluation)
	return evaluation, nil
}

// CacheKey identifies a normalized deal. Inputs that differ only in
// formatting ("$1,000" and "1000") share a key.
func CacheKey(deal domain.NormalizedDeal) string {
	payload, _ := json.Marshal(deal)
	return fmt.Sprintf("deal:%016x", xxhash.Sum64(payload))
}

func (s *DealService) lookup(ctx context.Context, key string) (domain.DealEvaluation, bool) {
	if s.cache == nil {
		return domain.DealEvaluation{}, false
	}

	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.DealEvaluation{}, false
	}

	var evaluation domain.DealEvaluation
	if err := json.Unmarshal([]byte(raw), &evaluation); err != nil {
		s.logger.Warn().Err(err).Str("cache_key", key).Msg("Discarding unreadable cache entry")
		return domain.DealEvaluation{}, false
	}
	return evaluation, true
}

// store is best effort; a cache failure never fails the request.
func (s *DealService) store(ctx context.Context, key string, evaluation domain.DealEvaluation) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(evaluation)
	if err != nil {
		s.logger.Warn().Err(err).Str("evaluation_id", evaluation.ID).Msg("Failed to encode evaluation for cache")
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("cache_key", key).Msg("Failed to cache evaluation")
	}
}
