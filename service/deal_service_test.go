package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/repository"
)

type failingCache struct {
	sets int
}

func (f *failingCache) Get(context.Context, string) (string, bool) {
	return "", false
}

func (f *failingCache) Set(context.Context, string, string, time.Duration) error {
	f.sets++
	return errors.New("cache unavailable")
}

func newTestDealService(cache repository.CacheRepository) *DealService {
	logger := arbor.NewLogger()
	return NewDealService(cache, NewAIService(AIConfig{}, logger), time.Minute, logger)
}

func TestDealService_Evaluate(t *testing.T) {
	svc := newTestDealService(nil)
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))
	svc.now = func() time.Time { return fixed }

	evaluation, err := svc.Evaluate(context.Background(), sampleDealInput())
	require.NoError(t, err)

	assert.NotEmpty(t, evaluation.ID)
	assert.Equal(t, fixed.UTC(), evaluation.EvaluatedAt)
	assert.Equal(t, sampleDealInput(), evaluation.Deal)
	assert.Equal(t, 60.0, evaluation.Analysis.Score)
	assert.Contains(t, evaluation.Summary, "Neutral (score 60/100)")
}

func TestDealService_CachesByNormalizedDeal(t *testing.T) {
	cache := repository.NewMemoryCache()
	svc := newTestDealService(cache)

	first, err := svc.Evaluate(context.Background(), sampleDealInput())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	// Same deal, different formatting.
	input := sampleDealInput()
	input.AskingPrice = "2500000"
	input.Industry = "TECH"

	second, err := svc.Evaluate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, input, second.Deal)
	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, 1, cache.Len())
}

func TestDealService_CacheFailureIsNotFatal(t *testing.T) {
	cache := &failingCache{}
	svc := newTestDealService(cache)

	first, err := svc.Evaluate(context.Background(), sampleDealInput())
	require.NoError(t, err)
	second, err := svc.Evaluate(context.Background(), sampleDealInput())
	require.NoError(t, err)

	assert.Equal(t, 2, cache.sets)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDealService_DiscardsUnreadableEntries(t *testing.T) {
	cache := repository.NewMemoryCache()
	svc := newTestDealService(cache)

	key := CacheKey(sampleDeal(t))
	require.NoError(t, cache.Set(context.Background(), key, "{not json", 0))

	evaluation, err := svc.Evaluate(context.Background(), sampleDealInput())
	require.NoError(t, err)
	assert.NotEmpty(t, evaluation.ID)

	raw, ok := cache.Get(context.Background(), key)
	require.True(t, ok)
	assert.Contains(t, raw, evaluation.ID)
}

func TestDealService_InvalidInput(t *testing.T) {
	cache := repository.NewMemoryCache()
	svc := newTestDealService(cache)

	input := sampleDealInput()
	input.EBITDA = "0"

	_, err := svc.Evaluate(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheKey(t *testing.T) {
	deal := sampleDeal(t)
	key := CacheKey(deal)

	assert.Regexp(t, `^deal:[0-9a-f]{16}$`, key)
	assert.Equal(t, key, CacheKey(deal))

	deal.LoanTermYears = 11
	assert.NotEqual(t, key, CacheKey(deal))
}
