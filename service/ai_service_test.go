package service

import (
	"context"
	"errors"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/domain"
)

type fakeMessager struct {
	text  string
	err   error
	calls []anthropic.MessageNewParams
}

func (f *fakeMessager) New(_ context.Context, params anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{{Type: "text", Text: f.text}},
	}, nil
}

var testAIConfig = AIConfig{Model: "claude-test", MaxTokens: 200}

func TestNewAIService_DisabledWithoutKey(t *testing.T) {
	svc := NewAIService(AIConfig{Model: "claude-test"}, arbor.NewLogger())
	assert.False(t, svc.Enabled())
}

func TestExplainDeal_UsesModel(t *testing.T) {
	fake := &fakeMessager{text: "  A solid deal with thin coverage.  "}
	svc := NewAIServiceWithMessager(fake, testAIConfig, arbor.NewLogger())

	m := sampleMetrics(t)
	got := svc.ExplainDeal(context.Background(), m, EvaluateDeal(m))

	assert.Equal(t, "A solid deal with thin coverage.", got)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, anthropic.Model("claude-test"), fake.calls[0].Model)
	assert.Equal(t, int64(200), fake.calls[0].MaxTokens)
}

func TestExplainDeal_FallbackOnError(t *testing.T) {
	fake := &fakeMessager{err: errors.New("overloaded")}
	svc := NewAIServiceWithMessager(fake, testAIConfig, arbor.NewLogger())

	m := sampleMetrics(t)
	a := EvaluateDeal(m)

	assert.Equal(t, fallbackDealExplanation(m, a), svc.ExplainDeal(context.Background(), m, a))
}

func TestExplainDeal_FallbackOnEmptyResponse(t *testing.T) {
	fake := &fakeMessager{text: "   "}
	svc := NewAIServiceWithMessager(fake, testAIConfig, arbor.NewLogger())

	m := sampleMetrics(t)
	a := EvaluateDeal(m)

	assert.Equal(t, fallbackDealExplanation(m, a), svc.ExplainDeal(context.Background(), m, a))
}

func TestFallbackDealExplanation(t *testing.T) {
	m := sampleMetrics(t)
	a := EvaluateDeal(m)

	assert.Equal(t,
		"Neutral (score 60/100). The business is priced at 5.56x EBITDA with a debt service coverage ratio of 1.17x. "+
			"Projected five-year cash flows give an NPV of $314698 at a 15% discount rate. "+
			"The review found 3 strengths and 3 weaknesses.",
		fallbackDealExplanation(m, a))

	m.Financing.AnnualDebtService = 0
	assert.Contains(t, fallbackDealExplanation(m, a), "no acquisition debt to service")
}

func TestExplainScenario_Disabled(t *testing.T) {
	svc := NewAIServiceWithMessager(nil, testAIConfig, arbor.NewLogger())
	top := domain.FinancingScenario{TermYears: 25, AnnualDebtService: 269091.79, DebtServiceCoverageRatio: 1.67, Score: 81}

	assert.Equal(t,
		"A 25-year term keeps annual debt service at $269092 for a coverage ratio of 1.67x, "+
			"the best overall score (81/100) among the terms compared.",
		svc.ExplainScenario(context.Background(), top, nil))
}
