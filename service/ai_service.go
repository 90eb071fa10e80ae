package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/domain"
)

const advisorSystemPrompt = "You are an M&A advisor who helps first-time buyers evaluate small business acquisitions. " +
	"Explain deal metrics plainly, stay factual and never invent figures that are not in the prompt."

// AnthropicMessager is the subset of the Anthropic client the service uses.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AIConfig struct {
	APIKey    string
	Model     string
	MaxTokens int64
}

// AIService writes narrative explanations. Without an API key it falls
// back to deterministic text built from the figures.
type AIService struct {
	messages  AnthropicMessager
	model     string
	maxTokens int64
	enabled   bool
	logger    arbor.ILogger
}

func NewAIService(cfg AIConfig, logger arbor.ILogger) *AIService {
	svc := &AIService{
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return svc
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	svc.messages = &client.Messages
	svc.enabled = true
	return svc
}

// NewAIServiceWithMessager wires an explicit client, mainly for tests.
func NewAIServiceWithMessager(messages AnthropicMessager, cfg AIConfig, logger arbor.ILogger) *AIService {
	return &AIService{
		messages:  messages,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		enabled:   messages != nil,
		logger:    logger,
	}
}

func (s *AIService) Enabled() bool {
	return s.enabled
}

// ExplainDeal summarizes an evaluation in three or four sentences.
func (s *AIService) ExplainDeal(ctx context.Context, m domain.MetricsResult, a domain.DealAnalysis) string {
	if !s.enabled {
		return fallbackDealExplanation(m, a)
	}

	prompt := fmt.Sprintf(`Summarize this small business acquisition for the buyer.

DEAL:
- Asking price: $%.0f
- Revenue: $%.0f, EBITDA: $%.0f (%s industry)
- EBITDA multiple: %.2fx, revenue multiple: %.2fx
- Down payment: $%.0f, seller note: $%.0f, bank loan: $%.0f
- Annual debt service: $%.0f, DSCR: %.2fx
- Five-year NPV at 15%%: $%.0f, approximate IRR: %.1f%%

ANALYSIS:
- Recommendation: %s (score %.0f/100)
- Strengths: %s
- Weaknesses: %s
- Opportunities: %s
- Threats: %s

Write 3-4 sentences explaining the recommendation, citing the figures that drive it.`,
		m.AskingPrice, m.TotalRevenue, m.EBITDA, m.Industry,
		m.EBITDAMultiple, m.RevenueMultiple,
		m.Financing.DownPayment, m.Financing.SellerNoteAmount, m.Financing.BankLoanAmount,
		m.Financing.AnnualDebtService, m.DebtServiceCoverageRatio,
		m.NetPresentValue, m.InternalRateOfReturn,
		a.Recommendation, a.Score,
		joinFindings(a.Strengths), joinFindings(a.Weaknesses),
		joinFindings(a.Opportunities), joinFindings(a.Threats))

	explanation, err := s.callLLM(ctx, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Narrative generation failed, using fallback explanation")
		return fallbackDealExplanation(m, a)
	}
	return explanation
}

// ExplainScenario explains why the top financing term won.
func (s *AIService) ExplainScenario(ctx context.Context, top domain.FinancingScenario, alternatives []domain.FinancingScenario) string {
	if !s.enabled {
		return fallbackScenarioExplanation(top)
	}

	var alt strings.Builder
	for _, sc := range alternatives {
		alt.WriteString(fmt.Sprintf("- %d years: debt service $%.0f, DSCR %.2fx, NPV $%.0f, score %.0f\n",
			sc.TermYears, sc.AnnualDebtService, sc.DebtServiceCoverageRatio, sc.NetPresentValue, sc.Score))
	}

	prompt := fmt.Sprintf(`A buyer compared acquisition loan terms for the same deal.

RECOMMENDED TERM: %d years
- Annual debt service: $%.0f
- DSCR: %.2fx
- Five-year NPV: $%.0f
- Score: %.0f/100 (%s)

ALTERNATIVES:
%s
Explain in 2-3 sentences why the recommended term is the better balance between cash flow and coverage.`,
		top.TermYears, top.AnnualDebtService, top.DebtServiceCoverageRatio,
		top.NetPresentValue, top.Score, top.Recommendation, alt.String())

	explanation, err := s.callLLM(ctx, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Int("term_years", top.TermYears).Msg("Scenario explanation failed, using fallback")
		return fallbackScenarioExplanation(top)
	}
	return explanation
}

func (s *AIService) callLLM(ctx context.Context, prompt string) (string, error) {
	resp, err := s.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: s.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: advisorSystemPrompt}},
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

func joinFindings(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, "; ")
}

func fallbackDealExplanation(m domain.MetricsResult, a domain.DealAnalysis) string {
	coverage := fmt.Sprintf("a debt service coverage ratio of %.2fx", m.DebtServiceCoverageRatio)
	if m.Financing.AnnualDebtService <= 0 {
		coverage = "no acquisition debt to service"
	}
	return fmt.Sprintf(
		"%s (score %.0f/100). The business is priced at %.2fx EBITDA with %s. "+
			"Projected five-year cash flows give an NPV of $%.0f at a 15%% discount rate. "+
			"The review found %d strengths and %d weaknesses.",
		a.Recommendation, a.Score, m.EBITDAMultiple, coverage,
		m.NetPresentValue, len(a.Strengths), len(a.Weaknesses))
}

func fallbackScenarioExplanation(top domain.FinancingScenario) string {
	return fmt.Sprintf(
		"A %d-year term keeps annual debt service at $%.0f for a coverage ratio of %.2fx, "+
			"the best overall score (%.0f/100) among the terms compared.",
		top.TermYears, top.AnnualDebtService, top.DebtServiceCoverageRatio, top.Score)
}
