package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/domain"
)

const maxScenarioAlternatives = 3

type FinancingScenarioService struct {
	ai                *AIService
	logger            arbor.ILogger
	maxTermRangeYears int
}

func NewFinancingScenarioService(ai *AIService, maxTermRangeYears int, logger arbor.ILogger) *FinancingScenarioService {
	if maxTermRangeYears <= 0 {
		maxTermRangeYears = DefaultMaxTermRangeYears
	}
	return &FinancingScenarioService{
		ai:                ai,
		logger:            logger,
		maxTermRangeYears: maxTermRangeYears,
	}
}

// CompareTerms evaluates the deal once per loan term in the requested range
// and ranks the terms by composite score, then by NPV.
func (s *FinancingScenarioService) CompareTerms(
	ctx context.Context,
	input domain.FinancingScenarioInput,
) (domain.FinancingScenarioResult, error) {

	if input.MinTermYears <= 0 || input.MaxTermYears <= 0 {
		return domain.FinancingScenarioResult{}, &FieldError{Field: "termYears", Reason: "terms must be positive"}
	}
	if input.MinTermYears > input.MaxTermYears {
		return domain.FinancingScenarioResult{}, &FieldError{Field: "minTermYears", Reason: "minimum term exceeds maximum term"}
	}
	if input.MaxTermYears > MaxLoanTermYears {
		return domain.FinancingScenarioResult{}, &FieldError{
			Field:  "maxTermYears",
			Reason: fmt.Sprintf("maximum term exceeds the limit of %d years", MaxLoanTermYears),
		}
	}
	if input.MaxTermYears-input.MinTermYears > s.maxTermRangeYears {
		return domain.FinancingScenarioResult{}, &FieldError{
			Field:  "maxTermYears",
			Reason: fmt.Sprintf("term range exceeds %d years", s.maxTermRangeYears),
		}
	}
	if input.MinDSCR < 0 {
		return domain.FinancingScenarioResult{}, &FieldError{Field: "minDscr", Reason: "must not be negative"}
	}

	// Each scenario sets its own term; the submitted one is never read.
	dealInput := input.Deal
	dealInput.LoanTermYears = fmt.Sprint(input.MinTermYears)
	deal, err := NormalizeDeal(dealInput)
	if err != nil {
		return domain.FinancingScenarioResult{}, err
	}

	scenarios := []domain.FinancingScenario{}
	for term := input.MinTermYears; term <= input.MaxTermYears; term++ {
		candidate := deal
		candidate.LoanTermYears = term

		metrics, analysis, err := ComputeNormalized(candidate)
		if err != nil {
			return domain.FinancingScenarioResult{}, err
		}

		_, debtFree := effectiveCoverage(metrics)
		if input.MinDSCR > 0 && !debtFree && metrics.DebtServiceCoverageRatio < input.MinDSCR {
			continue
		}

		scenarios = append(scenarios, domain.FinancingScenario{
			TermYears:                term,
			AnnualDebtService:        roundTo2Decimals(metrics.Financing.AnnualDebtService),
			DebtServiceCoverageRatio: roundTo2Decimals(metrics.DebtServiceCoverageRatio),
			NetPresentValue:          roundTo2Decimals(metrics.NetPresentValue),
			InternalRateOfReturn:     roundTo2Decimals(metrics.InternalRateOfReturn),
			Score:                    analysis.Score,
			Recommendation:           analysis.Recommendation,
			Reason:                   scenarioReason(analysis),
		})
	}

	if len(scenarios) == 0 {
		return domain.FinancingScenarioResult{}, fmt.Errorf("%w: no loan term reaches a coverage ratio of %.2fx", ErrInvalidInput, input.MinDSCR)
	}

	sort.SliceStable(scenarios, func(i, j int) bool {
		if scenarios[i].Score != scenarios[j].Score {
			return scenarios[i].Score > scenarios[j].Score
		}
		return scenarios[i].NetPresentValue > scenarios[j].NetPresentValue
	})

	alternatives := scenarios[1:]
	if len(alternatives) > maxScenarioAlternatives {
		alternatives = alternatives[:maxScenarioAlternatives]
	}
	scenarios[0].Reason = s.ai.ExplainScenario(ctx, scenarios[0], alternatives)

	s.logger.Info().
		Int("min_term", input.MinTermYears).
		Int("max_term", input.MaxTermYears).
		Int("scenarios", len(scenarios)).
		Int("recommended_term", scenarios[0].TermYears).
		Msg("Financing terms compared")

	return domain.FinancingScenarioResult{
		RecommendedTermYears: scenarios[0].TermYears,
		Scenarios:            scenarios,
	}, nil
}

func scenarioReason(a domain.DealAnalysis) string {
	switch a.Recommendation {
	case domain.RecommendationStrongBuy, domain.RecommendationBuy:
		return "Cash flow comfortably supports this term"
	case domain.RecommendationNeutral:
		return "Workable term with limited margin for error"
	}
	return "Debt load at this term strains the business"
}
