package service

import "github.com/tony-42069/biz-acquisition/domain"

// ComputeDeal runs the whole pipeline for one submission: normalize,
// validate, compute metrics, evaluate. Identical input gives identical
// output.
func ComputeDeal(input domain.DealInput) (domain.MetricsResult, domain.DealAnalysis, error) {
	deal, err := NormalizeDeal(input)
	if err != nil {
		return domain.MetricsResult{}, domain.DealAnalysis{}, err
	}

	metrics, analysis, err := ComputeNormalized(deal)
	if err != nil {
		return domain.MetricsResult{}, domain.DealAnalysis{}, err
	}
	return metrics, analysis, nil
}

// ComputeNormalized is ComputeDeal for a deal that is already numeric.
func ComputeNormalized(deal domain.NormalizedDeal) (domain.MetricsResult, domain.DealAnalysis, error) {
	if err := ValidateDeal(deal); err != nil {
		return domain.MetricsResult{}, domain.DealAnalysis{}, err
	}

	metrics := ComputeMetrics(deal)
	return metrics, EvaluateDeal(metrics), nil
}
