package service

import (
	"fmt"

	"github.com/tony-42069/biz-acquisition/domain"
)

// Fixed findings appended to every analysis.
var standingWeaknesses = []string{
	"Technology systems could be modernized",
	"Marketing strategy needs enhancement",
}

var (
	servicesOpportunities = []string{
		"Expand service offerings to existing clients",
		"Introduce maintenance contracts to add recurring revenue",
	}
	servicesThreats = []string{
		"Low barriers to entry invite new competitors",
		"Dependence on key staff for service delivery",
	}
)

// EvaluateDeal turns metrics into SWOT findings, a composite score and a
// recommendation tier.
func EvaluateDeal(m domain.MetricsResult) domain.DealAnalysis {
	a := domain.DealAnalysis{
		Strengths:     []string{},
		Weaknesses:    []string{},
		Opportunities: []string{},
		Threats:       []string{},
	}

	switch {
	case m.EBITDAMultiple <= lowMultipleThreshold:
		a.Strengths = append(a.Strengths,
			fmt.Sprintf("Attractive valuation at %.2fx EBITDA", m.EBITDAMultiple))
	case m.EBITDAMultiple >= highMultipleThreshold:
		a.Weaknesses = append(a.Weaknesses,
			fmt.Sprintf("High valuation at %.2fx EBITDA", m.EBITDAMultiple))
	}

	a.Weaknesses = append(a.Weaknesses, standingWeaknesses...)

	coverage, debtFree := effectiveCoverage(m)
	switch {
	case debtFree:
		a.Strengths = append(a.Strengths, "No acquisition debt to service")
	case coverage >= healthyDSCRThreshold:
		a.Strengths = append(a.Strengths,
			fmt.Sprintf("Strong debt service coverage ratio of %.2fx", coverage))
	case coverage < minimumDSCRThreshold:
		a.Weaknesses = append(a.Weaknesses,
			fmt.Sprintf("Weak debt service coverage ratio of %.2fx", coverage))
	}

	// 100*x/y keeps exact percentages exact: 30, not 30.000000000000004.
	recurringPct := 100 * m.RecurringRevenue / m.TotalRevenue
	if recurringPct >= recurringPctThreshold {
		a.Strengths = append(a.Strengths,
			fmt.Sprintf("Strong recurring revenue base (%.1f%% of revenue)", recurringPct))
	} else {
		a.Weaknesses = append(a.Weaknesses,
			fmt.Sprintf("Limited recurring revenue (%.1f%% of revenue)", recurringPct))
		a.Opportunities = append(a.Opportunities,
			"Grow recurring revenue through subscriptions or service agreements")
	}

	concentrationPct := 100 * m.TopCustomerRevenue / m.TotalRevenue
	if concentrationPct > concentrationThreshold {
		a.Threats = append(a.Threats,
			fmt.Sprintf("Top customer accounts for %.1f%% of revenue", concentrationPct))
		a.Weaknesses = append(a.Weaknesses, "High customer concentration")
	} else {
		a.Strengths = append(a.Strengths, "Well-diversified customer base")
	}

	if m.YearsInBusiness >= establishedYears {
		a.Strengths = append(a.Strengths,
			fmt.Sprintf("Established business with %d years of operating history", m.YearsInBusiness))
	} else {
		a.Weaknesses = append(a.Weaknesses,
			fmt.Sprintf("Limited operating history (%d years)", m.YearsInBusiness))
		a.Opportunities = append(a.Opportunities,
			"Build brand recognition and a longer customer track record")
	}

	if m.Industry == domain.IndustryServices {
		a.Opportunities = append(a.Opportunities, servicesOpportunities...)
		a.Threats = append(a.Threats, servicesThreats...)
	}

	a.Score = CompositeScore(m, len(a.Strengths), len(a.Weaknesses))
	a.Recommendation = RecommendationFor(a.Score)
	a.Color = a.Recommendation.Color()

	return a
}

// effectiveCoverage reports the DSCR used for judgement. Without debt
// service there is nothing to cover and the deal lands in the top band.
func effectiveCoverage(m domain.MetricsResult) (float64, bool) {
	if m.Financing.AnnualDebtService <= 0 {
		return 0, true
	}
	return m.DebtServiceCoverageRatio, false
}

// CompositeScore starts at a neutral 70 and moves with coverage, valuation
// and the number of findings. The result is clamped to 0-100.
func CompositeScore(m domain.MetricsResult, strengths, weaknesses int) float64 {
	score := baselineScore

	coverage, debtFree := effectiveCoverage(m)
	switch {
	case debtFree || coverage >= strongDSCRThreshold:
		score += strongDSCRBonus
	case coverage >= healthyDSCRThreshold:
		score += healthyDSCRBonus
	case coverage < minimumDSCRThreshold:
		score -= weakDSCRPenalty
	}

	switch {
	case m.EBITDAMultiple <= lowMultipleThreshold:
		score += lowMultipleBonus
	case m.EBITDAMultiple >= highMultipleThreshold:
		score -= highMultiplePenalty
	}

	score += findingWeight * float64(strengths)
	score -= findingWeight * float64(weaknesses)

	return clamp(score, 0, scoreCeiling)
}

func RecommendationFor(score float64) domain.Recommendation {
	switch {
	case score >= strongBuyScore:
		return domain.RecommendationStrongBuy
	case score >= buyScore:
		return domain.RecommendationBuy
	case score >= neutralScore:
		return domain.RecommendationNeutral
	case score >= cautionScore:
		return domain.RecommendationCaution
	}
	return domain.RecommendationPass
}
