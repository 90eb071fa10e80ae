package service

import (
	"math"

	"github.com/tony-42069/biz-acquisition/domain"
)

// The qualitative scores below feed raw dollar amounts into 0-100 scales.
// Their output is kept as-is; most real deals saturate at a bound.

func clamp(value, low, high float64) float64 {
	return math.Max(low, math.Min(high, value))
}

func competitionPenalty(askingPrice float64) float64 {
	return math.Min(2*askingPrice, competitionPenaltyCap)
}

// RiskScore is 0-100, higher meaning lower risk.
func RiskScore(deal domain.NormalizedDeal) float64 {
	score := riskBaseline

	if deal.AnnualRevenue > riskRevenueThreshold {
		score -= riskRevenuePenaltyFactor * (deal.AnnualRevenue - riskRevenueThreshold)
	}
	if deal.EBITDA/deal.AskingPrice > riskHighMarginThreshold {
		score -= riskHighMarginPenalty
	}

	score += deal.Industry.Profile().RiskAdjustment
	score -= riskRecurringPenaltyRatio * deal.RecurringRevenue
	score -= competitionPenalty(deal.AskingPrice)

	return clamp(score, 0, scoreCeiling)
}

// GrowthPotential is intentionally unclamped.
func GrowthPotential(deal domain.NormalizedDeal) float64 {
	historical := deal.RecurringRevenue * historicalGrowthWeight
	industry := deal.RecurringRevenue * industryGrowthWeight
	market := deal.Industry.Profile().MarketScore * marketGrowthWeight

	return historical + industry + market
}

func MarketPositionScore(deal domain.NormalizedDeal) float64 {
	score := deal.Industry.Profile().MarketBase +
		math.Min(2*deal.RecurringRevenue, recurringStrengthCap) -
		competitionPenalty(deal.AskingPrice)

	return clamp(score, 0, scoreCeiling)
}

// CompetitiveThreat is capped at 100 with no lower bound.
func CompetitiveThreat(deal domain.NormalizedDeal) float64 {
	threat := threatPriceFactor*deal.AskingPrice +
		deal.Industry.Profile().Vulnerability +
		threatRecurringRatio*deal.RecurringRevenue

	return math.Min(threat, scoreCeiling)
}
