package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tony-42069/biz-acquisition/domain"
)

func TestScores_SampleDeal(t *testing.T) {
	deal := sampleDeal(t)

	// Raw dollar inputs push risk and threat to their bounds.
	assert.Equal(t, 0.0, RiskScore(deal))
	assert.Equal(t, 100.0, CompetitiveThreat(deal))
	// 40 (tech) + 30 (recurring cap) - 20 (competition cap)
	assert.Equal(t, 50.0, MarketPositionScore(deal))
	// 1,200,000 * 0.7 + 10 * 0.3
	assert.InDelta(t, 840003.0, GrowthPotential(deal), 1e-6)
}

func TestScores_SmallInputs(t *testing.T) {
	deal := domain.NormalizedDeal{
		AskingPrice:      5,
		AnnualRevenue:    100,
		EBITDA:           1,
		RecurringRevenue: 4,
		Industry:         domain.IndustryRetail,
	}

	// 100 + 5 (retail) - 0.5*4 - min(2*5, 20)
	assert.Equal(t, 93.0, RiskScore(deal))
	// 30 + min(8, 30) - 10
	assert.Equal(t, 28.0, MarketPositionScore(deal))
	// 5*5 + 20 + 2*4
	assert.Equal(t, 53.0, CompetitiveThreat(deal))
	// 4*0.4 + 4*0.3 + 7.5*0.3
	assert.InDelta(t, 5.05, GrowthPotential(deal), 1e-9)
}

func TestRiskScore_HighMarginPenalty(t *testing.T) {
	deal := domain.NormalizedDeal{AskingPrice: 1, AnnualRevenue: 10, EBITDA: 1, Industry: domain.IndustryOther}

	// 100 - 10 (ebitda/price > 0.3) - 2 (competition)
	assert.Equal(t, 88.0, RiskScore(deal))
}

func TestScores_Bounds(t *testing.T) {
	prices := []float64{0, 1, 5, 10, 1e3, 1e6, 1e9}
	recurring := []float64{0, 1, 10, 1e4, 1e7}

	for _, industry := range domain.Industries {
		for _, price := range prices {
			for _, rec := range recurring {
				deal := domain.NormalizedDeal{
					AskingPrice:      price,
					AnnualRevenue:    3e6,
					EBITDA:           4e5,
					RecurringRevenue: rec,
					Industry:         industry,
				}
				if price == 0 {
					deal.AskingPrice = 1
				}

				assert.GreaterOrEqual(t, RiskScore(deal), 0.0)
				assert.LessOrEqual(t, RiskScore(deal), 100.0)
				assert.GreaterOrEqual(t, MarketPositionScore(deal), 0.0)
				assert.LessOrEqual(t, MarketPositionScore(deal), 100.0)
				assert.LessOrEqual(t, CompetitiveThreat(deal), 100.0)
			}
		}
	}
}

func TestIndustryProfiles_UnlistedIndustriesScoreZero(t *testing.T) {
	for _, industry := range []domain.Industry{domain.IndustryServices, domain.IndustryFood, domain.IndustryOther} {
		assert.Equal(t, domain.IndustryProfile{}, industry.Profile(), industry)
	}
}
