package service

import "github.com/tony-42069/biz-acquisition/domain"

// ComputeMetrics derives every figure of the metrics result from a
// validated deal. It has no side effects.
func ComputeMetrics(deal domain.NormalizedDeal) domain.MetricsResult {
	financing := PlanFinancing(deal)

	dscr := 0.0
	if financing.AnnualDebtService > 0 {
		dscr = deal.EBITDA / financing.AnnualDebtService
	}

	flows := ProjectCashFlows(financing.DownPayment, deal.EBITDA, financing.AnnualDebtService, deal.OwnerSalary)

	return domain.MetricsResult{
		EBITDAMultiple:  deal.AskingPrice / deal.EBITDA,
		RevenueMultiple: deal.AskingPrice / deal.AnnualRevenue,
		PriceToEarnings: deal.AskingPrice / (deal.EBITDA * (1 - EffectiveTaxRate)),

		DebtServiceCoverageRatio: dscr,
		ReturnOnInvestment:       deal.EBITDA / deal.AskingPrice * 100,
		PaybackPeriod:            deal.AskingPrice / deal.EBITDA,
		WorkingCapitalRatio:      0,

		RiskScore:           RiskScore(deal),
		GrowthPotential:     GrowthPotential(deal),
		MarketPositionScore: MarketPositionScore(deal),
		CompetitiveThreat:   CompetitiveThreat(deal),

		ProjectedCashFlows:   flows,
		NetPresentValue:      NetPresentValue(flows, DiscountRate),
		InternalRateOfReturn: ApproximateIRR(flows),

		Financing: financing,

		AskingPrice:        deal.AskingPrice,
		TotalRevenue:       deal.AnnualRevenue,
		EBITDA:             deal.EBITDA,
		RecurringRevenue:   deal.RecurringRevenue,
		TopCustomerRevenue: deal.TopCustomerRevenue,
		YearsInBusiness:    deal.YearsInBusiness,
		Industry:           deal.Industry,
	}
}
