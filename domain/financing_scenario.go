package domain

type FinancingScenarioInput struct {
	Deal         DealInput `json:"deal"`
	MinTermYears int       `json:"minTermYears"`
	MaxTermYears int       `json:"maxTermYears"`
	MinDSCR      float64   `json:"minDscr"` // 0 disables the filter
}

type FinancingScenario struct {
	TermYears                int            `json:"termYears"`
	AnnualDebtService        float64        `json:"annualDebtService"`
	DebtServiceCoverageRatio float64        `json:"debtServiceCoverageRatio"`
	NetPresentValue          float64        `json:"netPresentValue"`
	InternalRateOfReturn     float64        `json:"internalRateOfReturn"`
	Score                    float64        `json:"score"`
	Recommendation           Recommendation `json:"recommendation"`
	Reason                   string         `json:"reason"`
}

type FinancingScenarioResult struct {
	RecommendedTermYears int                 `json:"recommendedTermYears"`
	Scenarios            []FinancingScenario `json:"scenarios"`
}
