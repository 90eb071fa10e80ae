package domain

import "time"

// DealInput is the deal as the form submits it: every field is a
// display-formatted string ("$2,500,000", "10.5", "tech").
type DealInput struct {
	AskingPrice        string `json:"askingPrice"`
	AnnualRevenue      string `json:"annualRevenue"`
	EBITDA             string `json:"ebitda"`
	OwnerSalary        string `json:"ownerSalary"`
	RecurringRevenue   string `json:"recurringRevenue"`
	TopCustomerRevenue string `json:"topCustomerRevenue"`
	YearsInBusiness    string `json:"yearsInBusiness"`
	DownPaymentPct     string `json:"downPaymentPct"`
	SellerNotePct      string `json:"sellerNotePct"`
	InterestRatePct    string `json:"interestRatePct"`
	LoanTermYears      string `json:"loanTermYears"`
	Industry           string `json:"industry"`
}

// NormalizedDeal holds the parsed numeric form of a DealInput.
// Percentages stay in percentage points (10.5 means 10.5%).
type NormalizedDeal struct {
	AskingPrice        float64  `json:"askingPrice" validate:"gt=0"`
	AnnualRevenue      float64  `json:"annualRevenue" validate:"gt=0"`
	EBITDA             float64  `json:"ebitda" validate:"ne=0"`
	OwnerSalary        float64  `json:"ownerSalary" validate:"gte=0"`
	RecurringRevenue   float64  `json:"recurringRevenue" validate:"gte=0"`
	TopCustomerRevenue float64  `json:"topCustomerRevenue" validate:"gte=0"`
	YearsInBusiness    int      `json:"yearsInBusiness" validate:"gte=0"`
	DownPaymentPct     float64  `json:"downPaymentPct" validate:"gte=0,lte=100"`
	SellerNotePct      float64  `json:"sellerNotePct" validate:"gte=0,lte=100"`
	InterestRatePct    float64  `json:"interestRatePct" validate:"gte=0,lte=100"`
	LoanTermYears      int      `json:"loanTermYears" validate:"gte=1,lte=50"`
	Industry           Industry `json:"industry" validate:"required,industry"`
}

// FinancingPlan splits the asking price into equity, seller note and bank
// debt. Debt service figures are annual.
type FinancingPlan struct {
	DownPayment           float64 `json:"downPayment"`
	SellerNoteAmount      float64 `json:"sellerNoteAmount"`
	BankLoanAmount        float64 `json:"bankLoanAmount"`
	BankDebtService       float64 `json:"bankDebtService"`
	SellerNoteDebtService float64 `json:"sellerNoteDebtService"`
	AnnualDebtService     float64 `json:"annualDebtService"`
}

type MetricsResult struct {
	// Valuation
	EBITDAMultiple  float64 `json:"ebitdaMultiple"`
	RevenueMultiple float64 `json:"revenueMultiple"`
	PriceToEarnings float64 `json:"priceToEarnings"`

	// Financial health
	DebtServiceCoverageRatio float64 `json:"debtServiceCoverageRatio"`
	ReturnOnInvestment       float64 `json:"returnOnInvestment"`
	PaybackPeriod            float64 `json:"paybackPeriod"`
	WorkingCapitalRatio      float64 `json:"workingCapitalRatio"` // always 0

	// Qualitative scores
	RiskScore           float64 `json:"riskScore"`
	GrowthPotential     float64 `json:"growthPotential"`
	MarketPositionScore float64 `json:"marketPositionScore"`
	CompetitiveThreat   float64 `json:"competitiveThreat"`

	// Cash flow, year 0 through year 5
	ProjectedCashFlows   []float64 `json:"projectedCashFlows"`
	NetPresentValue      float64   `json:"netPresentValue"`
	InternalRateOfReturn float64   `json:"internalRateOfReturn"`

	Financing FinancingPlan `json:"financing"`

	AskingPrice        float64  `json:"askingPrice"`
	TotalRevenue       float64  `json:"totalRevenue"`
	EBITDA             float64  `json:"ebitda"`
	RecurringRevenue   float64  `json:"recurringRevenue"`
	TopCustomerRevenue float64  `json:"topCustomerRevenue"`
	YearsInBusiness    int      `json:"yearsInBusiness"`
	Industry           Industry `json:"industry"`
}

// DealAnalysis is the qualitative read of a MetricsResult.
type DealAnalysis struct {
	Recommendation Recommendation `json:"recommendation"`
	Color          string         `json:"color"`
	Score          float64        `json:"score"`
	Strengths      []string       `json:"strengths"`
	Weaknesses     []string       `json:"weaknesses"`
	Opportunities  []string       `json:"opportunities"`
	Threats        []string       `json:"threats"`
}

// DealEvaluation is what the service returns for one submission.
type DealEvaluation struct {
	ID          string        `json:"id"`
	EvaluatedAt time.Time     `json:"evaluatedAt"`
	Deal        DealInput     `json:"deal"`
	Metrics     MetricsResult `json:"metrics"`
	Analysis    DealAnalysis  `json:"analysis"`
	Summary     string        `json:"summary,omitempty"`
}
