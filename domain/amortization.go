package domain

type AmortizationYear struct {
	Year             int     `json:"year"`
	Payment          float64 `json:"payment"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// AmortizationSchedule is the yearly roll-up of a monthly amortization.
type AmortizationSchedule struct {
	Name           string             `json:"name"`
	Principal      float64            `json:"principal"`
	MonthlyPayment float64            `json:"monthlyPayment"`
	TotalPayment   float64            `json:"totalPayment"`
	TotalInterest  float64            `json:"totalInterest"`
	MonthsToPayoff int                `json:"monthsToPayoff"`
	Years          []AmortizationYear `json:"years"`
}

type FinancingSchedule struct {
	Financing  FinancingPlan        `json:"financing"`
	BankLoan   AmortizationSchedule `json:"bankLoan"`
	SellerNote AmortizationSchedule `json:"sellerNote"`
}
