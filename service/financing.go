package service

import (
	"math"

	"github.com/tony-42069/biz-acquisition/domain"
)

// roundTo2Decimals rounds a float64 to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthlyPayment returns the fixed monthly installment that amortizes
// principal over termYears at annualRatePct. A zero rate amortizes
// straight-line.
func MonthlyPayment(principal, annualRatePct float64, termYears int) float64 {
	if principal == 0 || termYears <= 0 {
		return 0
	}

	n := float64(termYears * MonthsPerYear)
	if annualRatePct == 0 {
		return principal / n
	}

	monthlyRate := annualRatePct / (100 * MonthsPerYear)
	growth := math.Pow(1+monthlyRate, n)

	return principal * monthlyRate * growth / (growth - 1)
}

// AnnualDebtService is twelve monthly installments.
func AnnualDebtService(principal, annualRatePct float64, termYears int) float64 {
	return MonthlyPayment(principal, annualRatePct, termYears) * MonthsPerYear
}

// PlanFinancing splits the asking price into down payment, seller note and
// bank loan. Both notes are amortized at the deal rate and term.
func PlanFinancing(deal domain.NormalizedDeal) domain.FinancingPlan {
	downPayment := deal.AskingPrice * deal.DownPaymentPct / 100
	sellerNote := deal.AskingPrice * deal.SellerNotePct / 100
	bankLoan := deal.AskingPrice - downPayment - sellerNote

	bankService := AnnualDebtService(bankLoan, deal.InterestRatePct, deal.LoanTermYears)
	sellerService := AnnualDebtService(sellerNote, deal.InterestRatePct, deal.LoanTermYears)

	return domain.FinancingPlan{
		DownPayment:           downPayment,
		SellerNoteAmount:      sellerNote,
		BankLoanAmount:        bankLoan,
		BankDebtService:       bankService,
		SellerNoteDebtService: sellerService,
		AnnualDebtService:     bankService + sellerService,
	}
}
