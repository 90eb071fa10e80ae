package service

import (
	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/domain"
)

type AmortizationService struct {
	logger arbor.ILogger
}

func NewAmortizationService(logger arbor.ILogger) *AmortizationService {
	return &AmortizationService{logger: logger}
}

// Schedule amortizes the bank loan and the seller note of a deal month by
// month and rolls the result up per year.
func (s *AmortizationService) Schedule(input domain.DealInput) (domain.FinancingSchedule, error) {
	deal, err := NormalizeDeal(input)
	if err != nil {
		return domain.FinancingSchedule{}, err
	}
	if err := ValidateDeal(deal); err != nil {
		return domain.FinancingSchedule{}, err
	}

	plan := PlanFinancing(deal)
	schedule := domain.FinancingSchedule{
		Financing:  plan,
		BankLoan:   s.amortize("Bank loan", plan.BankLoanAmount, deal.InterestRatePct, deal.LoanTermYears),
		SellerNote: s.amortize("Seller note", plan.SellerNoteAmount, deal.InterestRatePct, deal.LoanTermYears),
	}

	s.logger.Debug().
		Int("term_years", deal.LoanTermYears).
		Int("bank_months", schedule.BankLoan.MonthsToPayoff).
		Int("seller_months", schedule.SellerNote.MonthsToPayoff).
		Msg("Amortization schedule built")

	return schedule, nil
}

func (s *AmortizationService) amortize(name string, principal, annualRatePct float64, termYears int) domain.AmortizationSchedule {
	payment := MonthlyPayment(principal, annualRatePct, termYears)
	result := domain.AmortizationSchedule{
		Name:           name,
		Principal:      roundTo2Decimals(principal),
		MonthlyPayment: roundTo2Decimals(payment),
		Years:          []domain.AmortizationYear{},
	}
	if principal <= 0 {
		return result
	}

	monthlyRate := annualRatePct / (100 * MonthsPerYear)
	maxMonths := termYears * MonthsPerYear
	balance := principal
	totalPaid, totalInterest := 0.0, 0.0
	year := domain.AmortizationYear{Year: 1}
	month := 0

	for balance > LoanBalanceTolerance {
		month++

		interest := balance * monthlyRate
		paid := payment
		// The last installment only clears what is left.
		if paid > balance+interest || month == maxMonths {
			paid = balance + interest
		}
		principalPaid := paid - interest
		balance -= principalPaid
		if balance < 0 {
			balance = 0
		}

		year.Payment += paid
		year.Interest += interest
		year.Principal += principalPaid
		totalPaid += paid
		totalInterest += interest

		if month%MonthsPerYear == 0 || balance <= LoanBalanceTolerance {
			year.RemainingBalance = balance
			result.Years = append(result.Years, roundYear(year))
			year = domain.AmortizationYear{Year: year.Year + 1}
		}

		if month >= maxMonths {
			if balance > LoanBalanceTolerance {
				s.logger.Warn().Str("schedule", name).Int("months", month).Msg("Amortization stopped at loan term with balance left")
			}
			break
		}
	}

	result.MonthsToPayoff = month
	result.TotalPayment = roundTo2Decimals(totalPaid)
	result.TotalInterest = roundTo2Decimals(totalInterest)
	return result
}

func roundYear(y domain.AmortizationYear) domain.AmortizationYear {
	return domain.AmortizationYear{
		Year:             y.Year,
		Payment:          roundTo2Decimals(y.Payment),
		Interest:         roundTo2Decimals(y.Interest),
		Principal:        roundTo2Decimals(y.Principal),
		RemainingBalance: roundTo2Decimals(y.RemainingBalance),
	}
}
