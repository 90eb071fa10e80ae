package service

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/tony-42069/biz-acquisition/domain"
)

// NormalizeDeal parses the form strings of a deal into numbers. Currency
// fields keep only their digits, so "$2,500,000" becomes 2500000.
// Percentages stay in percentage points. Every field that cannot be parsed
// is reported in the returned *ValidationError.
func NormalizeDeal(input domain.DealInput) (domain.NormalizedDeal, error) {
	verr := &ValidationError{}

	deal := domain.NormalizedDeal{
		AskingPrice:        parseCurrency(verr, "askingPrice", input.AskingPrice),
		AnnualRevenue:      parseCurrency(verr, "annualRevenue", input.AnnualRevenue),
		EBITDA:             parseCurrency(verr, "ebitda", input.EBITDA),
		OwnerSalary:        parseCurrency(verr, "ownerSalary", input.OwnerSalary),
		RecurringRevenue:   parseCurrency(verr, "recurringRevenue", input.RecurringRevenue),
		TopCustomerRevenue: parseCurrency(verr, "topCustomerRevenue", input.TopCustomerRevenue),
		YearsInBusiness:    parseInteger(verr, "yearsInBusiness", input.YearsInBusiness),
		DownPaymentPct:     parsePercent(verr, "downPaymentPct", input.DownPaymentPct),
		SellerNotePct:      parsePercent(verr, "sellerNotePct", input.SellerNotePct),
		InterestRatePct:    parsePercent(verr, "interestRatePct", input.InterestRatePct),
		LoanTermYears:      parseInteger(verr, "loanTermYears", input.LoanTermYears),
		Industry:           domain.Industry(strings.ToLower(strings.TrimSpace(input.Industry))),
	}

	if err := verr.orNil(); err != nil {
		return domain.NormalizedDeal{}, err
	}
	return deal, nil
}

// stripNonDigits keeps only ASCII digits. Signs and decimal points go too.
func stripNonDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseCurrency(verr *ValidationError, field, raw string) float64 {
	digits := stripNonDigits(raw)
	if digits == "" {
		verr.add(field, raw, "expected a currency amount")
		return 0
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		verr.add(field, raw, "amount out of range")
		return 0
	}
	return float64(v)
}

func parsePercent(verr *ValidationError, field, raw string) float64 {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if s == "" {
		verr.add(field, raw, "expected a percentage")
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		verr.add(field, raw, "expected a percentage")
		return 0
	}
	return v
}

func parseInteger(verr *ValidationError, field, raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		verr.add(field, raw, "expected a whole number")
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		verr.add(field, raw, "expected a whole number")
		return 0
	}
	return v
}
