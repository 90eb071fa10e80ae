package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tony-42069/biz-acquisition/domain"
)

func TestNormalizeDeal_ParsesFormStrings(t *testing.T) {
	deal, err := NormalizeDeal(sampleDealInput())
	require.NoError(t, err)

	assert.Equal(t, 2500000.0, deal.AskingPrice)
	assert.Equal(t, 3000000.0, deal.AnnualRevenue)
	assert.Equal(t, 450000.0, deal.EBITDA)
	assert.Equal(t, 100000.0, deal.OwnerSalary)
	assert.Equal(t, 1200000.0, deal.RecurringRevenue)
	assert.Equal(t, 300000.0, deal.TopCustomerRevenue)
	assert.Equal(t, 12, deal.YearsInBusiness)
	assert.Equal(t, 5.0, deal.DownPaymentPct)
	assert.Equal(t, 5.0, deal.SellerNotePct)
	assert.Equal(t, 10.5, deal.InterestRatePct)
	assert.Equal(t, 10, deal.LoanTermYears)
	assert.Equal(t, domain.IndustryTech, deal.Industry)
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"$2,500,000", 2500000},
		{"2500000", 2500000},
		{"  $ 450 000 ", 450000},
		{"USD 1,000", 1000},
		// Decimal points and signs are stripped like any other symbol.
		{"$1,000.50", 100050},
		{"-5,000", 5000},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			verr := &ValidationError{}
			got := parseCurrency(verr, "amount", tt.raw)
			assert.NoError(t, verr.orNil())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"10.5", 10.5, false},
		{"10.5%", 10.5, false},
		{" 20 % ", 20, false},
		{"0", 0, false},
		{"", 0, true},
		{"ten", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			verr := &ValidationError{}
			got := parsePercent(verr, "pct", tt.raw)
			if tt.wantErr {
				assert.Error(t, verr.orNil())
				return
			}
			assert.NoError(t, verr.orNil())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDeal_ReportsEveryBadField(t *testing.T) {
	input := sampleDealInput()
	input.AskingPrice = "n/a"
	input.YearsInBusiness = "twelve"
	input.InterestRatePct = ""

	_, err := NormalizeDeal(input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 3)
	assert.Equal(t, "askingPrice", verr.Fields[0].Field)
	assert.Equal(t, "yearsInBusiness", verr.Fields[1].Field)
	assert.Equal(t, "interestRatePct", verr.Fields[2].Field)
}

func TestNormalizeDeal_IndustryCase(t *testing.T) {
	input := sampleDealInput()
	input.Industry = "  Services "

	deal, err := NormalizeDeal(input)
	require.NoError(t, err)
	assert.Equal(t, domain.IndustryServices, deal.Industry)
}
