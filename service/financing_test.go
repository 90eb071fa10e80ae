package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		term      int
		want      float64
	}{
		{"bank loan of sample deal", 2250000, 10.5, 10, 30360.37},
		{"seller note of sample deal", 125000, 10.5, 10, 1686.69},
		{"six percent over ten years", 1000000, 6, 10, 11102.05},
		{"zero rate is straight line", 120000, 0, 10, 1000},
		{"zero principal", 0, 10.5, 10, 0},
		{"zero term", 100000, 10.5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(tt.principal, tt.rate, tt.term)
			assert.Equal(t, tt.want, roundTo2Decimals(got))
		})
	}
}

func TestAnnualDebtService(t *testing.T) {
	assert.InDelta(t, 12*MonthlyPayment(2250000, 10.5, 10), AnnualDebtService(2250000, 10.5, 10), 1e-9)
}

func TestPlanFinancing(t *testing.T) {
	plan := PlanFinancing(sampleDeal(t))

	assert.Equal(t, 125000.0, plan.DownPayment)
	assert.Equal(t, 125000.0, plan.SellerNoteAmount)
	assert.Equal(t, 2250000.0, plan.BankLoanAmount)
	assert.InDelta(t, 364324.49, plan.BankDebtService, 0.01)
	assert.InDelta(t, 20240.25, plan.SellerNoteDebtService, 0.01)
	assert.InDelta(t, 384564.74, plan.AnnualDebtService, 0.01)
	assert.Equal(t, 2500000.0, plan.DownPayment+plan.SellerNoteAmount+plan.BankLoanAmount)
}
