package report

import (
	"fmt"
	"strings"

	"github.com/tony-42069/biz-acquisition/domain"
)

// Markdown renders an evaluation as a Markdown document.
func Markdown(e domain.DealEvaluation) string {
	m, a := e.Metrics, e.Analysis
	var b strings.Builder

	b.WriteString("# Acquisition Analysis\n\n")
	fmt.Fprintf(&b, "**Recommendation:** %s (score %.0f/100)\n\n", a.Recommendation, a.Score)
	if e.Summary != "" {
		b.WriteString(e.Summary + "\n\n")
	}

	b.WriteString("## Valuation\n\n")
	writeTable(&b, [][2]string{
		{"Asking price", Currency(m.AskingPrice)},
		{"EBITDA multiple", Ratio(m.EBITDAMultiple)},
		{"Revenue multiple", Ratio(m.RevenueMultiple)},
		{"Price to earnings", Ratio(m.PriceToEarnings)},
	})

	b.WriteString("## Financing\n\n")
	writeTable(&b, [][2]string{
		{"Down payment", Currency(m.Financing.DownPayment)},
		{"Seller note", Currency(m.Financing.SellerNoteAmount)},
		{"Bank loan", Currency(m.Financing.BankLoanAmount)},
		{"Annual debt service", Currency(m.Financing.AnnualDebtService)},
	})

	b.WriteString("## Financial Health\n\n")
	writeTable(&b, [][2]string{
		{"Debt service coverage", Ratio(m.DebtServiceCoverageRatio)},
		{"Return on investment", Percent(m.ReturnOnInvestment)},
		{"Payback period", Years(m.PaybackPeriod)},
		{"Net present value", Currency(m.NetPresentValue)},
		{"Internal rate of return (approx.)", Percent(m.InternalRateOfReturn)},
	})

	b.WriteString("## Projected Cash Flows\n\n")
	b.WriteString("| Year | Cash flow |\n|---|---|\n")
	for year, flow := range m.ProjectedCashFlows {
		fmt.Fprintf(&b, "| %d | %s |\n", year, Currency(flow))
	}
	b.WriteString("\n")

	b.WriteString("## Scores\n\n")
	writeTable(&b, [][2]string{
		{"Risk", fmt.Sprintf("%.0f", m.RiskScore)},
		{"Growth potential", fmt.Sprintf("%.0f", m.GrowthPotential)},
		{"Market position", fmt.Sprintf("%.0f", m.MarketPositionScore)},
		{"Competitive threat", fmt.Sprintf("%.0f", m.CompetitiveThreat)},
	})

	writeList(&b, "Strengths", a.Strengths)
	writeList(&b, "Weaknesses", a.Weaknesses)
	writeList(&b, "Opportunities", a.Opportunities)
	writeList(&b, "Threats", a.Threats)

	return b.String()
}

func writeTable(b *strings.Builder, rows [][2]string) {
	b.WriteString("| Metric | Value |\n|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(b, "| %s | %s |\n", row[0], row[1])
	}
	b.WriteString("\n")
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(items) == 0 {
		b.WriteString("- None identified\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
