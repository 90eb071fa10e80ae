package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/tony-42069/biz-acquisition/domain"
)

const (
	pdfFont       = "Arial"
	pdfLineHeight = 6.0
	pdfLabelWidth = 80.0
)

// PDF renders the evaluation as a one-document A4 report.
func PDF(e domain.DealEvaluation) ([]byte, error) {
	m, a := e.Metrics, e.Analysis

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle("Acquisition Analysis", false)
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.Cell(0, 10, "Acquisition Analysis")
	pdf.Ln(12)

	pdf.SetFont(pdfFont, "B", 12)
	pdf.Cell(0, pdfLineHeight, fmt.Sprintf("Recommendation: %s (score %.0f/100)", a.Recommendation, a.Score))
	pdf.Ln(pdfLineHeight + 2)

	if e.Summary != "" {
		pdf.SetFont(pdfFont, "", 10)
		pdf.MultiCell(0, 5, e.Summary, "", "L", false)
		pdf.Ln(2)
	}

	pdfSection(pdf, "Valuation", [][2]string{
		{"Asking price", Currency(m.AskingPrice)},
		{"EBITDA multiple", Ratio(m.EBITDAMultiple)},
		{"Revenue multiple", Ratio(m.RevenueMultiple)},
		{"Price to earnings", Ratio(m.PriceToEarnings)},
	})
	pdfSection(pdf, "Financing", [][2]string{
		{"Down payment", Currency(m.Financing.DownPayment)},
		{"Seller note", Currency(m.Financing.SellerNoteAmount)},
		{"Bank loan", Currency(m.Financing.BankLoanAmount)},
		{"Annual debt service", Currency(m.Financing.AnnualDebtService)},
		{"Debt service coverage", Ratio(m.DebtServiceCoverageRatio)},
	})

	flows := make([][2]string, 0, len(m.ProjectedCashFlows)+2)
	for year, flow := range m.ProjectedCashFlows {
		flows = append(flows, [2]string{fmt.Sprintf("Year %d", year), Currency(flow)})
	}
	flows = append(flows,
		[2]string{"Net present value", Currency(m.NetPresentValue)},
		[2]string{"Internal rate of return (approx.)", Percent(m.InternalRateOfReturn)},
	)
	pdfSection(pdf, "Cash Flow", flows)

	pdfList(pdf, "Strengths", a.Strengths)
	pdfList(pdf, "Weaknesses", a.Weaknesses)
	pdfList(pdf, "Opportunities", a.Opportunities)
	pdfList(pdf, "Threats", a.Threats)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf report: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont(pdfFont, "B", 12)
	pdf.Cell(0, pdfLineHeight+1, title)
	pdf.Ln(pdfLineHeight + 2)
}

func pdfSection(pdf *fpdf.Fpdf, title string, rows [][2]string) {
	pdfHeading(pdf, title)
	pdf.SetFont(pdfFont, "", 10)
	for _, row := range rows {
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, pdfLineHeight, row[1], "", 1, "L", false, 0, "")
	}
}

func pdfList(pdf *fpdf.Fpdf, title string, items []string) {
	pdfHeading(pdf, title)
	pdf.SetFont(pdfFont, "", 10)
	if len(items) == 0 {
		items = []string{"None identified"}
	}
	for _, item := range items {
		pdf.MultiCell(0, 5, "- "+item, "", "L", false)
	}
}
