package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

var (
	pdfHeaders = []string{"DATE", "TYPE", "AMOUNT", "DESCRIPTION", "TAGS"}
	pdfColW    = []float64{30, 20, 26, 66, 40}
	pdfAlign   = []string{"C", "C", "R", "L", "L"}
)

// RenderPDF writes the statement as an A4 document with a totals box and an
// entry table that repeats its header on every page.
func RenderPDF(st *Statement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()
	// core fonts are cp1252; emoji and other runes outside it are dropped
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(st.Wallet.Name+" statement"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Generated: "+st.GeneratedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Entries: %d", len(st.Entries)))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)
	sumW := 182.0 / 3
	pdf.CellFormat(sumW, 10, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW, 10, "Expense", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW, 10, "Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW, 10, formatAmount(st.Income), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW, 10, formatAmount(st.Expense), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW, 10, formatAmount(st.Balance()), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	tableHeader(pdf)
	for _, e := range st.Entries {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			tableHeader(pdf)
		}
		cells := []string{
			e.CreatedAt.Format("2006-01-02 15:04"),
			string(e.Type),
			formatAmount(signedAmount(e)),
			trimTo(tr(e.Description), 45),
			trimTo(tr(tagTitles(e, false)), 28),
		}
		for i, text := range cells {
			ln := 0
			if i == len(cells)-1 {
				ln = 1
			}
			pdf.CellFormat(pdfColW[i], 7, text, "1", ln, pdfAlign[i], false, 0, "")
		}
	}

	if len(st.Entries) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "No entries", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func tableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	for i, h := range pdfHeaders {
		ln := 0
		if i == len(pdfHeaders)-1 {
			ln = 1
		}
		pdf.CellFormat(pdfColW[i], 8, h, "1", ln, "C", true, 0, "")
	}
	pdf.SetFont("Helvetica", "", 9)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func trimTo(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
