package export

import (
	"strings"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"

	"github.com/shopspring/decimal"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ParseFormat accepts xlsx or pdf in any case; an empty value means xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", apperrors.Validation("format must be one of: xlsx, pdf")
}

// Statement is the data rendered into an export.
type Statement struct {
	Wallet      models.Wallet
	Entries     []models.WalletEntry
	Income      decimal.Decimal
	Expense     decimal.Decimal
	GeneratedAt time.Time
}

// NewStatement totals the active entries of a wallet.
func NewStatement(w models.Wallet, entries []models.WalletEntry, now time.Time) *Statement {
	st := &Statement{
		Wallet:      w,
		Entries:     entries,
		Income:      decimal.Zero,
		Expense:     decimal.Zero,
		GeneratedAt: now,
	}
	for _, e := range entries {
		if e.Type == models.EntrySubtract {
			st.Expense = st.Expense.Add(e.Amount.Decimal())
		} else {
			st.Income = st.Income.Add(e.Amount.Decimal())
		}
	}
	return st
}

func (s *Statement) Balance() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}

// Document is a rendered export ready to be sent.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

func tagTitles(e models.WalletEntry, withEmoji bool) string {
	parts := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		if withEmoji && t.Emoji != "" {
			parts = append(parts, t.Emoji+" "+t.Title)
			continue
		}
		parts = append(parts, t.Title)
	}
	return strings.Join(parts, ", ")
}

func signedAmount(e models.WalletEntry) decimal.Decimal {
	return e.Contribution().Decimal()
}
