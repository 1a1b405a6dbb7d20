package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories/cache"
	"ledgerly/internal/services/ledger"
	"ledgerly/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatXLSX, false},
		{"xlsx", FormatXLSX, false},
		{"PDF", FormatPDF, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func sampleStatement() *Statement {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.WalletEntry{
		{
			ID: "e2", Amount: models.NewMoney(30, 50), Type: models.EntrySubtract,
			Description: "Groceries", CreatedAt: now,
			Tags: []models.Tag{{Title: "Food", Emoji: "🍕"}},
		},
		{
			ID: "e1", Amount: models.NewMoney(100, 0), Type: models.EntryAdd,
			Description: "Salary", CreatedAt: now.Add(-time.Hour),
		},
	}
	return NewStatement(models.Wallet{ID: "w1", Name: "Household"}, entries, now)
}

func TestNewStatementTotals(t *testing.T) {
	st := sampleStatement()
	assert.True(t, st.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, st.Expense.Equal(decimal.RequireFromString("30.50")))
	assert.Equal(t, "69.50", st.Balance().StringFixed(2))
}

func TestRenderXLSX(t *testing.T) {
	body, err := RenderXLSX(sampleStatement())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	cell := func(axis string) string {
		v, err := f.GetCellValue(sheetName, axis)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Date", cell("A1"))
	assert.Equal(t, "Tags", cell("E1"))
	assert.Equal(t, "subtract", cell("B2"))
	assert.Equal(t, "Groceries", cell("D2"))
	assert.Equal(t, "🍕 Food", cell("E2"))
	assert.Equal(t, "Salary", cell("D3"))
	assert.Equal(t, "Total income", cell("B5"))
	assert.Equal(t, "Balance", cell("B7"))
}

func TestRenderPDF(t *testing.T) {
	body, err := RenderPDF(sampleStatement())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))

	empty, err := RenderPDF(NewStatement(models.Wallet{Name: "Empty"}, nil, time.Now()))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF-")))
}

func TestExport(t *testing.T) {
	store, _ := testutil.NewStore(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, store, "alice@example.com", "Alice")
	bob := testutil.CreateUser(t, store, "bob@example.com", "Bob")
	carol := testutil.CreateUser(t, store, "carol@example.com", "Carol")
	w := testutil.CreateWallet(t, store, alice.ID, "Household")
	testutil.Grant(t, store, w.ID, bob.ID, models.RoleViewer)

	entries := ledger.NewService(store, cache.NewMemoryCache(time.Minute))
	_, err := entries.CreateEntry(ctx, w.ID, alice.ID, ledger.EntryInput{Amount: models.NewMoney(12, 0), Type: models.EntryAdd, Description: "Refund"})
	require.NoError(t, err)

	svc := NewService(store)

	doc, err := svc.Export(ctx, w.ID, bob.ID, "xlsx")
	require.NoError(t, err)
	assert.Equal(t, contentTypeXLSX, doc.ContentType)
	assert.Contains(t, doc.Filename, ".xlsx")
	assert.NotEmpty(t, doc.Body)

	doc, err = svc.Export(ctx, w.ID, alice.ID, "pdf")
	require.NoError(t, err)
	assert.Equal(t, contentTypePDF, doc.ContentType)

	_, err = svc.Export(ctx, w.ID, carol.ID, "xlsx")
	assert.ErrorIs(t, err, apperrors.ErrWalletNotFound)

	_, err = svc.Export(ctx, w.ID, alice.ID, "csv")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
