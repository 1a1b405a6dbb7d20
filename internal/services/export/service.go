// Package export renders wallet statements as spreadsheets or PDFs.
package export

import (
	"context"
	"fmt"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logging"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"
	"ledgerly/internal/services/access"
)

type Service interface {
	// Export renders the active entries of a wallet the caller can view.
	Export(ctx context.Context, walletID, userID, format string) (*Document, error)
}

type service struct {
	store    *repositories.Store
	resolver *access.Resolver
}

func NewService(store *repositories.Store) Service {
	return &service{
		store:    store,
		resolver: access.ForStore(store),
	}
}

func (s *service) Export(ctx context.Context, walletID, userID, format string) (*Document, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	res, err := s.resolver.Authorize(ctx, walletID, userID, models.OpExportWallet)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.Entries.ListAllActive(ctx, walletID)
	if err != nil {
		return nil, apperrors.Store("list entries", err)
	}

	now := time.Now()
	st := NewStatement(*res.Wallet, entries, now)

	doc := &Document{Filename: filename(res.Wallet, now, f)}
	switch f {
	case FormatPDF:
		doc.ContentType = contentTypePDF
		doc.Body, err = RenderPDF(st)
	default:
		doc.ContentType = contentTypeXLSX
		doc.Body, err = RenderXLSX(st)
	}
	if err != nil {
		return nil, apperrors.Store("render statement", err)
	}

	logging.Default.Debug("Exported wallet %s as %s (%d entries)", walletID, f, len(entries))
	return doc, nil
}

func filename(w *models.Wallet, now time.Time, f Format) string {
	id := w.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("wallet-%s-statement-%s.%s", id, now.Format("20060102"), f)
}
