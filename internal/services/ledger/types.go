package ledger

import (
	"strings"
	"time"

	"ledgerly/internal/models"
	"ledgerly/internal/utils"
)

// EntryInput carries the editable fields of an entry, for both create and update.
type EntryInput struct {
	Amount      models.Money     `json:"amount" validate:"positivemoney,maxmoney"`
	Type        models.EntryType `json:"type" validate:"required,entrytype"`
	Description string           `json:"description" validate:"max=500"`
	Tags        []string         `json:"tags" validate:"max=5,unique,dive,required"`
}

func (in EntryInput) normalized() EntryInput {
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// EntryResult is an entry mutation together with the wallet it left behind.
type EntryResult struct {
	Entry         *models.WalletEntry `json:"entry"`
	UpdatedWallet *models.Wallet      `json:"updatedWallet"`
}

type EntryPage struct {
	Entries        []models.WalletEntry `json:"entries"`
	DeletedEntries []models.WalletEntry `json:"deletedEntries"`
	Pagination     utils.Pagination     `json:"pagination"`
}

// WalletChanges is the answer to a wallet poll. Wallet is nil when the
// wallet itself did not change.
type WalletChanges struct {
	Wallet     *models.WalletView   `json:"wallet"`
	Entries    []models.WalletEntry `json:"entries"`
	LastUpdate time.Time            `json:"lastUpdate"`
	HasUpdates bool                 `json:"hasUpdates"`
}
