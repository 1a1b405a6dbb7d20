package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryType string

const (
	EntryAdd      EntryType = "add"
	EntrySubtract EntryType = "subtract"
)

const (
	MaxEntryTags         = 5
	MaxDescriptionLength = 500
	EntryTagsJoinTable   = "wallet_entry_tags"
)

// WalletEntry is one ledger line of a wallet. A soft-deleted entry keeps its
// record but no longer contributes to the wallet balance.
type WalletEntry struct {
	ID          string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	WalletID    string     `gorm:"type:varchar(36);not null;index" json:"walletId"`
	Amount      Money      `gorm:"type:bigint;not null" json:"amount"`
	Type        EntryType  `gorm:"size:10;not null" json:"type"`
	Description string     `gorm:"size:500" json:"description"`
	Tags        []Tag      `gorm:"many2many:wallet_entry_tags;" json:"tags"`
	CreatedBy   string     `gorm:"type:varchar(36)" json:"createdBy"`
	IsDeleted   bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
	DeletedBy   *string    `gorm:"type:varchar(36)" json:"deletedBy,omitempty"`
	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"index" json:"updatedAt"`
}

func (e *WalletEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// Contribution is the signed amount this entry adds to its wallet balance
// while active.
func (e *WalletEntry) Contribution() Money {
	return Contribution(e.Type, e.Amount)
}

func Contribution(t EntryType, amount Money) Money {
	if t == EntrySubtract {
		return -amount
	}
	return amount
}

func (t EntryType) Valid() bool {
	return t == EntryAdd || t == EntrySubtract
}

// TagIDs returns the ids of the populated tags.
func (e *WalletEntry) TagIDs() []string {
	ids := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}
