package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WalletAccess grants a non-owner a role on a wallet. At most one per (wallet, user).
type WalletAccess struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	WalletID  string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_wallet_access_pair" json:"walletId"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_wallet_access_pair;index" json:"userId"`
	Role      Role      `gorm:"size:10;not null" json:"role"`
	GrantedBy string    `gorm:"type:varchar(36);not null" json:"grantedBy"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *WalletAccess) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AccessGrantView is a grant joined with the grantee's display fields.
type AccessGrantView struct {
	WalletAccess
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}
