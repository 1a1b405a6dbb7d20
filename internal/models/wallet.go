package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultWalletIcon  = "💰"
	DefaultWalletColor = "#3B82F6"
)

// Wallet is a named balance container. Balance always equals the sum of the
// contributions of its active entries and is only changed by increments.
type Wallet struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Icon            string    `gorm:"size:16;not null" json:"icon"`
	BackgroundColor string    `gorm:"size:7;not null" json:"backgroundColor"`
	Balance         Money     `gorm:"type:bigint;not null;default:0" json:"balance"`
	CreatedBy       string    `gorm:"type:varchar(36);not null;index" json:"createdBy"`
	CreatedAt       time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"index" json:"updatedAt"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	// balance only moves through entries
	w.Balance = 0
	if w.Icon == "" {
		w.Icon = DefaultWalletIcon
	}
	if w.BackgroundColor == "" {
		w.BackgroundColor = DefaultWalletColor
	}
	return nil
}

// WalletView is a wallet annotated with the caller's role on it.
type WalletView struct {
	Wallet
	UserRole Role `json:"userRole"`
}

func NewWalletView(w Wallet, role Role) WalletView {
	return WalletView{Wallet: w, UserRole: role}
}
