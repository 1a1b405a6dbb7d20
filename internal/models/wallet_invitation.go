package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// InvitationAction is the invitee's answer to a pending invitation.
type InvitationAction string

const (
	ActionAccept  InvitationAction = "accept"
	ActionDecline InvitationAction = "decline"
)

// WalletInvitation offers a role on a wallet to another user. Wallet and user
// display fields are snapshotted at creation so listings need no joins.
// The partial unique index keeps one pending invitation per (wallet, invitee).
type WalletInvitation struct {
	ID                 string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	WalletID           string           `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_pending_invitation,where:status = 'pending'" json:"walletId"`
	WalletName         string           `gorm:"size:100" json:"walletName"`
	WalletIcon         string           `gorm:"size:16" json:"walletIcon"`
	InvitedUserID      string           `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_pending_invitation,where:status = 'pending'" json:"invitedUserId"`
	InvitedUserEmail   string           `gorm:"size:255" json:"invitedUserEmail"`
	InvitedUserName    string           `gorm:"size:100" json:"invitedUserName"`
	InvitedByUserID    string           `gorm:"type:varchar(36);not null;index" json:"invitedByUserId"`
	InvitedByUserName  string           `gorm:"size:100" json:"invitedByUserName"`
	InvitedByUserEmail string           `gorm:"size:255" json:"invitedByUserEmail"`
	Role               Role             `gorm:"size:10;not null" json:"role"`
	Status             InvitationStatus `gorm:"size:10;not null;default:pending;index" json:"status"`
	RespondedAt        *time.Time       `json:"respondedAt,omitempty"`
	CreatedAt          time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func (i *WalletInvitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Status == "" {
		i.Status = InvitationPending
	}
	return nil
}

func (s InvitationStatus) Valid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationDeclined:
		return true
	}
	return false
}

// ResultingStatus maps an action onto the terminal status it produces.
func (a InvitationAction) ResultingStatus() (InvitationStatus, bool) {
	switch a {
	case ActionAccept:
		return InvitationAccepted, true
	case ActionDecline:
		return InvitationDeclined, true
	}
	return "", false
}
