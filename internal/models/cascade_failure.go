package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CascadeWalletDelete  = "wallet.delete"
	CascadeAccountDelete = "account.delete"
)

// CascadeFailure is an audit record of a multi-table delete that did not complete.
type CascadeFailure struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Operation string    `gorm:"size:50;not null;index" json:"operation"`
	SubjectID string    `gorm:"type:varchar(36);not null;index" json:"subjectId"`
	ActorID   string    `gorm:"type:varchar(36)" json:"actorId"`
	Step      string    `gorm:"size:100" json:"step"`
	Error     string    `gorm:"type:text" json:"error"`
	Details   JSON      `gorm:"type:text" json:"details,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (f *CascadeFailure) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
