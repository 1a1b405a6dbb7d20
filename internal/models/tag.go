package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a global entry label.
type Tag struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title     string    `gorm:"size:50;uniqueIndex;not null" json:"title"`
	Emoji     string    `gorm:"size:16;not null" json:"emoji"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// PredefinedTags is the catalogue installed by the seed command.
var PredefinedTags = []Tag{
	{Title: "No idea", Emoji: "🤷"},
	{Title: "Food", Emoji: "🍕"},
	{Title: "Transport", Emoji: "🚗"},
	{Title: "Entertainment", Emoji: "🎬"},
	{Title: "Shopping", Emoji: "🛍️"},
	{Title: "Health", Emoji: "🏥"},
	{Title: "Education", Emoji: "📚"},
	{Title: "Bills", Emoji: "📄"},
	{Title: "Salary", Emoji: "💰"},
	{Title: "Investment", Emoji: "📈"},
	{Title: "Gift", Emoji: "🎁"},
	{Title: "Travel", Emoji: "✈️"},
	{Title: "Home", Emoji: "🏠"},
	{Title: "Sports", Emoji: "⚽"},
	{Title: "Technology", Emoji: "💻"},
}
