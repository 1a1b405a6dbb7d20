package wallet

import (
	"strings"
	"time"

	"ledgerly/internal/models"
)

type CreateWalletInput struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	Icon            string `json:"icon" validate:"omitempty,max=4"`
	BackgroundColor string `json:"backgroundColor" validate:"omitempty,hexcolor36"`
}

func (in CreateWalletInput) normalized() CreateWalletInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Icon = strings.TrimSpace(in.Icon)
	in.BackgroundColor = strings.TrimSpace(in.BackgroundColor)
	return in
}

// UpdateWalletInput changes only the fields that are set.
type UpdateWalletInput struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=100"`
	Icon            *string `json:"icon" validate:"omitempty,min=1,max=4"`
	BackgroundColor *string `json:"backgroundColor" validate:"omitempty,hexcolor36"`
}

func (in UpdateWalletInput) normalized() UpdateWalletInput {
	for _, p := range []**string{&in.Name, &in.Icon, &in.BackgroundColor} {
		if *p != nil {
			v := strings.TrimSpace(**p)
			*p = &v
		}
	}
	return in
}

// WalletUpdates is the answer to a poll over all of a user's wallets.
type WalletUpdates struct {
	Wallets    []models.WalletView `json:"wallets"`
	LastUpdate time.Time           `json:"lastUpdate"`
	HasUpdates bool                `json:"hasUpdates"`
}
