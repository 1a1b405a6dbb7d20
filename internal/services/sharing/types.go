package sharing

import "ledgerly/internal/models"

// StatusAll lists invitations regardless of status.
const StatusAll = "all"

type InviteInput struct {
	Email string      `json:"email" validate:"required,email"`
	Role  models.Role `json:"role" validate:"required,sharerole"`
}

type RespondInput struct {
	Action models.InvitationAction `json:"action" validate:"required,oneof=accept decline"`
}

// RespondResult carries the grant created on acceptance; Access is nil on decline.
type RespondResult struct {
	Invitation *models.WalletInvitation `json:"invitation"`
	Access     *models.WalletAccess     `json:"access,omitempty"`
}
