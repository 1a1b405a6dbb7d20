package handlers

import (
	"fmt"
	"strings"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/services/sharing"
	"ledgerly/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type SharingHandler struct {
	sharingService sharing.Service
}

func NewSharingHandler(sharingService sharing.Service) *SharingHandler {
	return &SharingHandler{sharingService: sharingService}
}

func (h *SharingHandler) ShareWallet(c *fiber.Ctx) error {
	var in sharing.InviteInput
	if err := parseBody(c, &in); err != nil {
		return utils.Error(c, err)
	}

	inv, err := h.sharingService.Invite(c.UserContext(), c.Params("id"), utils.GetUserID(c), in)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Created(c, inv, fmt.Sprintf("Invitation sent to %s", inv.InvitedUserEmail))
}

func (h *SharingHandler) ListAccess(c *fiber.Ctx) error {
	grants, err := h.sharingService.ListAccess(c.UserContext(), c.Params("id"), utils.GetUserID(c))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, grants, "Wallet access list retrieved successfully")
}

func (h *SharingHandler) RevokeAccess(c *fiber.Ctx) error {
	target := strings.TrimSpace(c.Query("userId"))
	if target == "" {
		return utils.Error(c, apperrors.Validation("userId is required"))
	}

	if err := h.sharingService.Revoke(c.UserContext(), c.Params("id"), utils.GetUserID(c), target); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, nil, "Wallet access revoked successfully")
}

func (h *SharingHandler) ListInvitations(c *fiber.Ctx) error {
	invitations, err := h.sharingService.ListInvitations(c.UserContext(), utils.GetUserID(c), c.Query("status"))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, invitations, "Invitations retrieved successfully")
}

func (h *SharingHandler) RespondToInvitation(c *fiber.Ctx) error {
	var in sharing.RespondInput
	if err := parseBody(c, &in); err != nil {
		return utils.Error(c, err)
	}

	result, err := h.sharingService.Respond(c.UserContext(), c.Params("id"), utils.GetUserID(c), in)
	if err != nil {
		return utils.Error(c, err)
	}

	inv := result.Invitation
	if result.Access != nil {
		return utils.Success(c, result, fmt.Sprintf("Invitation accepted! You now have %s access to %s", inv.Role, inv.WalletName))
	}
	return utils.Success(c, result, fmt.Sprintf("Invitation to %s has been declined", inv.WalletName))
}
