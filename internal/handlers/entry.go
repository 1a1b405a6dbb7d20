package handlers

import (
	"ledgerly/internal/services/ledger"
	"ledgerly/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type EntryHandler struct {
	ledgerService ledger.Service
}

func NewEntryHandler(ledgerService ledger.Service) *EntryHandler {
	return &EntryHandler{ledgerService: ledgerService}
}

func (h *EntryHandler) ListEntries(c *fiber.Ctx) error {
	page, err := utils.GetPagination(c, utils.DefaultPage, utils.DefaultLimit)
	if err != nil {
		return utils.Error(c, err)
	}

	result, err := h.ledgerService.ListEntries(c.UserContext(), c.Params("id"), utils.GetUserID(c), page)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, result, "Wallet entries retrieved successfully")
}

func (h *EntryHandler) CreateEntry(c *fiber.Ctx) error {
	var in ledger.EntryInput
	if err := parseBody(c, &in); err != nil {
		return utils.Error(c, err)
	}

	result, err := h.ledgerService.CreateEntry(c.UserContext(), c.Params("id"), utils.GetUserID(c), in)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Created(c, result, "Entry added successfully")
}

func (h *EntryHandler) UpdateEntry(c *fiber.Ctx) error {
	var in ledger.EntryInput
	if err := parseBody(c, &in); err != nil {
		return utils.Error(c, err)
	}

	result, err := h.ledgerService.UpdateEntry(c.UserContext(), c.Params("id"), c.Params("entryId"), utils.GetUserID(c), in)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, result, "Entry updated successfully")
}

func (h *EntryHandler) DeleteEntry(c *fiber.Ctx) error {
	result, err := h.ledgerService.DeleteEntry(c.UserContext(), c.Params("id"), c.Params("entryId"), utils.GetUserID(c))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, result, "Entry deleted successfully")
}

func (h *EntryHandler) RestoreEntry(c *fiber.Ctx) error {
	result, err := h.ledgerService.RestoreEntry(c.UserContext(), c.Params("id"), c.Params("entryId"), utils.GetUserID(c))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, result, "Entry restored successfully")
}

func (h *EntryHandler) PurgeEntry(c *fiber.Ctx) error {
	entryID := c.Params("entryId")
	if err := h.ledgerService.PurgeEntry(c.UserContext(), c.Params("id"), entryID, utils.GetUserID(c)); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.Map{"entryId": entryID}, "Entry permanently deleted successfully")
}

// Changes answers the per-wallet poll.
func (h *EntryHandler) Changes(c *fiber.Ctx) error {
	since, err := parseSince(c)
	if err != nil {
		return utils.Error(c, err)
	}

	changes, err := h.ledgerService.Changes(c.UserContext(), c.Params("id"), utils.GetUserID(c), since)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, changes)
}
