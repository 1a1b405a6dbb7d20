package handlers

import (
	"ledgerly/internal/services/wallet"
	"ledgerly/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func (h *WalletHandler) ListWallets(c *fiber.Ctx) error {
	wallets, err := h.walletService.ListWallets(c.UserContext(), utils.GetUserID(c))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, wallets, "Wallets retrieved successfully")
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	var in wallet.CreateWalletInput
	if err := parseBody(c, &in); err != nil {
		return utils.Error(c, err)
	}

	w, err := h.walletService.CreateWallet(c.UserContext(), utils.GetUserID(c), in)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Created(c, w, "Wallet created successfully")
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	w, err := h.walletService.GetWallet(c.UserContext(), c.Params("id"), utils.GetUserID(c))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, w, "Wallet retrieved successfully")
}

func (h *WalletHandler) UpdateWallet(c *fiber.Ctx) error {
	var in wallet.UpdateWalletInput
	if err := parseBody(c, &in); err != nil {
		return utils.Error(c, err)
	}

	w, err := h.walletService.UpdateWallet(c.UserContext(), c.Params("id"), utils.GetUserID(c), in)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, w, "Wallet updated successfully")
}

func (h *WalletHandler) DeleteWallet(c *fiber.Ctx) error {
	if err := h.walletService.DeleteWallet(c.UserContext(), c.Params("id"), utils.GetUserID(c)); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, nil, "Wallet and all associated entries deleted successfully")
}

// Updates answers the wallet-list poll.
func (h *WalletHandler) Updates(c *fiber.Ctx) error {
	since, err := parseSince(c)
	if err != nil {
		return utils.Error(c, err)
	}

	updates, err := h.walletService.Updates(c.UserContext(), utils.GetUserID(c), since)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, updates)
}
