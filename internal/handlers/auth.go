package handlers

import (
	"ledgerly/internal/logging"
	"ledgerly/internal/models"
	"ledgerly/internal/services/auth"
	"ledgerly/internal/services/wallet"
	"ledgerly/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService   auth.Service
	walletService wallet.Service
	cookie        utils.CookieSettings
}

func NewAuthHandler(authService auth.Service, walletService wallet.Service, cookie utils.CookieSettings) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		walletService: walletService,
		cookie:        cookie,
	}
}

type sessionResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in auth.RegisterInput
	if err := parseBody(c, &in); err != nil {
		return utils.Error(c, err)
	}

	sess, err := h.authService.Register(c.UserContext(), in)
	if err != nil {
		return utils.Error(c, err)
	}

	utils.SetAuthCookie(c, h.cookie, sess.Token)
	return utils.Created(c, sessionResponse{User: sess.User, Token: sess.Token}, "Registration successful")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in auth.LoginInput
	if err := parseBody(c, &in); err != nil {
		return utils.Error(c, err)
	}

	sess, err := h.authService.Login(c.UserContext(), in)
	if err != nil {
		return utils.Error(c, err)
	}

	utils.SetAuthCookie(c, h.cookie, sess.Token)
	return utils.Success(c, sessionResponse{User: sess.User, Token: sess.Token}, "Login successful")
}

// Logout always clears the cookie; revoking the token is best effort.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := utils.TokenFromRequest(c, h.cookie.Name)
	if err := h.authService.Logout(c.UserContext(), token); err != nil {
		logging.Default.Warn("Error revoking session on logout: %v", err)
	}
	utils.ClearAuthCookie(c, h.cookie)
	return utils.Success(c, nil, "Logout successful")
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	if user, ok := utils.GetUser(c); ok {
		return utils.Success(c, user, "User information retrieved successfully")
	}
	user, err := h.authService.GetUser(c.UserContext(), utils.GetUserID(c))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, user, "User information retrieved successfully")
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in auth.ProfileInput
	if err := parseBody(c, &in); err != nil {
		return utils.Error(c, err)
	}

	user, err := h.authService.UpdateProfile(c.UserContext(), utils.GetUserID(c), in)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, user, "Profile updated successfully")
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.walletService.DeleteAccount(c.UserContext(), utils.GetUserID(c)); err != nil {
		return utils.Error(c, err)
	}
	utils.ClearAuthCookie(c, h.cookie)
	return utils.Success(c, nil, "Account and all associated data deleted successfully")
}
