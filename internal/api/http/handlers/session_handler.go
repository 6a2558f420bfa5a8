package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armahcreates/iwil/internal/api/dto"
	"github.com/armahcreates/iwil/internal/domain"
	"github.com/armahcreates/iwil/internal/service"
	apperrors "github.com/armahcreates/iwil/pkg/util"
)

const accountKey = "session_account"

// SessionHandler serves the session endpoint: whoami, logout, refresh.
type SessionHandler struct {
	auth *service.AuthService
}

// NewSessionHandler constructs the handler.
func NewSessionHandler(authService *service.AuthService) *SessionHandler {
	return &SessionHandler{auth: authService}
}

// RequireSession resolves the bearer token to an active account and
// stashes it for downstream handlers.
func (h *SessionHandler) RequireSession(c *fiber.Ctx) error {
	account, err := h.auth.ResolveSession(c.Context(), c.Get("Authorization"))
	if err != nil {
		return err
	}
	c.Locals(accountKey, account)
	return c.Next()
}

// Get handles GET /api/auth-session.
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	account, err := accountFromContext(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.SessionResponse{
		User:            dto.NewUserResponse(account),
		IsAuthenticated: true,
	})
}

// Post handles POST /api/auth-session with an action of logout or refresh.
func (h *SessionHandler) Post(c *fiber.Ctx) error {
	account, err := accountFromContext(c)
	if err != nil {
		return err
	}

	var req dto.SessionActionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request")
	}

	switch req.Action {
	case "logout":
		if err := h.auth.Logout(c.Context(), account); err != nil {
			return err
		}
		return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
	case "refresh":
		token, _, err := h.auth.RefreshToken(c.Context(), account)
		if err != nil {
			return err
		}
		return c.JSON(dto.AuthResponse{
			Token:   token,
			User:    dto.NewUserResponse(account),
			Message: "Token refreshed successfully",
		})
	default:
		return apperrors.NewValidationError("Invalid request")
	}
}

// AccountFromContext retrieves the resolved session account.
func AccountFromContext(c *fiber.Ctx) (*domain.StaffAccount, bool) {
	account, ok := c.Locals(accountKey).(*domain.StaffAccount)
	return account, ok
}

func accountFromContext(c *fiber.Ctx) (*domain.StaffAccount, error) {
	account, ok := AccountFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("No valid token provided")
	}
	return account, nil
}
