package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/armahcreates/iwil/internal/api/dto"
	"github.com/armahcreates/iwil/internal/observability"
	"github.com/armahcreates/iwil/internal/rate"
	"github.com/armahcreates/iwil/internal/service"
	apperrors "github.com/armahcreates/iwil/pkg/util"
)

// AuthHandler exposes login and registration.
type AuthHandler struct {
	auth    *service.AuthService
	limiter rate.Limiter
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService, limiter rate.Limiter, metrics *observability.Metrics, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, limiter: limiter, metrics: metrics, logger: logger}
}

// Login handles POST /api/auth-login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Email and password are required")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("Email and password are required")
	}

	if h.limiter != nil {
		key := strings.ToLower(req.Email) + ":" + c.IP()
		res, err := h.limiter.Allow(c.Context(), key)
		if err != nil {
			// rate limiting is advisory; a broken limiter must not take login down
			h.logger.Warn("rate limiter unavailable", zap.Error(err))
		} else if !res.Allowed {
			h.metrics.RecordAuthAttempt("rate_limited")
			return apperrors.NewRateLimited()
		}
	}

	account, err := h.auth.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.RecordAuthAttempt(loginOutcome(err))
		return loginError(err)
	}

	token, _, err := h.auth.IssueToken(account)
	if err != nil {
		return loginError(err)
	}

	h.metrics.RecordAuthAttempt("success")
	return c.JSON(dto.AuthResponse{
		Token:   token,
		User:    dto.NewUserResponse(account),
		Message: "Login successful",
	})
}

// Register handles POST /api/auth-register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("First name, last name, email, and password are required")
	}

	account, err := h.auth.Register(c.Context(), service.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		Organization: req.Organization,
		Phone:        req.Phone,
	})
	if err != nil {
		return registerError(err)
	}

	token, _, err := h.auth.IssueToken(account)
	if err != nil {
		return registerError(err)
	}

	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{
		Token:   token,
		User:    dto.NewUserResponse(account),
		Message: "Account created successfully",
	})
}

// loginError keeps the typed failures and rewrites anything unexpected
// to the login path's generic 500 message.
func loginError(err error) error {
	if apperrors.ToDomainError(err).Code == "INTERNAL_ERROR" {
		return apperrors.NewInternalError("Login failed. Please try again.", err)
	}
	return err
}

func registerError(err error) error {
	if apperrors.ToDomainError(err).Code == "INTERNAL_ERROR" {
		return apperrors.NewInternalError("Registration failed. Please try again.", err)
	}
	return err
}

func loginOutcome(err error) string {
	switch apperrors.ToDomainError(err).Code {
	case "INVALID_CREDENTIALS":
		return "invalid_credentials"
	case "ACCOUNT_DEACTIVATED":
		return "deactivated"
	default:
		return "error"
	}
}
