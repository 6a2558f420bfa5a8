package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/armahcreates/iwil/internal/auth"
	"github.com/armahcreates/iwil/internal/config"
	"github.com/armahcreates/iwil/internal/domain"
	"github.com/armahcreates/iwil/internal/events"
	"github.com/armahcreates/iwil/internal/repository"
	apperrors "github.com/armahcreates/iwil/pkg/util"
)

// RegisterInput carries the fields accepted by registration.
type RegisterInput struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	Role         string
	Organization string
	Phone        string
}

// AuthService coordinates registration, login and session resolution
// against whichever staff store was injected.
type AuthService struct {
	staff      repository.StaffRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, staff repository.StaffRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		staff:      staff,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register validates input and creates a staff account, returning the
// stored record. Token issuance is the caller's responsibility.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.StaffAccount, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("First name, last name, email, and password are required")
	}
	if len(input.Password) < 8 {
		return nil, apperrors.NewValidationError("Password must be at least 8 characters long")
	}

	if err := s.staff.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	email := strings.ToLower(input.Email)
	if _, err := s.staff.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateAccount("An account with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.DefaultStaffRole
	}

	now := time.Now()
	account := &domain.StaffAccount{
		ID:           newAccountID(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Organization: input.Organization,
		Phone:        input.Phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.staff.Insert(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewDuplicateAccount("An account with this email already exists")
		}
		return nil, err
	}

	s.publish(ctx, events.EventStaffRegistered, account.ID, account.Email, "")
	return account, nil
}

// Authenticate verifies email/password and returns the account. The
// failure message never distinguishes unknown emails from wrong
// passwords; deactivated accounts are the one deliberate exception.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.StaffAccount, error) {
	if err := s.staff.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	email = strings.ToLower(email)
	account, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.publish(ctx, events.EventLoginFailed, "", email, "unknown email")
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, err
	}

	if !account.IsActive {
		s.publish(ctx, events.EventLoginFailed, account.ID, email, "account deactivated")
		return nil, apperrors.NewAccountDeactivated()
	}

	if !auth.VerifyPassword(password, account.PasswordHash) {
		s.publish(ctx, events.EventLoginFailed, account.ID, email, "password mismatch")
		return nil, apperrors.NewInvalidCredentials()
	}

	s.publish(ctx, events.EventLoginSucceeded, account.ID, email, "")
	return account, nil
}

// ResolveSession validates a bearer header and loads the active account
// it refers to.
func (s *AuthService) ResolveSession(ctx context.Context, authHeader string) (*domain.StaffAccount, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, apperrors.NewUnauthorized("No valid token provided")
	}

	claims, err := s.tokenMgr.Verify(parts[1])
	if err != nil {
		return nil, apperrors.NewUnauthorized("Invalid or expired token")
	}

	account, err := s.staff.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("User not found or inactive")
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, apperrors.NewUnauthorized("User not found or inactive")
	}
	return account, nil
}

// IssueToken signs a fresh bearer token for the account.
func (s *AuthService) IssueToken(account *domain.StaffAccount) (string, time.Time, error) {
	return s.tokenMgr.Issue(account.ID, account.Email)
}

// RefreshToken reissues a token with a fresh expiry for the same subject.
func (s *AuthService) RefreshToken(ctx context.Context, account *domain.StaffAccount) (string, time.Time, error) {
	token, exp, err := s.tokenMgr.Issue(account.ID, account.Email)
	if err != nil {
		return "", time.Time{}, err
	}
	s.publish(ctx, events.EventTokenRefreshed, account.ID, account.Email, "")
	return token, exp, nil
}

// Logout is a no-op: tokens are stateless and expire naturally. The
// client drops its copy; there is no server-side revocation list.
func (s *AuthService) Logout(_ context.Context, _ *domain.StaffAccount) error {
	return nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, accountID, email, reason string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		AccountID: accountID,
		Email:     email,
		Reason:    reason,
		Timestamp: time.Now(),
	})
}

// newAccountID mints ids of the form staff_<millis>_<suffix>. Practically
// unique for this domain, not cryptographically so.
func newAccountID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("staff_%d_%s", time.Now().UnixMilli(), suffix)
}
