package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/armahcreates/iwil/internal/auth"
	"github.com/armahcreates/iwil/internal/config"
	"github.com/armahcreates/iwil/internal/domain"
	"github.com/armahcreates/iwil/internal/repository"
	apperrors "github.com/armahcreates/iwil/pkg/util"
)

const testSecret = "unit-test-secret"

func newTestService() (*AuthService, repository.StaffRepository) {
	repo := repository.NewEmptyMemoryStaffRepository()
	svc := NewAuthService(config.AuthConfig{
		JWTSecret:     testSecret,
		TokenTTLHours: 1,
		BcryptCost:    4,
	}, repo, nil)
	return svc, repo
}

func TestRegisterDefaults(t *testing.T) {
	svc, _ := newTestService()

	account, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "Ann@X.com",
		Password:  "longenough1",
	})
	require.NoError(t, err)
	require.Equal(t, "ann@x.com", account.Email)
	require.Equal(t, "staff", account.Role)
	require.Equal(t, "", account.Organization)
	require.Equal(t, "", account.Phone)
	require.True(t, account.IsActive)
	require.True(t, strings.HasPrefix(account.ID, "staff_"))
	require.NotEqual(t, "longenough1", account.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		FirstName: "Ann", LastName: "Lee", Email: "ann@x.com",
	})
	requireDomainError(t, err, "VALIDATION_FAILED", "First name, last name, email, and password are required")

	_, err = svc.Register(ctx, RegisterInput{
		FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Password: "short1!",
	})
	requireDomainError(t, err, "VALIDATION_FAILED", "Password must be at least 8 characters long")

	// nothing was created
	_, err = svc.Authenticate(ctx, "ann@x.com", "short1!")
	requireDomainError(t, err, "INVALID_CREDENTIALS", "Invalid email or password")
}

func TestRegisterDuplicateCaseInsensitive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterInput{
		FirstName: "Ann", LastName: "Lee", Email: "User@Example.com", Password: "longenough1",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{
		FirstName: "Bob", LastName: "Ray", Email: "user@example.COM", Password: "longenough2",
	})
	requireDomainError(t, err, "DUPLICATE_ACCOUNT", "An account with this email already exists")

	// the original account still authenticates
	account, err := svc.Authenticate(ctx, "user@example.com", "longenough1")
	require.NoError(t, err)
	require.Equal(t, first.ID, account.ID)
}

func TestAuthenticateCaseInsensitiveEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Password: "longenough1",
	})
	require.NoError(t, err)

	account, err := svc.Authenticate(ctx, "ANN@X.COM", "longenough1")
	require.NoError(t, err)
	require.Equal(t, created.ID, account.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Password: "longenough1",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "ann@x.com", "wrong")
	requireDomainError(t, err, "INVALID_CREDENTIALS", "Invalid email or password")

	// unknown email yields the same generic message
	_, err = svc.Authenticate(ctx, "nobody@x.com", "longenough1")
	requireDomainError(t, err, "INVALID_CREDENTIALS", "Invalid email or password")
}

func TestAuthenticateDeactivatedAccount(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	hash, err := auth.HashPassword("longenough1", 4)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, &domain.StaffAccount{
		ID:           "staff_inactive",
		FirstName:    "Ina",
		LastName:     "Active",
		Email:        "ina@x.com",
		PasswordHash: hash,
		Role:         "staff",
		IsActive:     false,
	}))

	_, err = svc.Authenticate(ctx, "ina@x.com", "longenough1")
	requireDomainError(t, err, "ACCOUNT_DEACTIVATED", "Account is deactivated")
}

func TestResolveSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Password: "longenough1",
	})
	require.NoError(t, err)

	token, _, err := svc.IssueToken(created)
	require.NoError(t, err)

	account, err := svc.ResolveSession(ctx, "Bearer "+token)
	require.NoError(t, err)
	require.Equal(t, created.ID, account.ID)
}

func TestResolveSessionHeaderShapes(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc"} {
		_, err := svc.ResolveSession(ctx, header)
		requireDomainError(t, err, "UNAUTHORIZED", "No valid token provided")
	}

	_, err := svc.ResolveSession(ctx, "Bearer not-a-token")
	requireDomainError(t, err, "UNAUTHORIZED", "Invalid or expired token")
}

func TestResolveSessionExpiredToken(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Password: "longenough1",
	})
	require.NoError(t, err)

	expired := auth.NewTokenManager(testSecret, time.Nanosecond)
	token, _, err := expired.Issue(created.ID, created.Email)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	_, err = svc.ResolveSession(ctx, "Bearer "+token)
	requireDomainError(t, err, "UNAUTHORIZED", "Invalid or expired token")
}

func TestResolveSessionInactiveOrMissingUser(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// token for an account that was never stored
	ghost := auth.NewTokenManager(testSecret, time.Hour)
	token, _, err := ghost.Issue("staff_ghost", "ghost@x.com")
	require.NoError(t, err)
	_, err = svc.ResolveSession(ctx, "Bearer "+token)
	requireDomainError(t, err, "UNAUTHORIZED", "User not found or inactive")

	// token stays valid, but the account was deactivated
	require.NoError(t, repo.Insert(ctx, &domain.StaffAccount{
		ID:       "staff_off",
		Email:    "off@x.com",
		IsActive: false,
	}))
	token, _, err = ghost.Issue("staff_off", "off@x.com")
	require.NoError(t, err)
	_, err = svc.ResolveSession(ctx, "Bearer "+token)
	requireDomainError(t, err, "UNAUTHORIZED", "User not found or inactive")
}

func TestRefreshTokenIssuesFreshExpiry(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Password: "longenough1",
	})
	require.NoError(t, err)

	token, exp, err := svc.RefreshToken(ctx, created)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	account, err := svc.ResolveSession(ctx, "Bearer "+token)
	require.NoError(t, err)
	require.Equal(t, created.ID, account.ID)
}

func requireDomainError(t *testing.T, err error, code, message string) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, code, domainErr.Code)
	require.Equal(t, message, domainErr.Message)
}
