package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armahcreates/iwil/internal/domain"
)

func TestMemoryStaffRepositorySeededAccounts(t *testing.T) {
	repo := NewMemoryStaffRepository()
	ctx := context.Background()

	demo, err := repo.GetByEmail(ctx, "demo@iwil.com")
	require.NoError(t, err)
	require.Equal(t, "staff_demo_1", demo.ID)
	require.Equal(t, "staff", demo.Role)
	require.True(t, demo.IsActive)

	admin, err := repo.GetByEmail(ctx, "admin@iwil.com")
	require.NoError(t, err)
	require.Equal(t, "admin", admin.Role)
}

func TestMemoryStaffRepositoryCaseInsensitiveLookup(t *testing.T) {
	repo := NewEmptyMemoryStaffRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &domain.StaffAccount{
		ID:    "staff_1",
		Email: "user@example.com",
	}))

	found, err := repo.GetByEmail(ctx, "User@Example.COM")
	require.NoError(t, err)
	require.Equal(t, "staff_1", found.ID)
}

func TestMemoryStaffRepositoryDuplicateInsert(t *testing.T) {
	repo := NewEmptyMemoryStaffRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &domain.StaffAccount{ID: "staff_1", Email: "ann@x.com"}))
	err := repo.Insert(ctx, &domain.StaffAccount{ID: "staff_2", Email: "ANN@X.COM"})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// first account is unaffected
	found, err := repo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.Equal(t, "staff_1", found.ID)
}

func TestMemoryStaffRepositoryNotFound(t *testing.T) {
	repo := NewEmptyMemoryStaffRepository()
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, "staff_missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStaffRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryStaffRepository()
	ctx := context.Background()

	first, err := repo.GetByEmail(ctx, "demo@iwil.com")
	require.NoError(t, err)
	first.Role = "mutated"

	second, err := repo.GetByEmail(ctx, "demo@iwil.com")
	require.NoError(t, err)
	require.Equal(t, "staff", second.Role)
}
