package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/armahcreates/iwil/internal/domain"
)

// memoryStaffRepository keeps accounts in a process-local slice. It
// exists for local/demo deployments without a DATABASE_URL and is not
// safe across multiple processes.
type memoryStaffRepository struct {
	mu       sync.RWMutex
	accounts []domain.StaffAccount
}

// NewMemoryStaffRepository builds the in-memory store, seeded with the
// two demo accounts (demo@iwil.com / demo123, admin@iwil.com / admin123).
func NewMemoryStaffRepository() StaffRepository {
	now := time.Now()
	return &memoryStaffRepository{
		accounts: []domain.StaffAccount{
			{
				ID:           "staff_demo_1",
				FirstName:    "Demo",
				LastName:     "User",
				Email:        "demo@iwil.com",
				PasswordHash: "$2a$10$ziURsr4s9KFnx7X4hEpPiug/1D01Bp94.OgUsnA/vR.Xfb7jeXdw2",
				Role:         "staff",
				Organization: "IWIL Protocol",
				Phone:        "+1-555-0123",
				IsActive:     true,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			{
				ID:           "staff_admin_1",
				FirstName:    "Admin",
				LastName:     "User",
				Email:        "admin@iwil.com",
				PasswordHash: "$2a$10$gM2UHT4RkE02FF./SFiXAeQDSvGeeHGnpTF9fDSYMs7cB04SnZ8Ru",
				Role:         "admin",
				Organization: "IWIL Protocol",
				Phone:        "+1-555-0124",
				IsActive:     true,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
	}
}

// NewEmptyMemoryStaffRepository builds an unseeded in-memory store for tests.
func NewEmptyMemoryStaffRepository() StaffRepository {
	return &memoryStaffRepository{}
}

func (r *memoryStaffRepository) EnsureSchema(_ context.Context) error {
	return nil
}

func (r *memoryStaffRepository) GetByEmail(_ context.Context, email string) (*domain.StaffAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.accounts {
		if strings.EqualFold(r.accounts[i].Email, email) {
			account := r.accounts[i]
			return &account, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryStaffRepository) GetByID(_ context.Context, id string) (*domain.StaffAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			account := r.accounts[i]
			return &account, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryStaffRepository) Insert(_ context.Context, account *domain.StaffAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if strings.EqualFold(r.accounts[i].Email, account.Email) {
			return ErrDuplicateEmail
		}
	}
	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = now
	}
	r.accounts = append(r.accounts, *account)
	return nil
}
