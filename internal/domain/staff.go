package domain

import "time"

// DefaultStaffRole is assigned when registration omits a role.
const DefaultStaffRole = "staff"

// StaffAccount models an authenticated operator (clinician, coach, admin).
// PasswordHash never leaves the repository/auth boundary; callers expose
// accounts through their sanitized projection only.
type StaffAccount struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	Organization string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
