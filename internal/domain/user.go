package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role represents a user's access level.
type Role string

const (
	// RoleAdmin can manage users and view platform-wide data.
	RoleAdmin Role = "admin"

	// RoleUser can only manage and analyze their own ledger.
	RoleUser Role = "user"
)

var validRoles = map[Role]bool{
	RoleAdmin: true,
	RoleUser:  true,
}

// IsValid checks if the role is a known role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanManageUsers checks if the role can administer other users.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// IncomeType describes the user's primary income source, used when
// composing advice prompts.
type IncomeType string

const (
	IncomeTypeSalary     IncomeType = "salary"
	IncomeTypeFreelance  IncomeType = "freelance"
	IncomeTypeBusiness   IncomeType = "business"
	IncomeTypeInvestment IncomeType = "investment"
	IncomeTypeOther      IncomeType = "other"
)

var validIncomeTypes = map[IncomeType]bool{
	IncomeTypeSalary:     true,
	IncomeTypeFreelance:  true,
	IncomeTypeBusiness:   true,
	IncomeTypeInvestment: true,
	IncomeTypeOther:      true,
}

// IsValid checks if the income type is known.
func (it IncomeType) IsValid() bool {
	return validIncomeTypes[it]
}

// User represents an account holder. BudgetGoal and IncomeType are optional
// preferences; Active false marks a soft-deleted account.
type User struct {
	ID             string
	Name           string
	Email          string
	HashedPassword string
	Role           Role
	IncomeType     IncomeType
	BudgetGoal     *decimal.Decimal
	PhoneNumber    string
	ProfilePicture string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
