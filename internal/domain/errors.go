package domain

import "errors"

// Domain errors
var (
	ErrUserAlreadyExists      = errors.New("user already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrPasswordMismatch       = errors.New("password mismatch")
	ErrInvalidUsername        = errors.New("invalid username")
	ErrInvalidPassword        = errors.New("invalid password")
	ErrInvalidBill            = errors.New("invalid bill")
	ErrInvalidCategory        = errors.New("invalid category")
	ErrInvalidBudget          = errors.New("invalid budget")
	ErrBudgetExceeded         = errors.New("budget exceeded")
	ErrCategoryBudgetExceeded = errors.New("category budget exceeded")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrBillNotFound           = errors.New("bill not found")
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrDuplicateCategory      = errors.New("duplicate category name")
	ErrStorage                = errors.New("storage failure")
	ErrInitialization         = errors.New("initialization failure")
	ErrUnknown                = errors.New("unknown error")
)

// Validation constants
const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
	MinPasswordLength = 6
	MaxPasswordLength = 64

	MaxCategoryNameLength = 64
	MaxBillNoteLength     = 256
)
