package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrForbidden is returned when the acting user is visible to the family
	// but lacks the role an operation requires.
	ErrForbidden = errors.New("you do not have the required permissions")

	// ErrConflict is the base error for all state-invariant violations.
	// Concrete conflicts wrap it so callers can match on the class.
	ErrConflict = errors.New("the request conflicts with the current state")
)

// Membership conflicts
var (
	ErrAlreadyMember    = fmt.Errorf("%w: the user is already a member of this family", ErrConflict)
	ErrAlreadyInvited   = fmt.Errorf("%w: the user already has a pending invitation to this family", ErrConflict)
	ErrLastAdmin        = fmt.Errorf("%w: the last admin of a family cannot be removed", ErrConflict)
	ErrOnlyAdminLeaving = fmt.Errorf("%w: you are the only admin, promote another member to admin before leaving", ErrConflict)
	ErrNotPromotable    = fmt.Errorf("%w: only accepted members can be promoted to admin", ErrConflict)
	ErrMembershipExists = fmt.Errorf("%w: the user already has a membership in this family", ErrConflict)
)

// Uniqueness conflicts surfaced by the database
var (
	ErrEmailNotUnique        = fmt.Errorf("%w: a user with this email already exists", ErrConflict)
	ErrCategoryNameNotUnique = fmt.Errorf("%w: a category with this name and type already exists in the family", ErrConflict)
)

// Validation errors
var (
	ErrInvalidBudgetType     = errors.New("the budget type must be one of: income, expense")
	ErrInvalidBudgetPeriod   = errors.New("the budget period must be one of: weekly, monthly, yearly")
	ErrInvalidCategoryType   = errors.New("the category type must be one of: income, expense")
	ErrInvalidDecision       = errors.New("the invitation response must be one of: accept, reject")
	ErrAmountNegative        = errors.New("the amount must not be negative")
	ErrCategoryNotInFamily   = errors.New("the category must belong to the same family as the budget")
	ErrTargetAmountNegative  = errors.New("the target amount must not be negative")
	ErrInvalidAnalyticsGroup = errors.New("the period must be one of: week, month, year")
)
