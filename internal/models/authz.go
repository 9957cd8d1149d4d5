package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// This file implements the single place where "which resources can user U
// see" is decided. Controllers go through these queries instead of
// re-implementing membership checks per entity.
//
// Users without an accepted membership cannot tell whether a family exists
// at all, so failed scope checks surface as ErrResourceNotFound, not as a
// permission error. ErrForbidden is reserved for users who are accepted
// members but lack the admin role an operation requires.

// AcceptedMembership returns the accepted membership of a user in a family.
func AcceptedMembership(db *gorm.DB, familyID, userID uuid.UUID) (Membership, error) {
	var membership Membership
	err := db.
		Where(&Membership{FamilyID: familyID, UserID: userID, Status: StatusAccepted}).
		First(&membership).Error

	return membership, err
}

// AdminMembership returns the accepted admin membership of a user in a
// family. A non-member gets ErrResourceNotFound, an accepted non-admin
// gets ErrForbidden.
func AdminMembership(db *gorm.DB, familyID, userID uuid.UUID) (Membership, error) {
	membership, err := AcceptedMembership(db, familyID, userID)
	if err != nil {
		return Membership{}, err
	}

	if membership.Role != RoleAdmin {
		return Membership{}, fmt.Errorf("%w: only family admins can do this", ErrForbidden)
	}

	return membership, nil
}

// AccessibleFamilyIDs returns a subquery selecting the IDs of all families
// in which the user has an accepted membership.
func AccessibleFamilyIDs(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&Membership{}).
		Select("family_id").
		Where(&Membership{UserID: userID, Status: StatusAccepted})
}

// AccessibleFamilies returns all families the user is an accepted member of.
func AccessibleFamilies(db *gorm.DB, userID uuid.UUID) ([]Family, error) {
	var families []Family
	err := db.
		Where("families.id IN (?)", AccessibleFamilyIDs(db, userID)).
		Order("name ASC").
		Find(&families).Error

	return families, err
}

// FamilyForUser returns a family if the user is an accepted member.
func FamilyForUser(db *gorm.DB, familyID, userID uuid.UUID) (Family, error) {
	var family Family
	err := db.
		Where("families.id IN (?)", AccessibleFamilyIDs(db, userID)).
		First(&family, "families.id = ?", familyID).Error

	return family, err
}

// BudgetsForUser scopes a budget query to families accessible to the user.
func BudgetsForUser(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&Budget{}).
		Where("budgets.family_id IN (?)", AccessibleFamilyIDs(db, userID))
}

// BudgetForUser returns a budget if its family is accessible to the user.
func BudgetForUser(db *gorm.DB, budgetID, userID uuid.UUID) (Budget, error) {
	var budget Budget
	err := BudgetsForUser(db, userID).
		First(&budget, "budgets.id = ?", budgetID).Error

	return budget, err
}

// CategoriesForUser scopes a category query to families accessible to the user.
func CategoriesForUser(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&Category{}).
		Where("categories.family_id IN (?)", AccessibleFamilyIDs(db, userID))
}

// CategoryForUser returns a category if its family is accessible to the user.
func CategoryForUser(db *gorm.DB, categoryID, userID uuid.UUID) (Category, error) {
	var category Category
	err := CategoriesForUser(db, userID).
		First(&category, "categories.id = ?", categoryID).Error

	return category, err
}

// TransactionsForUser scopes a transaction query to budgets in families
// accessible to the user.
func TransactionsForUser(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&Transaction{}).
		Where("transactions.budget_id IN (?)", BudgetsForUser(db, userID).Select("budgets.id"))
}

// TransactionForUser returns a transaction if its budget's family is
// accessible to the user.
func TransactionForUser(db *gorm.DB, transactionID, userID uuid.UUID) (Transaction, error) {
	var transaction Transaction
	err := TransactionsForUser(db, userID).
		First(&transaction, "transactions.id = ?", transactionID).Error

	return transaction, err
}

// SavingsGoalsForUser scopes a savings goal query to families accessible
// to the user.
func SavingsGoalsForUser(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&SavingsGoal{}).
		Where("savings_goals.family_id IN (?)", AccessibleFamilyIDs(db, userID))
}

// SavingsGoalForUser returns a savings goal if its family is accessible to
// the user.
func SavingsGoalForUser(db *gorm.DB, goalID, userID uuid.UUID) (SavingsGoal, error) {
	var goal SavingsGoal
	err := SavingsGoalsForUser(db, userID).
		First(&goal, "savings_goals.id = ?", goalID).Error

	return goal, err
}

// ContributionsForUser scopes a contribution query to goals in families
// accessible to the user.
func ContributionsForUser(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&SavingsContribution{}).
		Where("savings_contributions.goal_id IN (?)", SavingsGoalsForUser(db, userID).Select("savings_goals.id"))
}

// ContributionForUser returns a contribution if its goal's family is
// accessible to the user.
func ContributionForUser(db *gorm.DB, contributionID, userID uuid.UUID) (SavingsContribution, error) {
	var contribution SavingsContribution
	err := ContributionsForUser(db, userID).
		First(&contribution, "savings_contributions.id = ?", contributionID).Error

	return contribution, err
}
