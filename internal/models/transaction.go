package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a booked amount against a budget, transitively scoped to
// the budget's family.
type Transaction struct {
	DefaultModel
	BudgetID    uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget the transaction is booked against
	Budget      Budget          `json:"-"`
	CategoryID  *uuid.UUID      `json:"categoryId" example:"b07881ae-6aa1-4aa6-a0f8-cbbfc54e3097"` // ID of the category, optional
	Category    *Category       `json:"-"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(12,2)" example:"32.12"`
	Note        string          `json:"note,omitempty" example:"Weekly shopping"`
	Date        types.Date      `json:"date" example:"2024-03-16"`
	CreatedByID uuid.UUID       `json:"createdBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who created the transaction
	CreatedBy   User            `json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Transaction)

	if tx.Statement.Changed("BudgetID") || tx.Statement.Changed("CategoryID") {
		err := t.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the budget and, when set, the category the
// transaction references exist and belong to the same family.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	var budget Budget
	err := tx.First(&budget, toSave.BudgetID).Error
	if err != nil {
		return err
	}

	if toSave.CategoryID != nil {
		var category Category
		err := tx.First(&category, *toSave.CategoryID).Error
		if err != nil {
			return err
		}

		if category.FamilyID != budget.FamilyID {
			return ErrCategoryNotInFamily
		}
	}

	return nil
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = types.DateOf(time.Now())
	}

	return nil
}

// FamilyTransactions returns the full transaction history of a family,
// most recent first. Ties on the date are broken by insertion order.
func FamilyTransactions(db *gorm.DB, familyID uuid.UUID) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Joins("JOIN budgets ON transactions.budget_id = budgets.id AND budgets.deleted_at IS NULL").
		Where("budgets.family_id = ?", familyID).
		Order("transactions.date DESC, transactions.created_at DESC").
		Find(&transactions).Error

	return transactions, err
}
