package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetType classifies a budget as an income target or an expense cap.
type BudgetType string

const (
	BudgetTypeIncome  BudgetType = "income"
	BudgetTypeExpense BudgetType = "expense"
)

// Valid reports whether the value is a known budget type.
func (t BudgetType) Valid() bool {
	return t == BudgetTypeIncome || t == BudgetTypeExpense
}

// BudgetPeriod is the cadence of a budget.
type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Valid reports whether the value is a known budget period.
func (p BudgetPeriod) Valid() bool {
	return p == PeriodWeekly || p == PeriodMonthly || p == PeriodYearly
}

// Budget is a planned amount for a family, either income to reach or
// expenses to stay under.
type Budget struct {
	DefaultModel
	FamilyID    uuid.UUID       `json:"familyId" example:"c8431323-3f68-4a8a-b073-2f318f9d2b94"` // ID of the family the budget belongs to
	Family      Family          `json:"-"`
	Name        string          `json:"name" example:"Groceries"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(12,2)" example:"500"` // The planned amount
	Type        BudgetType      `json:"type" gorm:"column:budget_type" example:"expense"`
	Period      BudgetPeriod    `json:"period" example:"monthly"`
	Note        string          `json:"note,omitempty" example:"Everything from the supermarket"`
	StartDate   types.Date      `json:"startDate" example:"2024-03-01"`
	EndDate     types.Date      `json:"endDate" example:"2024-03-31"`
	CreatedByID uuid.UUID       `json:"createdBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who created the budget
	CreatedBy   User            `json:"-"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return b.checkIntegrity(tx, *toSave)
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Budget)

	if tx.Statement.Changed("FamilyID") {
		err := b.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the family the budget references exists.
func (b *Budget) checkIntegrity(tx *gorm.DB, toSave Budget) error {
	return tx.First(&Family{}, toSave.FamilyID).Error
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)

	if !b.Type.Valid() {
		return ErrInvalidBudgetType
	}

	if !b.Period.Valid() {
		return ErrInvalidBudgetPeriod
	}

	if b.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// Spent returns the sum of all transaction amounts booked against the
// budget, zero when there are none.
func (b Budget) Spent(db *gorm.DB) (decimal.Decimal, error) {
	var spent decimal.NullDecimal

	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Where("transactions.deleted_at IS NULL").
		Where(&Transaction{BudgetID: b.ID}).
		Find(&spent).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !spent.Valid {
		return decimal.Zero, nil
	}

	return spent.Decimal, nil
}

// Remaining returns how far the budget is from its planned amount.
//
// The sign convention is asymmetric on purpose: income budgets measure the
// surplus over the target (actual - planned), expense budgets measure the
// headroom under the cap (planned - actual).
func (b Budget) Remaining(db *gorm.DB) (decimal.Decimal, error) {
	spent, err := b.Spent(db)
	if err != nil {
		return decimal.Zero, err
	}

	if b.Type == BudgetTypeIncome {
		return spent.Sub(b.Amount), nil
	}

	return b.Amount.Sub(spent), nil
}
