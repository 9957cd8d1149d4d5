package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal is a target amount a family is saving towards.
//
// CurrentAmount is maintained by the backend on contribution creation and
// deletion, it is never settable by clients. The invariant is that it
// always equals the sum of the goal's remaining contributions.
type SavingsGoal struct {
	DefaultModel
	FamilyID      uuid.UUID       `json:"familyId" example:"c8431323-3f68-4a8a-b073-2f318f9d2b94"` // ID of the family the goal belongs to
	Family        Family          `json:"-"`
	Name          string          `json:"name" example:"Summer vacation"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(12,2)" example:"1000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(12,2)" example:"300"` // Maintained by the backend, read-only
	TargetDate    *types.Date     `json:"targetDate" example:"2024-08-01"`
	CreatedByID   uuid.UUID       `json:"createdBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who created the goal
	CreatedBy     User            `json:"-"`
}

func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*SavingsGoal)
	return tx.First(&Family{}, toSave.FamilyID).Error
}

func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	if g.TargetAmount.IsNegative() {
		return ErrTargetAmountNegative
	}

	return nil
}

// Progress returns how far the goal is towards its target in percent.
// Goals without a positive target report zero instead of dividing by it.
func (g SavingsGoal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}
