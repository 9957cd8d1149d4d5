package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsContribution is a single payment towards a savings goal.
type SavingsContribution struct {
	DefaultModel
	GoalID      uuid.UUID       `json:"goalId" example:"e6fa8eb5-7f2e-4b2f-b3bb-040f1e147a22"` // ID of the savings goal
	Goal        SavingsGoal     `json:"-"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(12,2)" example:"50"`
	Date        types.Date      `json:"date" example:"2024-03-16"`
	CreatedByID uuid.UUID       `json:"createdBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who created the contribution
	CreatedBy   User            `json:"-"`
}

func (c *SavingsContribution) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*SavingsContribution)
	return tx.First(&SavingsGoal{}, toSave.GoalID).Error
}

func (c *SavingsContribution) BeforeSave(_ *gorm.DB) error {
	if c.Date.IsZero() {
		c.Date = types.DateOf(time.Now())
	}

	return nil
}

// AddContribution creates a contribution and adds its amount to the goal's
// current amount. Both writes happen in one database transaction so the
// balance invariant is never observable as stale.
func AddContribution(db *gorm.DB, contribution *SavingsContribution) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var goal SavingsGoal
		err := tx.First(&goal, contribution.GoalID).Error
		if err != nil {
			return err
		}

		err = tx.Create(contribution).Error
		if err != nil {
			return err
		}

		return tx.Model(&goal).
			Update("current_amount", goal.CurrentAmount.Add(contribution.Amount)).Error
	})
}

// DeleteContribution removes a contribution and subtracts its amount from
// the goal's current amount, in one database transaction.
func DeleteContribution(db *gorm.DB, contribution SavingsContribution) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var goal SavingsGoal
		err := tx.First(&goal, contribution.GoalID).Error
		if err != nil {
			return err
		}

		err = tx.Model(&goal).
			Update("current_amount", goal.CurrentAmount.Sub(contribution.Amount)).Error
		if err != nil {
			return err
		}

		return tx.Delete(&contribution).Error
	})
}

// ContributionSum returns the sum of all remaining contributions of a goal.
func ContributionSum(db *gorm.DB, goalID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Table("savings_contributions").
		Select("SUM(amount)").
		Where("savings_contributions.deleted_at IS NULL").
		Where(&SavingsContribution{GoalID: goalID}).
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}
