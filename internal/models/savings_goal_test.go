package models_test

import (
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSavingsGoalTrimWhitespace() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	goal := suite.createTestSavingsGoal(models.SavingsGoal{
		FamilyID:    family.ID,
		Name:        " Summer vacation ",
		CreatedByID: creator.ID,
	})

	suite.Assert().Equal("Summer vacation", goal.Name)
}

func (suite *TestSuiteStandard) TestSavingsGoalValidation() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	err := models.DB.Create(&models.SavingsGoal{
		FamilyID:     family.ID,
		Name:         "Negative target",
		TargetAmount: decimal.NewFromInt(-100),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrTargetAmountNegative)

	err = models.DB.Create(&models.SavingsGoal{
		FamilyID:     uuid.New(),
		Name:         "Orphan",
		TargetAmount: decimal.NewFromInt(100),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSavingsGoalProgress() {
	goal := models.SavingsGoal{
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(300),
	}
	suite.Assert().True(goal.Progress().Equal(decimal.NewFromInt(30)), "Progress is %s, should be 30", goal.Progress())

	// Goals without a positive target report zero instead of dividing by it
	zeroTarget := models.SavingsGoal{
		TargetAmount:  decimal.Zero,
		CurrentAmount: decimal.NewFromInt(300),
	}
	suite.Assert().True(zeroTarget.Progress().IsZero(), "Progress is %s, should be 0", zeroTarget.Progress())
}
