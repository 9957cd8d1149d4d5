package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAddContribution() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)
	goal := suite.createTestSavingsGoal(models.SavingsGoal{FamilyID: family.ID, CreatedByID: creator.ID})

	contribution := suite.createTestContribution(models.SavingsContribution{
		GoalID:      goal.ID,
		Amount:      decimal.NewFromInt(50),
		CreatedByID: creator.ID,
	})

	suite.Assert().True(contribution.Date.Equal(types.DateOf(time.Now())), "Date is %s, should default to today", contribution.Date)

	err := models.DB.First(&goal, goal.ID).Error
	suite.Require().NoError(err)
	suite.Assert().True(goal.CurrentAmount.Equal(decimal.NewFromInt(50)), "CurrentAmount is %s, should be 50", goal.CurrentAmount)
}

func (suite *TestSuiteStandard) TestAddContributionRequiresGoal() {
	err := models.AddContribution(models.DB, &models.SavingsContribution{
		GoalID: uuid.New(),
		Amount: decimal.NewFromInt(50),
	})

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteContribution() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)
	goal := suite.createTestSavingsGoal(models.SavingsGoal{FamilyID: family.ID, CreatedByID: creator.ID})

	keep := suite.createTestContribution(models.SavingsContribution{
		GoalID:      goal.ID,
		Amount:      decimal.NewFromInt(50),
		CreatedByID: creator.ID,
	})
	remove := suite.createTestContribution(models.SavingsContribution{
		GoalID:      goal.ID,
		Amount:      decimal.NewFromInt(30),
		CreatedByID: creator.ID,
	})

	err := models.DeleteContribution(models.DB, remove)
	suite.Require().NoError(err)

	err = models.DB.First(&goal, goal.ID).Error
	suite.Require().NoError(err)
	suite.Assert().True(goal.CurrentAmount.Equal(decimal.NewFromInt(50)), "CurrentAmount is %s, should be 50", goal.CurrentAmount)

	err = models.DB.First(&models.SavingsContribution{}, remove.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	err = models.DB.First(&models.SavingsContribution{}, keep.ID).Error
	suite.Assert().NoError(err)
}

func (suite *TestSuiteStandard) TestContributionBalanceInvariant() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)
	goal := suite.createTestSavingsGoal(models.SavingsGoal{FamilyID: family.ID, CreatedByID: creator.ID})

	amounts := []int64{50, 30, 20}
	var contributions []models.SavingsContribution
	for _, amount := range amounts {
		contributions = append(contributions, suite.createTestContribution(models.SavingsContribution{
			GoalID:      goal.ID,
			Amount:      decimal.NewFromInt(amount),
			CreatedByID: creator.ID,
		}))
	}

	err := models.DeleteContribution(models.DB, contributions[1])
	suite.Require().NoError(err)

	// The goal balance always equals the sum of its remaining contributions
	sum, err := models.ContributionSum(models.DB, goal.ID)
	suite.Require().NoError(err)

	err = models.DB.First(&goal, goal.ID).Error
	suite.Require().NoError(err)

	suite.Assert().True(goal.CurrentAmount.Equal(sum), "CurrentAmount is %s, contribution sum is %s", goal.CurrentAmount, sum)
	suite.Assert().True(goal.CurrentAmount.Equal(decimal.NewFromInt(70)), "CurrentAmount is %s, should be 70", goal.CurrentAmount)
}
