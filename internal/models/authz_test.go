package models_test

import (
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccessibleFamilies() {
	creator := suite.createTestUser(models.User{})
	invitee := suite.createTestUser(models.User{Email: "invitee@example.com"})

	family := suite.createTestFamily(models.Family{Name: "Alpha"}, creator.ID)
	_ = suite.createTestFamily(models.Family{Name: "Beta"}, creator.ID)

	_, err := family.Invite(models.DB, creator.ID, invitee.Email)
	suite.Require().NoError(err)

	// A pending invitation does not grant access yet
	families, err := models.AccessibleFamilies(models.DB, invitee.ID)
	suite.Require().NoError(err)
	suite.Assert().Empty(families)

	families, err = models.AccessibleFamilies(models.DB, creator.ID)
	suite.Require().NoError(err)
	suite.Require().Len(families, 2)
	suite.Assert().Equal("Alpha", families[0].Name)
	suite.Assert().Equal("Beta", families[1].Name)
}

func (suite *TestSuiteStandard) TestScopingHidesOtherFamilies() {
	creator := suite.createTestUser(models.User{})
	outsider := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	budget := suite.createTestBudget(models.Budget{FamilyID: family.ID, CreatedByID: creator.ID})
	category := suite.createTestCategory(models.Category{FamilyID: family.ID})
	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:    budget.ID,
		Amount:      decimal.NewFromInt(10),
		CreatedByID: creator.ID,
	})
	goal := suite.createTestSavingsGoal(models.SavingsGoal{FamilyID: family.ID, CreatedByID: creator.ID})
	contribution := suite.createTestContribution(models.SavingsContribution{
		GoalID:      goal.ID,
		Amount:      decimal.NewFromInt(10),
		CreatedByID: creator.ID,
	})

	// Non-members cannot tell whether the resources exist at all
	_, err := models.FamilyForUser(models.DB, family.ID, outsider.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = models.BudgetForUser(models.DB, budget.ID, outsider.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = models.CategoryForUser(models.DB, category.ID, outsider.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = models.TransactionForUser(models.DB, transaction.ID, outsider.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = models.SavingsGoalForUser(models.DB, goal.ID, outsider.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = models.ContributionForUser(models.DB, contribution.ID, outsider.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestScopingForMembers() {
	creator := suite.createTestUser(models.User{})
	member := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	_ = suite.createTestMembership(models.Membership{
		FamilyID: family.ID,
		UserID:   member.ID,
		Status:   models.StatusAccepted,
	})

	budget := suite.createTestBudget(models.Budget{FamilyID: family.ID, CreatedByID: creator.ID})
	goal := suite.createTestSavingsGoal(models.SavingsGoal{FamilyID: family.ID, CreatedByID: creator.ID})
	contribution := suite.createTestContribution(models.SavingsContribution{
		GoalID:      goal.ID,
		Amount:      decimal.NewFromInt(10),
		CreatedByID: creator.ID,
	})

	// Resources created by one member are visible to every accepted member
	_, err := models.FamilyForUser(models.DB, family.ID, member.ID)
	suite.Assert().NoError(err)

	_, err = models.BudgetForUser(models.DB, budget.ID, member.ID)
	suite.Assert().NoError(err)

	_, err = models.ContributionForUser(models.DB, contribution.ID, member.ID)
	suite.Assert().NoError(err)
}

func (suite *TestSuiteStandard) TestAdminMembership() {
	creator := suite.createTestUser(models.User{})
	member := suite.createTestUser(models.User{})
	outsider := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	_ = suite.createTestMembership(models.Membership{
		FamilyID: family.ID,
		UserID:   member.ID,
		Status:   models.StatusAccepted,
	})

	_, err := models.AdminMembership(models.DB, family.ID, creator.ID)
	suite.Assert().NoError(err)

	// Accepted non-admins are recognized but rejected
	_, err = models.AdminMembership(models.DB, family.ID, member.ID)
	suite.Assert().ErrorIs(err, models.ErrForbidden)

	// Outsiders are indistinguishable from a missing family
	_, err = models.AdminMembership(models.DB, family.ID, outsider.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestScopingDatabaseError() {
	suite.CloseDB()

	_, err := models.AccessibleFamilies(models.DB, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
