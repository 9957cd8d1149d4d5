package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionDefaultsDate() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)
	budget := suite.createTestBudget(models.Budget{FamilyID: family.ID, CreatedByID: creator.ID})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:    budget.ID,
		Amount:      decimal.NewFromInt(10),
		Note:        " Weekly shopping ",
		CreatedByID: creator.ID,
	})

	suite.Assert().Equal("Weekly shopping", transaction.Note)
	suite.Assert().True(transaction.Date.Equal(types.DateOf(time.Now())), "Date is %s, should default to today", transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionRequiresBudget() {
	err := models.DB.Create(&models.Transaction{
		BudgetID: uuid.New(),
		Amount:   decimal.NewFromInt(10),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionCategoryMustMatchFamily() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)
	other := suite.createTestFamily(models.Family{}, creator.ID)

	budget := suite.createTestBudget(models.Budget{FamilyID: family.ID, CreatedByID: creator.ID})
	foreign := suite.createTestCategory(models.Category{FamilyID: other.ID})

	err := models.DB.Create(&models.Transaction{
		BudgetID:   budget.ID,
		CategoryID: &foreign.ID,
		Amount:     decimal.NewFromInt(10),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNotInFamily)

	// A category from the budget's own family is fine
	category := suite.createTestCategory(models.Category{FamilyID: family.ID})
	err = models.DB.Create(&models.Transaction{
		BudgetID:    budget.ID,
		CategoryID:  &category.ID,
		Amount:      decimal.NewFromInt(10),
		CreatedByID: creator.ID,
	}).Error
	suite.Assert().NoError(err)
}

func (suite *TestSuiteStandard) TestFamilyTransactions() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)
	other := suite.createTestFamily(models.Family{}, creator.ID)

	budget := suite.createTestBudget(models.Budget{FamilyID: family.ID, CreatedByID: creator.ID})
	otherBudget := suite.createTestBudget(models.Budget{FamilyID: other.ID, CreatedByID: creator.ID})

	older := suite.createTestTransaction(models.Transaction{
		BudgetID:    budget.ID,
		Amount:      decimal.NewFromInt(10),
		Date:        types.NewDate(2024, 3, 1),
		CreatedByID: creator.ID,
	})
	newer := suite.createTestTransaction(models.Transaction{
		BudgetID:    budget.ID,
		Amount:      decimal.NewFromInt(20),
		Date:        types.NewDate(2024, 3, 16),
		CreatedByID: creator.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		BudgetID:    otherBudget.ID,
		Amount:      decimal.NewFromInt(30),
		CreatedByID: creator.ID,
	})

	transactions, err := models.FamilyTransactions(models.DB, family.ID)
	suite.Require().NoError(err)

	// Most recent first, other families excluded
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal(newer.ID, transactions[0].ID)
	suite.Assert().Equal(older.ID, transactions[1].ID)
}
