package models_test

import (
	"fmt"

	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestFamilyUtilizationEmpty() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	utilization, err := models.FamilyUtilization(models.DB, family.ID)
	suite.Require().NoError(err)
	suite.Require().Len(utilization, 2)

	// Nothing budgeted reports zero instead of dividing by it
	for _, row := range utilization {
		suite.Assert().True(row.Budgeted.IsZero())
		suite.Assert().True(row.Actual.IsZero())
		suite.Assert().True(row.UtilizationPercentage.IsZero())
	}
}

func (suite *TestSuiteStandard) TestFamilyUtilization() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	expense := suite.createTestBudget(models.Budget{
		FamilyID:    family.ID,
		Type:        models.BudgetTypeExpense,
		Amount:      decimal.NewFromInt(500),
		CreatedByID: creator.ID,
	})
	income := suite.createTestBudget(models.Budget{
		FamilyID:    family.ID,
		Type:        models.BudgetTypeIncome,
		Amount:      decimal.NewFromInt(1000),
		CreatedByID: creator.ID,
	})

	_ = suite.createTestTransaction(models.Transaction{
		BudgetID:    expense.ID,
		Amount:      decimal.NewFromInt(250),
		CreatedByID: creator.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		BudgetID:    income.ID,
		Amount:      decimal.NewFromInt(1200),
		CreatedByID: creator.ID,
	})

	utilization, err := models.FamilyUtilization(models.DB, family.ID)
	suite.Require().NoError(err)
	suite.Require().Len(utilization, 2)

	byType := make(map[models.BudgetType]models.BudgetUtilization)
	for _, row := range utilization {
		byType[row.Type] = row
	}

	suite.Assert().True(byType[models.BudgetTypeExpense].UtilizationPercentage.Equal(decimal.NewFromInt(50)),
		"Expense utilization is %s, should be 50", byType[models.BudgetTypeExpense].UtilizationPercentage)
	suite.Assert().True(byType[models.BudgetTypeIncome].UtilizationPercentage.Equal(decimal.NewFromInt(120)),
		"Income utilization is %s, should be 120", byType[models.BudgetTypeIncome].UtilizationPercentage)
}

func (suite *TestSuiteStandard) TestFamilySavingsProgress() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	goal := suite.createTestSavingsGoal(models.SavingsGoal{
		FamilyID:     family.ID,
		Name:         "Summer vacation",
		TargetAmount: decimal.NewFromInt(1000),
		CreatedByID:  creator.ID,
	})
	_ = suite.createTestContribution(models.SavingsContribution{
		GoalID:      goal.ID,
		Amount:      decimal.NewFromInt(300),
		CreatedByID: creator.ID,
	})

	progress, err := models.FamilySavingsProgress(models.DB, family.ID)
	suite.Require().NoError(err)
	suite.Require().Len(progress, 1)

	suite.Assert().Equal(goal.ID, progress[0].GoalID)
	suite.Assert().True(progress[0].CurrentAmount.Equal(decimal.NewFromInt(300)))
	suite.Assert().True(progress[0].ProgressPercentage.Equal(decimal.NewFromInt(30)),
		"Progress is %s, should be 30", progress[0].ProgressPercentage)
}

func (suite *TestSuiteStandard) TestAnalyzeTransactionsInvalidPeriod() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	_, err := models.AnalyzeTransactions(models.DB, family.ID, "decade", nil, nil)
	suite.Assert().ErrorIs(err, models.ErrInvalidAnalyticsGroup)
}

func (suite *TestSuiteStandard) TestAnalyzeTransactionsTopCategories() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)
	budget := suite.createTestBudget(models.Budget{FamilyID: family.ID, CreatedByID: creator.ID})

	// Six expense categories, only the five largest may be reported
	for i := 1; i <= 6; i++ {
		category := suite.createTestCategory(models.Category{
			FamilyID: family.ID,
			Name:     fmt.Sprintf("Category %d", i),
			Type:     models.CategoryTypeExpense,
		})
		_ = suite.createTestTransaction(models.Transaction{
			BudgetID:    budget.ID,
			CategoryID:  &category.ID,
			Amount:      decimal.NewFromInt(int64(i * 10)),
			CreatedByID: creator.ID,
		})
	}

	analytics, err := models.AnalyzeTransactions(models.DB, family.ID, models.AnalyticsMonth, nil, nil)
	suite.Require().NoError(err)

	suite.Require().Len(analytics.TopExpenseCategories, 5)
	suite.Assert().Empty(analytics.TopIncomeCategories)

	// Ordered by total, descending, the smallest category dropped
	suite.Assert().Equal("Category 6", analytics.TopExpenseCategories[0].Name)
	suite.Assert().True(analytics.TopExpenseCategories[0].Total.Equal(decimal.NewFromInt(60)))
	suite.Assert().Equal("Category 2", analytics.TopExpenseCategories[4].Name)
}

func (suite *TestSuiteStandard) TestAnalyzeTransactionsTrends() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)
	budget := suite.createTestBudget(models.Budget{FamilyID: family.ID, CreatedByID: creator.ID})

	for _, date := range []types.Date{
		types.NewDate(2024, 3, 1),
		types.NewDate(2024, 3, 16),
		types.NewDate(2024, 4, 2),
	} {
		_ = suite.createTestTransaction(models.Transaction{
			BudgetID:    budget.ID,
			Amount:      decimal.NewFromInt(10),
			Date:        date,
			CreatedByID: creator.ID,
		})
	}

	analytics, err := models.AnalyzeTransactions(models.DB, family.ID, models.AnalyticsMonth, nil, nil)
	suite.Require().NoError(err)
	suite.Require().Len(analytics.Trends, 2)

	// Buckets are ascending and truncated to the first of the month
	suite.Assert().Equal("2024-03-01", analytics.Trends[0].Period)
	suite.Assert().True(analytics.Trends[0].Total.Equal(decimal.NewFromInt(20)))
	suite.Assert().Equal("2024-04-01", analytics.Trends[1].Period)
	suite.Assert().True(analytics.Trends[1].Total.Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestAnalyzeTransactionsDateBounds() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)
	budget := suite.createTestBudget(models.Budget{FamilyID: family.ID, CreatedByID: creator.ID})

	for day, amount := range map[int]int64{1: 10, 16: 20, 28: 40} {
		_ = suite.createTestTransaction(models.Transaction{
			BudgetID:    budget.ID,
			Amount:      decimal.NewFromInt(amount),
			Date:        types.NewDate(2024, 3, day),
			CreatedByID: creator.ID,
		})
	}

	from := types.NewDate(2024, 3, 16)
	to := types.NewDate(2024, 3, 28)

	analytics, err := models.AnalyzeTransactions(models.DB, family.ID, models.AnalyticsMonth, &from, &to)
	suite.Require().NoError(err)
	suite.Require().Len(analytics.Trends, 1)

	// Both bounds are inclusive
	suite.Assert().True(analytics.Trends[0].Total.Equal(decimal.NewFromInt(60)),
		"Total is %s, should be 60", analytics.Trends[0].Total)
}

func (suite *TestSuiteStandard) TestCompareBudgets() {
	creator := suite.createTestUser(models.User{})
	family := suite.createTestFamily(models.Family{}, creator.ID)

	income := suite.createTestBudget(models.Budget{
		FamilyID:    family.ID,
		Type:        models.BudgetTypeIncome,
		Amount:      decimal.NewFromInt(1000),
		CreatedByID: creator.ID,
	})
	expense := suite.createTestBudget(models.Budget{
		FamilyID:    family.ID,
		Type:        models.BudgetTypeExpense,
		Amount:      decimal.NewFromInt(500),
		CreatedByID: creator.ID,
	})

	_ = suite.createTestTransaction(models.Transaction{
		BudgetID:    income.ID,
		Amount:      decimal.NewFromInt(1200),
		CreatedByID: creator.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		BudgetID:    expense.ID,
		Amount:      decimal.NewFromInt(300),
		CreatedByID: creator.ID,
	})

	comparison, err := models.CompareBudgets(models.DB, family.ID)
	suite.Require().NoError(err)

	suite.Assert().True(comparison.Income.Difference.Equal(decimal.NewFromInt(200)),
		"Income difference is %s, should be 200", comparison.Income.Difference)
	suite.Assert().True(comparison.Expense.Percentage.Equal(decimal.NewFromInt(60)),
		"Expense percentage is %s, should be 60", comparison.Expense.Percentage)

	// Net is income minus expense on both sides
	suite.Assert().True(comparison.Net.Budgeted.Equal(decimal.NewFromInt(500)))
	suite.Assert().True(comparison.Net.Actual.Equal(decimal.NewFromInt(900)))
	suite.Assert().True(comparison.Net.Difference.Equal(decimal.NewFromInt(400)))
}
