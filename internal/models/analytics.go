package models

import (
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The analytics in this file are pure read-side aggregations over the
// ledger and the savings tracker. Membership gating happens in the
// controllers, all functions here assume the family is accessible.

// AnalyticsPeriod is the time bucket transactions are grouped into.
type AnalyticsPeriod string

const (
	AnalyticsWeek  AnalyticsPeriod = "week"
	AnalyticsMonth AnalyticsPeriod = "month"
	AnalyticsYear  AnalyticsPeriod = "year"
)

// Valid reports whether the value is a known analytics period.
func (p AnalyticsPeriod) Valid() bool {
	return p == AnalyticsWeek || p == AnalyticsMonth || p == AnalyticsYear
}

// BudgetUtilization is budgeted vs actual for one budget type.
type BudgetUtilization struct {
	Type                  BudgetType      `json:"type" example:"expense"`
	Budgeted              decimal.Decimal `json:"budgeted" example:"500"`
	Actual                decimal.Decimal `json:"actual" example:"421.17"`
	UtilizationPercentage decimal.Decimal `json:"utilizationPercentage" example:"84.23"` // actual/budgeted*100, 0 when nothing is budgeted
}

// typeTotal is a scan target for sums grouped by budget type.
type typeTotal struct {
	Type  BudgetType      `gorm:"column:budget_type"`
	Total decimal.Decimal `gorm:"column:total"`
}

// budgetedByType sums the planned amounts of a family's budgets per type.
func budgetedByType(db *gorm.DB, familyID uuid.UUID) (map[BudgetType]decimal.Decimal, error) {
	var rows []typeTotal

	err := db.
		Table("budgets").
		Select("budgets.budget_type, SUM(budgets.amount) AS total").
		Where("budgets.family_id = ? AND budgets.deleted_at IS NULL", familyID).
		Group("budgets.budget_type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[BudgetType]decimal.Decimal)
	for _, row := range rows {
		totals[row.Type] = row.Total
	}

	return totals, nil
}

// actualByType sums the transaction amounts of a family per budget type.
func actualByType(db *gorm.DB, familyID uuid.UUID) (map[BudgetType]decimal.Decimal, error) {
	var rows []typeTotal

	err := db.
		Table("transactions").
		Select("budgets.budget_type, SUM(transactions.amount) AS total").
		Joins("JOIN budgets ON transactions.budget_id = budgets.id AND budgets.deleted_at IS NULL").
		Where("budgets.family_id = ? AND transactions.deleted_at IS NULL", familyID).
		Group("budgets.budget_type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[BudgetType]decimal.Decimal)
	for _, row := range rows {
		totals[row.Type] = row.Total
	}

	return totals, nil
}

// percentage returns actual/budgeted*100 with a zero guard.
func percentage(actual, budgeted decimal.Decimal) decimal.Decimal {
	if !budgeted.IsPositive() {
		return decimal.Zero
	}

	return actual.Div(budgeted).Mul(decimal.NewFromInt(100))
}

// FamilyUtilization returns budgeted and actual totals with the resulting
// utilization for both budget types. Types without budgets or
// transactions report zero values.
func FamilyUtilization(db *gorm.DB, familyID uuid.UUID) ([]BudgetUtilization, error) {
	budgeted, err := budgetedByType(db, familyID)
	if err != nil {
		return nil, err
	}

	actual, err := actualByType(db, familyID)
	if err != nil {
		return nil, err
	}

	utilization := make([]BudgetUtilization, 0, 2)
	for _, budgetType := range []BudgetType{BudgetTypeIncome, BudgetTypeExpense} {
		utilization = append(utilization, BudgetUtilization{
			Type:                  budgetType,
			Budgeted:              budgeted[budgetType],
			Actual:                actual[budgetType],
			UtilizationPercentage: percentage(actual[budgetType], budgeted[budgetType]),
		})
	}

	return utilization, nil
}

// SavingsProgress is the state of one savings goal.
type SavingsProgress struct {
	GoalID             uuid.UUID       `json:"goalId" example:"e6fa8eb5-7f2e-4b2f-b3bb-040f1e147a22"`
	Name               string          `json:"name" example:"Summer vacation"`
	TargetAmount       decimal.Decimal `json:"targetAmount" example:"1000"`
	CurrentAmount      decimal.Decimal `json:"currentAmount" example:"300"`
	ProgressPercentage decimal.Decimal `json:"progressPercentage" example:"30"`
	TargetDate         *types.Date     `json:"targetDate" example:"2024-08-01"`
}

// FamilySavingsProgress returns the progress of all savings goals of a family.
func FamilySavingsProgress(db *gorm.DB, familyID uuid.UUID) ([]SavingsProgress, error) {
	var goals []SavingsGoal
	err := db.
		Where(&SavingsGoal{FamilyID: familyID}).
		Order("name ASC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}

	progress := make([]SavingsProgress, 0, len(goals))
	for _, goal := range goals {
		progress = append(progress, SavingsProgress{
			GoalID:             goal.ID,
			Name:               goal.Name,
			TargetAmount:       goal.TargetAmount,
			CurrentAmount:      goal.CurrentAmount,
			ProgressPercentage: goal.Progress(),
			TargetDate:         goal.TargetDate,
		})
	}

	return progress, nil
}

// CategoryTotal is the transaction total of one category.
type CategoryTotal struct {
	Name  string          `json:"name" gorm:"column:name" example:"Groceries"`
	Type  CategoryType    `json:"type" gorm:"column:category_type" example:"expense"`
	Total decimal.Decimal `json:"total" gorm:"column:total" example:"421.17"`
}

// PeriodTotal is the transaction total of one time bucket and budget type.
type PeriodTotal struct {
	Period string          `json:"period" gorm:"column:period" example:"2024-03-01"` // First day of the bucket
	Type   BudgetType      `json:"type" gorm:"column:budget_type" example:"expense"`
	Total  decimal.Decimal `json:"total" gorm:"column:total" example:"421.17"`
}

// TransactionAnalytics groups a family's transactions by category and by
// time bucket.
type TransactionAnalytics struct {
	TopExpenseCategories []CategoryTotal `json:"topExpenseCategories"` // Top 5 expense categories by total
	TopIncomeCategories  []CategoryTotal `json:"topIncomeCategories"`  // Top 5 income categories by total
	Trends               []PeriodTotal   `json:"trends"`               // Totals per time bucket and budget type, ascending
}

// bucket returns the SQLite expression truncating a date to the period.
// Weeks start on Monday.
func (p AnalyticsPeriod) bucket() string {
	switch p {
	case AnalyticsWeek:
		return "date(transactions.date, 'weekday 0', '-6 days')"
	case AnalyticsYear:
		return "strftime('%Y-01-01', transactions.date)"
	default:
		return "strftime('%Y-%m-01', transactions.date)"
	}
}

// AnalyzeTransactions aggregates a family's transactions by category and
// by truncated time bucket. Both date bounds are inclusive and optional.
func AnalyzeTransactions(db *gorm.DB, familyID uuid.UUID, period AnalyticsPeriod, from, to *types.Date) (TransactionAnalytics, error) {
	if !period.Valid() {
		return TransactionAnalytics{}, ErrInvalidAnalyticsGroup
	}

	scope := func(q *gorm.DB) *gorm.DB {
		q = q.
			Table("transactions").
			Joins("JOIN budgets ON transactions.budget_id = budgets.id AND budgets.deleted_at IS NULL").
			Where("budgets.family_id = ? AND transactions.deleted_at IS NULL", familyID)

		if from != nil {
			q = q.Where("transactions.date >= date(?)", from.String())
		}
		if to != nil {
			q = q.Where("transactions.date <= date(?)", to.String())
		}

		return q
	}

	var categoryTotals []CategoryTotal
	err := scope(db).
		Select("categories.name, categories.category_type, SUM(transactions.amount) AS total").
		Joins("JOIN categories ON transactions.category_id = categories.id AND categories.deleted_at IS NULL").
		Group("categories.id").
		Order("total DESC").
		Find(&categoryTotals).Error
	if err != nil {
		return TransactionAnalytics{}, err
	}

	analytics := TransactionAnalytics{
		TopExpenseCategories: make([]CategoryTotal, 0, 5),
		TopIncomeCategories:  make([]CategoryTotal, 0, 5),
	}

	for _, total := range categoryTotals {
		switch {
		case total.Type == CategoryTypeExpense && len(analytics.TopExpenseCategories) < 5:
			analytics.TopExpenseCategories = append(analytics.TopExpenseCategories, total)
		case total.Type == CategoryTypeIncome && len(analytics.TopIncomeCategories) < 5:
			analytics.TopIncomeCategories = append(analytics.TopIncomeCategories, total)
		}
	}

	err = scope(db).
		Select(period.bucket() + " AS period, budgets.budget_type, SUM(transactions.amount) AS total").
		Group("period").
		Group("budgets.budget_type").
		Order("period ASC").
		Find(&analytics.Trends).Error
	if err != nil {
		return TransactionAnalytics{}, err
	}

	return analytics, nil
}

// ComparisonRow is budgeted vs actual for one side of the comparison.
type ComparisonRow struct {
	Budgeted   decimal.Decimal `json:"budgeted" example:"500"`
	Actual     decimal.Decimal `json:"actual" example:"421.17"`
	Difference decimal.Decimal `json:"difference" example:"-78.83"` // actual - budgeted
	Percentage decimal.Decimal `json:"percentage" example:"84.23"`  // actual/budgeted*100, 0 when nothing is budgeted
}

// BudgetComparison compares planned and actual amounts per budget type,
// plus the net (income - expense) of both.
type BudgetComparison struct {
	Income  ComparisonRow `json:"income"`
	Expense ComparisonRow `json:"expense"`
	Net     ComparisonRow `json:"net"`
}

func newComparisonRow(budgeted, actual decimal.Decimal) ComparisonRow {
	return ComparisonRow{
		Budgeted:   budgeted,
		Actual:     actual,
		Difference: actual.Sub(budgeted),
		Percentage: percentage(actual, budgeted),
	}
}

// CompareBudgets compares the budgeted and actual totals of a family.
func CompareBudgets(db *gorm.DB, familyID uuid.UUID) (BudgetComparison, error) {
	budgeted, err := budgetedByType(db, familyID)
	if err != nil {
		return BudgetComparison{}, err
	}

	actual, err := actualByType(db, familyID)
	if err != nil {
		return BudgetComparison{}, err
	}

	return BudgetComparison{
		Income:  newComparisonRow(budgeted[BudgetTypeIncome], actual[BudgetTypeIncome]),
		Expense: newComparisonRow(budgeted[BudgetTypeExpense], actual[BudgetTypeExpense]),
		Net: newComparisonRow(
			budgeted[BudgetTypeIncome].Sub(budgeted[BudgetTypeExpense]),
			actual[BudgetTypeIncome].Sub(actual[BudgetTypeExpense]),
		),
	}, nil
}
