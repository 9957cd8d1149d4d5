package v1

import (
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
)

// FamilyAnalytics is the overview of a family's budget utilization and
// savings progress.
type FamilyAnalytics struct {
	Utilization []models.BudgetUtilization `json:"utilization"` // Budgeted vs actual per budget type
	Savings     []models.SavingsProgress   `json:"savings"`     // Progress of every savings goal
}

type FamilyAnalyticsResponse struct {
	Data  *FamilyAnalytics `json:"data"`  // Data for the family
	Error *string          `json:"error"` // The error, if any occurred
}

type TransactionAnalyticsResponse struct {
	Data  *models.TransactionAnalytics `json:"data"`  // Data for the family
	Error *string                      `json:"error"` // The error, if any occurred
}

type BudgetComparisonResponse struct {
	Data  *models.BudgetComparison `json:"data"`  // Data for the family
	Error *string                  `json:"error"` // The error, if any occurred
}

// TransactionAnalyticsQuery are the query parameters for the transaction
// analytics endpoint.
type TransactionAnalyticsQuery struct {
	Period    string      `form:"period"`     // week, month or year. Defaults to month.
	StartDate *types.Date `form:"start_date"` // Only include transactions on or after this date
	EndDate   *types.Date `form:"end_date"`   // Only include transactions on or before this date
}
