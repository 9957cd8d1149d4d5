package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
)

// RegisterAnalyticsRoutes registers the read-only analytics endpoints
// with the families RouterGroup that is passed.
func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:id/analytics", httputil.OptionsGet)
		r.GET("/:id/analytics", GetFamilyAnalytics)
		r.OPTIONS("/:id/analytics/transactions", httputil.OptionsGet)
		r.GET("/:id/analytics/transactions", GetTransactionAnalytics)
		r.OPTIONS("/:id/analytics/comparison", httputil.OptionsGet)
		r.GET("/:id/analytics/comparison", GetBudgetComparison)
	}
}

// @Summary		Family analytics
// @Description	Returns budget utilization per type and the progress of every savings goal
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	FamilyAnalyticsResponse
// @Failure		400	{object}	FamilyAnalyticsResponse
// @Failure		404	{object}	FamilyAnalyticsResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id}/analytics [get]
func GetFamilyAnalytics(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyAnalyticsResponse{
			Error: &s,
		})
		return
	}

	family, err := models.FamilyForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyAnalyticsResponse{
			Error: &s,
		})
		return
	}

	utilization, err := models.FamilyUtilization(models.DB, family.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyAnalyticsResponse{
			Error: &s,
		})
		return
	}

	savings, err := models.FamilySavingsProgress(models.DB, family.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyAnalyticsResponse{
			Error: &s,
		})
		return
	}

	data := FamilyAnalytics{
		Utilization: utilization,
		Savings:     savings,
	}
	c.JSON(http.StatusOK, FamilyAnalyticsResponse{Data: &data})
}

// @Summary		Transaction analytics
// @Description	Returns category totals and time series for the family's transactions
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	TransactionAnalyticsResponse
// @Failure		400			{object}	TransactionAnalyticsResponse
// @Failure		404			{object}	TransactionAnalyticsResponse
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			period		query		string	false	"Time bucket: week, month or year. Defaults to month."
// @Param			start_date	query		string	false	"Only include transactions on or after this date"
// @Param			end_date	query		string	false	"Only include transactions on or before this date"
// @Router			/v1/families/{id}/analytics/transactions [get]
func GetTransactionAnalytics(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionAnalyticsResponse{
			Error: &s,
		})
		return
	}

	var query TransactionAnalyticsQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionAnalyticsResponse{
			Error: &s,
		})
		return
	}

	period := models.AnalyticsMonth
	if query.Period != "" {
		period = models.AnalyticsPeriod(query.Period)
	}

	family, err := models.FamilyForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionAnalyticsResponse{
			Error: &s,
		})
		return
	}

	data, err := models.AnalyzeTransactions(models.DB, family.ID, period, query.StartDate, query.EndDate)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionAnalyticsResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, TransactionAnalyticsResponse{Data: &data})
}

// @Summary		Budget comparison
// @Description	Compares budgeted and actual totals per budget type, including the net of both
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	BudgetComparisonResponse
// @Failure		400	{object}	BudgetComparisonResponse
// @Failure		404	{object}	BudgetComparisonResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id}/analytics/comparison [get]
func GetBudgetComparison(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetComparisonResponse{
			Error: &s,
		})
		return
	}

	family, err := models.FamilyForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetComparisonResponse{
			Error: &s,
		})
		return
	}

	data, err := models.CompareBudgets(models.DB, family.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetComparisonResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetComparisonResponse{Data: &data})
}
