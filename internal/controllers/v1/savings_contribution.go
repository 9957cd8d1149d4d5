package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterSavingsContributionRoutes registers the routes for savings
// contributions with the RouterGroup that is passed.
//
// Contributions are immutable: they can be created and deleted, but not
// updated. Corrections are a delete plus a new contribution so that the
// goal balance always moves through the same two code paths.
func RegisterSavingsContributionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsContributionList)
		r.GET("", GetSavingsContributions)
		r.POST("", CreateSavingsContribution)
	}

	// SavingsContribution with ID
	{
		r.OPTIONS("/:id", OptionsSavingsContributionDetail)
		r.GET("/:id", GetSavingsContribution)
		r.DELETE("/:id", DeleteSavingsContribution)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsContributions
// @Success		204
// @Router			/v1/contributions [options]
func OptionsSavingsContributionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsContributions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contributions/{id} [options]
func OptionsSavingsContributionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.ContributionForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create contribution
// @Description	Adds a contribution to a savings goal and raises the goal's current amount by its amount
// @Tags			SavingsContributions
// @Produce		json
// @Success		201				{object}	SavingsContributionResponse
// @Failure		400				{object}	SavingsContributionResponse
// @Failure		404				{object}	SavingsContributionResponse
// @Param			contribution	body		SavingsContributionEditable	true	"SavingsContribution"
// @Router			/v1/contributions [post]
func CreateSavingsContribution(c *gin.Context) {
	var editable SavingsContributionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsContributionResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)
	_, err = models.SavingsGoalForUser(models.DB, editable.GoalID, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsContributionResponse{
			Error: &e,
		})
		return
	}

	contribution := editable.model()
	contribution.CreatedByID = user.ID

	err = models.AddContribution(models.DB, &contribution)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsContributionResponse{
			Error: &e,
		})
		return
	}

	data := newSavingsContribution(c, contribution)
	c.JSON(http.StatusCreated, SavingsContributionResponse{Data: &data})
}

// @Summary		List contributions
// @Description	Returns contributions to goals in the user's families
// @Tags			SavingsContributions
// @Produce		json
// @Success		200	{object}	SavingsContributionListResponse
// @Failure		400	{object}	SavingsContributionListResponse
// @Failure		500	{object}	SavingsContributionListResponse
// @Router			/v1/contributions [get]
// @Param			goal	query	string	false	"Filter by goal ID"
// @Param			offset	query	uint	false	"The offset of the first SavingsContribution returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of SavingsContributions to return. Defaults to 50."
func GetSavingsContributions(c *gin.Context) {
	var filter SavingsContributionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SavingsContributionListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsContributionListResponse{
			Error: &s,
		})
		return
	}

	q := models.ContributionsForUser(models.DB, currentUser(c).ID).
		Order("date DESC, created_at DESC").
		Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 SavingsContributions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var contributions []models.SavingsContribution
	err = q.Find(&contributions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsContributionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsContributionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]SavingsContribution, 0)
	for _, contribution := range contributions {
		data = append(data, newSavingsContribution(c, contribution))
	}

	c.JSON(http.StatusOK, SavingsContributionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get contribution
// @Description	Returns a specific contribution
// @Tags			SavingsContributions
// @Produce		json
// @Success		200	{object}	SavingsContributionResponse
// @Failure		400	{object}	SavingsContributionResponse
// @Failure		404	{object}	SavingsContributionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contributions/{id} [get]
func GetSavingsContribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsContributionResponse{
			Error: &s,
		})
		return
	}

	contribution, err := models.ContributionForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsContributionResponse{
			Error: &s,
		})
		return
	}

	data := newSavingsContribution(c, contribution)
	c.JSON(http.StatusOK, SavingsContributionResponse{Data: &data})
}

// @Summary		Delete contribution
// @Description	Deletes a contribution and lowers the goal's current amount by its amount
// @Tags			SavingsContributions
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contributions/{id} [delete]
func DeleteSavingsContribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	contribution, err := models.ContributionForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteContribution(models.DB, contribution)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
