package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterSavingsGoalRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func RegisterSavingsGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsGoalList)
		r.GET("", GetSavingsGoals)
		r.POST("", CreateSavingsGoal)
	}

	// SavingsGoal with ID
	{
		r.OPTIONS("/:id", OptionsSavingsGoalDetail)
		r.GET("/:id", GetSavingsGoal)
		r.PATCH("/:id", UpdateSavingsGoal)
		r.DELETE("/:id", DeleteSavingsGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Router			/v1/savings-goals [options]
func OptionsSavingsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [options]
func OptionsSavingsGoalDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.SavingsGoalForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create savings goal
// @Description	Creates a new savings goal in a family the user is a member of. The current amount always starts at zero.
// @Tags			SavingsGoals
// @Produce		json
// @Success		201		{object}	SavingsGoalResponse
// @Failure		400		{object}	SavingsGoalResponse
// @Failure		404		{object}	SavingsGoalResponse
// @Param			goal	body		SavingsGoalEditable	true	"SavingsGoal"
// @Router			/v1/savings-goals [post]
func CreateSavingsGoal(c *gin.Context) {
	var editable SavingsGoalEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)
	_, err = models.AcceptedMembership(models.DB, editable.FamilyID, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	goal := editable.model()
	goal.CreatedByID = user.ID

	err = models.DB.Create(&goal).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	data := newSavingsGoal(c, goal)
	c.JSON(http.StatusCreated, SavingsGoalResponse{Data: &data})
}

// @Summary		List savings goals
// @Description	Returns savings goals in the user's families
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	SavingsGoalListResponse
// @Failure		400	{object}	SavingsGoalListResponse
// @Failure		500	{object}	SavingsGoalListResponse
// @Router			/v1/savings-goals [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			family	query	string	false	"Filter by family ID"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first SavingsGoal returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of SavingsGoals to return. Defaults to 50."
func GetSavingsGoals(c *gin.Context) {
	var filter SavingsGoalQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SavingsGoalListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &s,
		})
		return
	}

	q := models.SavingsGoalsForUser(models.DB, currentUser(c).ID).
		Order("name ASC").
		Where(&model, queryFields...)

	// Savings goals have no note, so only the name is searchable
	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 SavingsGoals and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var goals []models.SavingsGoal
	err = q.Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &e,
		})
		return
	}

	data := make([]SavingsGoal, 0)
	for _, goal := range goals {
		data = append(data, newSavingsGoal(c, goal))
	}

	c.JSON(http.StatusOK, SavingsGoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get savings goal
// @Description	Returns a specific savings goal
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	SavingsGoalResponse
// @Failure		400	{object}	SavingsGoalResponse
// @Failure		404	{object}	SavingsGoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [get]
func GetSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	goal, err := models.SavingsGoalForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	data := newSavingsGoal(c, goal)
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &data})
}

// @Summary		Update savings goal
// @Description	Updates a savings goal. The current amount cannot be set, it follows the contributions.
// @Tags			SavingsGoals
// @Produce		json
// @Success		200		{object}	SavingsGoalResponse
// @Failure		400		{object}	SavingsGoalResponse
// @Failure		404		{object}	SavingsGoalResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		SavingsGoalEditable	true	"SavingsGoal"
// @Router			/v1/savings-goals/{id} [patch]
func UpdateSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	goal, err := models.SavingsGoalForUser(models.DB, uri.ID.UUID, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SavingsGoalEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	var data SavingsGoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	// Moving a goal requires membership in the target family as well
	if slices.Contains(updateFields, any("FamilyID")) {
		_, err = models.AcceptedMembership(models.DB, data.FamilyID, user.ID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), SavingsGoalResponse{
				Error: &s,
			})
			return
		}
	}

	err = models.DB.Model(&goal).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSavingsGoal(c, goal)
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &apiResource})
}

// @Summary		Delete savings goal
// @Description	Deletes a savings goal with all its contributions
// @Tags			SavingsGoals
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [delete]
func DeleteSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	goal, err := models.SavingsGoalForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
