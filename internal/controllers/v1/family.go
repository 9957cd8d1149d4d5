package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterFamilyRoutes registers the routes for families with
// the RouterGroup that is passed.
func RegisterFamilyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFamilyList)
		r.GET("", GetFamilies)
		r.POST("", CreateFamily)
	}

	// Family with ID
	{
		r.OPTIONS("/:id", OptionsFamilyDetail)
		r.GET("/:id", GetFamily)
		r.PATCH("/:id", UpdateFamily)
		r.DELETE("/:id", DeleteFamily)
	}

	// Membership operations on a family
	{
		r.OPTIONS("/:id/members", httputil.OptionsGet)
		r.GET("/:id/members", GetFamilyMembers)
		r.OPTIONS("/:id/invite", httputil.OptionsPost)
		r.POST("/:id/invite", InviteToFamily)
		r.OPTIONS("/:id/leave", httputil.OptionsPost)
		r.POST("/:id/leave", LeaveFamily)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Router			/v1/families [options]
func OptionsFamilyList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id} [options]
func OptionsFamilyDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.FamilyForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create family
// @Description	Creates a new family. The creator becomes its first accepted admin.
// @Tags			Families
// @Produce		json
// @Success		201		{object}	FamilyResponse
// @Failure		400		{object}	FamilyResponse
// @Failure		500		{object}	FamilyResponse
// @Param			family	body		FamilyEditable	true	"Family"
// @Router			/v1/families [post]
func CreateFamily(c *gin.Context) {
	var editable FamilyEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	family := editable.model()
	err = models.CreateFamily(models.DB, &family, currentUser(c).ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	data := newFamily(c, family)
	c.JSON(http.StatusCreated, FamilyResponse{Data: &data})
}

// @Summary		List families
// @Description	Returns the families the user is an accepted member of
// @Tags			Families
// @Produce		json
// @Success		200	{object}	FamilyListResponse
// @Failure		400	{object}	FamilyListResponse
// @Failure		500	{object}	FamilyListResponse
// @Router			/v1/families [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first Family returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Families to return. Defaults to 50."
func GetFamilies(c *gin.Context) {
	var filter FamilyQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, FamilyListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Model(&models.Family{}).
		Where("families.id IN (?)", models.AccessibleFamilyIDs(models.DB, currentUser(c).ID)).
		Order("name ASC")

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Families and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var families []models.Family
	err := q.Find(&families).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Family, 0)
	for _, family := range families {
		data = append(data, newFamily(c, family))
	}

	c.JSON(http.StatusOK, FamilyListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get family
// @Description	Returns a specific family
// @Tags			Families
// @Produce		json
// @Success		200	{object}	FamilyResponse
// @Failure		400	{object}	FamilyResponse
// @Failure		404	{object}	FamilyResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id} [get]
func GetFamily(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &s,
		})
		return
	}

	family, err := models.FamilyForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &s,
		})
		return
	}

	data := newFamily(c, family)
	c.JSON(http.StatusOK, FamilyResponse{Data: &data})
}

// @Summary		Update family
// @Description	Updates a family. Only values to be updated need to be specified.
// @Tags			Families
// @Produce		json
// @Success		200		{object}	FamilyResponse
// @Failure		400		{object}	FamilyResponse
// @Failure		404		{object}	FamilyResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			family	body		FamilyEditable	true	"Family"
// @Router			/v1/families/{id} [patch]
func UpdateFamily(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &s,
		})
		return
	}

	family, err := models.FamilyForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, FamilyEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &s,
		})
		return
	}

	var data FamilyEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&family).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &s,
		})
		return
	}

	apiResource := newFamily(c, family)
	c.JSON(http.StatusOK, FamilyResponse{Data: &apiResource})
}

// @Summary		Delete family
// @Description	Deletes a family with all its budgets, categories, goals and memberships. Only the creator can do this.
// @Tags			Families
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id} [delete]
func DeleteFamily(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user := currentUser(c)
	family, err := models.FamilyForUser(models.DB, uri.ID.UUID, user.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = family.Delete(models.DB, user.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		List family members
// @Description	Returns the accepted memberships of a family
// @Tags			Families
// @Produce		json
// @Success		200	{object}	MembershipListResponse
// @Failure		400	{object}	MembershipListResponse
// @Failure		404	{object}	MembershipListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id}/members [get]
func GetFamilyMembers(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipListResponse{
			Error: &s,
		})
		return
	}

	family, err := models.FamilyForUser(models.DB, uri.ID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipListResponse{
			Error: &s,
		})
		return
	}

	members, err := family.Members(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Membership, 0)
	for _, membership := range members {
		data = append(data, newMembership(c, membership))
	}

	c.JSON(http.StatusOK, MembershipListResponse{Data: data})
}

// @Summary		Invite user
// @Description	Invites a user to the family by email. Admins only.
// @Tags			Families
// @Produce		json
// @Success		201			{object}	MembershipResponse
// @Failure		400			{object}	MembershipResponse
// @Failure		403			{object}	MembershipResponse
// @Failure		404			{object}	MembershipResponse
// @Failure		409			{object}	MembershipResponse
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			invitation	body		InviteRequest	true	"Invitation"
// @Router			/v1/families/{id}/invite [post]
func InviteToFamily(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &s,
		})
		return
	}

	var request InviteRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	family, err := models.FamilyForUser(models.DB, uri.ID.UUID, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &s,
		})
		return
	}

	membership, err := family.Invite(models.DB, user.ID, request.Email)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &s,
		})
		return
	}

	data := newMembership(c, membership)
	c.JSON(http.StatusCreated, MembershipResponse{Data: &data})
}

// @Summary		Leave family
// @Description	Removes the user's own membership. When the creator leaves an otherwise empty family, the family is deleted too.
// @Tags			Families
// @Produce		json
// @Success		200	{object}	LeaveResponse
// @Failure		400	{object}	LeaveResponse
// @Failure		404	{object}	LeaveResponse
// @Failure		409	{object}	LeaveResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id}/leave [post]
func LeaveFamily(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LeaveResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	family, err := models.FamilyForUser(models.DB, uri.ID.UUID, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LeaveResponse{
			Error: &s,
		})
		return
	}

	deleted, err := family.Leave(models.DB, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LeaveResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, LeaveResponse{Data: &LeaveResult{FamilyDeleted: deleted}})
}
