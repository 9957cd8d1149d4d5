package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
)

// RegisterMemberManagementRoutes registers the admin operations on single
// memberships with the families RouterGroup that is passed.
func RegisterMemberManagementRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:id/members/:membershipId", OptionsMemberDetail)
		r.DELETE("/:id/members/:membershipId", RemoveMember)
		r.OPTIONS("/:id/members/:membershipId/promote", httputil.OptionsPost)
		r.POST("/:id/members/:membershipId/promote", PromoteMember)
	}
}

// RegisterInvitationRoutes registers the routes for the user's own
// invitations with the RouterGroup that is passed.
func RegisterInvitationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetInvitations)
		r.OPTIONS("/:id/respond", httputil.OptionsPost)
		r.POST("/:id/respond", RespondToInvitation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Memberships
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id				path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			membershipId	path	string	true	"ID of the membership"
// @Router			/v1/families/{id}/members/{membershipId} [options]
func OptionsMemberDetail(c *gin.Context) {
	var uri URIMembership
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("allow", "DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		List invitations
// @Description	Returns the user's pending invitations
// @Tags			Memberships
// @Produce		json
// @Success		200	{object}	MembershipListResponse
// @Failure		500	{object}	MembershipListResponse
// @Router			/v1/invitations [get]
func GetInvitations(c *gin.Context) {
	invitations, err := models.PendingInvitations(models.DB, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Membership, 0)
	for _, invitation := range invitations {
		data = append(data, newMembership(c, invitation))
	}

	c.JSON(http.StatusOK, MembershipListResponse{Data: data})
}

// @Summary		Respond to invitation
// @Description	Accepts or rejects a pending invitation of the user
// @Tags			Memberships
// @Produce		json
// @Success		200			{object}	MembershipResponse
// @Failure		400			{object}	MembershipResponse
// @Failure		404			{object}	MembershipResponse
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			decision	body		InvitationResponseRequest	true	"Decision"
// @Router			/v1/invitations/{id}/respond [post]
func RespondToInvitation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &s,
		})
		return
	}

	var request InvitationResponseRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &s,
		})
		return
	}

	membership, err := models.RespondToInvitation(models.DB, uri.ID.UUID, currentUser(c).ID, request.Decision)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &s,
		})
		return
	}

	data := newMembership(c, membership)
	c.JSON(http.StatusOK, MembershipResponse{Data: &data})
}

// @Summary		Remove member
// @Description	Removes an accepted member from the family. Admins only. The last admin cannot be removed.
// @Tags			Memberships
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Param			id				path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			membershipId	path	string	true	"ID of the membership"
// @Router			/v1/families/{id}/members/{membershipId} [delete]
func RemoveMember(c *gin.Context) {
	var uri URIMembership
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.RemoveMember(models.DB, uri.ID.UUID, uri.MembershipID.UUID, currentUser(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Promote member
// @Description	Promotes an accepted member to admin. Admins only.
// @Tags			Memberships
// @Produce		json
// @Success		200	{object}	MembershipResponse
// @Failure		400	{object}	MembershipResponse
// @Failure		403	{object}	MembershipResponse
// @Failure		404	{object}	MembershipResponse
// @Failure		409	{object}	MembershipResponse
// @Param			id				path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			membershipId	path	string	true	"ID of the membership"
// @Router			/v1/families/{id}/members/{membershipId}/promote [post]
func PromoteMember(c *gin.Context) {
	var uri URIMembership
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &s,
		})
		return
	}

	membership, err := models.PromoteToAdmin(models.DB, uri.ID.UUID, uri.MembershipID.UUID, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &s,
		})
		return
	}

	data := newMembership(c, membership)
	c.JSON(http.StatusOK, MembershipResponse{Data: &data})
}
