package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/models"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
)

type URIID struct {
	ID hs_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// URIMembership addresses a membership within a family.
type URIMembership struct {
	URIID
	MembershipID hs_uuid.UUID `uri:"membershipId" binding:"required" format:"UUID"` // ID of the membership
}

type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}

// currentUser returns the acting user the auth middleware resolved.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(string(models.ContextUser)).(models.User)
}
