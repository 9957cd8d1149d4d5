package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
)

type MembershipLinks struct {
	Family string `json:"family" example:"https://example.com/api/v1/families/26f8cbad-3952-4781-972f-b0c27cdbdc1f"` // The family the membership belongs to
}

// Membership is the API v1 representation of a Membership.
type Membership struct {
	models.DefaultModel
	FamilyID    uuid.UUID               `json:"familyId" example:"26f8cbad-3952-4781-972f-b0c27cdbdc1f"`  // ID of the family
	UserID      uuid.UUID               `json:"userId" example:"d1b4d9ed-f5c5-4b50-a8cd-272631ee93f7"`    // ID of the member
	Role        models.MembershipRole   `json:"role" example:"member"`                                    // admin or member
	Status      models.MembershipStatus `json:"status" example:"pending"`                                 // pending, accepted or rejected
	InvitedBy   uuid.UUID               `json:"invitedBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who sent the invitation
	InvitedAt   time.Time               `json:"invitedAt" example:"2024-01-07T18:43:00.271152Z"`          // Time the invitation was sent
	RespondedAt *time.Time              `json:"respondedAt" example:"2024-01-08T09:12:54.813862Z"`        // Time the invitation was accepted or rejected
	Links       MembershipLinks         `json:"links"`
}

func newMembership(c *gin.Context, model models.Membership) Membership {
	url := c.GetString(string(models.ContextURL))

	return Membership{
		DefaultModel: model.DefaultModel,
		FamilyID:     model.FamilyID,
		UserID:       model.UserID,
		Role:         model.Role,
		Status:       model.Status,
		InvitedBy:    model.InvitedByID,
		InvitedAt:    model.InvitedAt,
		RespondedAt:  model.RespondedAt,
		Links: MembershipLinks{
			Family: fmt.Sprintf("%s/v1/families/%s", url, model.FamilyID),
		},
	}
}

type MembershipListResponse struct {
	Data  []Membership `json:"data"`                                                          // List of memberships
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MembershipResponse struct {
	Data  *Membership `json:"data"`                                                          // Data for the membership
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// InvitationResponseRequest is the decision on a pending invitation.
type InvitationResponseRequest struct {
	Decision models.InvitationDecision `json:"decision" binding:"required" example:"accept"` // accept or reject
}
