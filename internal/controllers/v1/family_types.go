package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
)

type FamilyEditable struct {
	Name string `json:"name" example:"Miller household" default:""` // Name of the family
	Note string `json:"note" example:"Joint finances" default:""`   // A longer description for the family
}

// model returns the database resource for the editable fields
func (editable FamilyEditable) model() models.Family {
	return models.Family{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type FamilyLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/families/26f8cbad-3952-4781-972f-b0c27cdbdc1f"`              // The family itself
	Members      string `json:"members" example:"https://example.com/api/v1/families/26f8cbad-3952-4781-972f-b0c27cdbdc1f/members"`   // Accepted members of the family
	Transactions string `json:"transactions" example:"https://example.com/api/v1/families/26f8cbad-3952-4781-972f-b0c27cdbdc1f/transactions"` // Transaction history of the family
	Analytics    string `json:"analytics" example:"https://example.com/api/v1/families/26f8cbad-3952-4781-972f-b0c27cdbdc1f/analytics"`       // Budget utilization and savings progress
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets?family=26f8cbad-3952-4781-972f-b0c27cdbdc1f"`     // Budgets of the family
}

// Family is the API v1 representation of a Family.
type Family struct {
	models.DefaultModel
	FamilyEditable
	CreatedBy uuid.UUID   `json:"createdBy" example:"d1b4d9ed-f5c5-4b50-a8cd-272631ee93f7"` // ID of the user who created the family
	Links     FamilyLinks `json:"links"`
}

func newFamily(c *gin.Context, model models.Family) Family {
	url := c.GetString(string(models.ContextURL))

	return Family{
		DefaultModel: model.DefaultModel,
		FamilyEditable: FamilyEditable{
			Name: model.Name,
			Note: model.Note,
		},
		CreatedBy: model.CreatedByID,
		Links: FamilyLinks{
			Self:         fmt.Sprintf("%s/v1/families/%s", url, model.ID),
			Members:      fmt.Sprintf("%s/v1/families/%s/members", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/families/%s/transactions", url, model.ID),
			Analytics:    fmt.Sprintf("%s/v1/families/%s/analytics", url, model.ID),
			Budgets:      fmt.Sprintf("%s/v1/budgets?family=%s", url, model.ID),
		},
	}
}

type FamilyListResponse struct {
	Data       []Family    `json:"data"`                                                          // List of families
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type FamilyResponse struct {
	Data  *Family `json:"data"`                                                          // Data for the family
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// LeaveResponse reports the outcome of leaving a family.
type LeaveResponse struct {
	Data  *LeaveResult `json:"data"`
	Error *string      `json:"error"` // The error, if any occurred
}

type LeaveResult struct {
	FamilyDeleted bool `json:"familyDeleted" example:"false"` // True when leaving removed the now-empty family as well
}

type InviteRequest struct {
	Email string `json:"email" binding:"required,email" example:"john@example.com"` // Email of the user to invite
}

type FamilyQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the family name
	Note   string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Family returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Families to return. Defaults to 50.
}
