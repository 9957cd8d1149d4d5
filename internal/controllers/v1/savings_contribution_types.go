package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
)

type SavingsContributionEditable struct {
	GoalID uuid.UUID       `json:"goalId" example:"e6fa8eb5-7f2e-4b2f-b3bb-040f1e147a22"`                 // ID of the savings goal
	Amount decimal.Decimal `json:"amount" example:"50" default:"0" minimum:"0" maximum:"999999999999.99"` // The amount of the contribution
	Date   types.Date      `json:"date" example:"2024-03-16"`                                             // Date of the contribution. Defaults to the current day.
}

// model returns the database resource for the editable fields
func (editable SavingsContributionEditable) model() models.SavingsContribution {
	return models.SavingsContribution{
		GoalID: editable.GoalID,
		Amount: editable.Amount,
		Date:   editable.Date,
	}
}

type SavingsContributionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/contributions/a37ae33b-b4f1-4677-a6e4-7f946a414adf"`  // The contribution itself
	Goal string `json:"goal" example:"https://example.com/api/v1/savings-goals/e6fa8eb5-7f2e-4b2f-b3bb-040f1e147a22"` // The goal the contribution pays into
}

// SavingsContribution is the API v1 representation of a SavingsContribution.
type SavingsContribution struct {
	models.DefaultModel
	SavingsContributionEditable
	CreatedBy uuid.UUID                `json:"createdBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who created the contribution
	Links     SavingsContributionLinks `json:"links"`
}

func newSavingsContribution(c *gin.Context, model models.SavingsContribution) SavingsContribution {
	url := c.GetString(string(models.ContextURL))

	return SavingsContribution{
		DefaultModel: model.DefaultModel,
		SavingsContributionEditable: SavingsContributionEditable{
			GoalID: model.GoalID,
			Amount: model.Amount,
			Date:   model.Date,
		},
		CreatedBy: model.CreatedByID,
		Links: SavingsContributionLinks{
			Self: fmt.Sprintf("%s/v1/contributions/%s", url, model.ID),
			Goal: fmt.Sprintf("%s/v1/savings-goals/%s", url, model.GoalID),
		},
	}
}

type SavingsContributionListResponse struct {
	Data       []SavingsContribution `json:"data"`                                                          // List of contributions
	Error      *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination           `json:"pagination"`                                                    // Pagination information
}

type SavingsContributionResponse struct {
	Data  *SavingsContribution `json:"data"`                                                          // Data for the contribution
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingsContributionQueryFilter struct {
	Goal   string `form:"goal"`                       // By goal ID
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first SavingsContribution returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of SavingsContributions to return. Defaults to 50.
}

func (f SavingsContributionQueryFilter) model() (models.SavingsContribution, error) {
	goalID, err := hs_uuid.Parse(f.Goal)
	if err != nil {
		return models.SavingsContribution{}, err
	}

	return models.SavingsContribution{
		GoalID: goalID.UUID,
	}, nil
}
