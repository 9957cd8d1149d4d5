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

type SavingsGoalEditable struct {
	FamilyID     uuid.UUID       `json:"familyId" example:"c8431323-3f68-4a8a-b073-2f318f9d2b94"`                      // ID of the family the goal belongs to
	Name         string          `json:"name" example:"Summer vacation" default:""`                                    // Name of the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"1000" default:"0" minimum:"0" maximum:"999999999999.99"` // The amount the family is saving towards
	TargetDate   *types.Date     `json:"targetDate" example:"2024-08-01"`                                              // Optional date the goal should be reached by
}

// model returns the database resource for the editable fields
func (editable SavingsGoalEditable) model() models.SavingsGoal {
	return models.SavingsGoal{
		FamilyID:     editable.FamilyID,
		Name:         editable.Name,
		TargetAmount: editable.TargetAmount,
		TargetDate:   editable.TargetDate,
	}
}

type SavingsGoalLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/savings-goals/e6fa8eb5-7f2e-4b2f-b3bb-040f1e147a22"`                       // The goal itself
	Contributions string `json:"contributions" example:"https://example.com/api/v1/contributions?goal=e6fa8eb5-7f2e-4b2f-b3bb-040f1e147a22"` // Contributions towards the goal
	Family        string `json:"family" example:"https://example.com/api/v1/families/c8431323-3f68-4a8a-b073-2f318f9d2b94"`                   // The family the goal belongs to
}

// SavingsGoal is the API v1 representation of a SavingsGoal.
type SavingsGoal struct {
	models.DefaultModel
	SavingsGoalEditable
	CurrentAmount decimal.Decimal  `json:"currentAmount" example:"300"` // Sum of all contributions, maintained by the backend
	Progress      decimal.Decimal  `json:"progress" example:"30"`       // Percentage of the target amount saved so far
	CreatedBy     uuid.UUID        `json:"createdBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who created the goal
	Links         SavingsGoalLinks `json:"links"`
}

func newSavingsGoal(c *gin.Context, model models.SavingsGoal) SavingsGoal {
	url := c.GetString(string(models.ContextURL))

	return SavingsGoal{
		DefaultModel: model.DefaultModel,
		SavingsGoalEditable: SavingsGoalEditable{
			FamilyID:     model.FamilyID,
			Name:         model.Name,
			TargetAmount: model.TargetAmount,
			TargetDate:   model.TargetDate,
		},
		CurrentAmount: model.CurrentAmount,
		Progress:      model.Progress(),
		CreatedBy:     model.CreatedByID,
		Links: SavingsGoalLinks{
			Self:          fmt.Sprintf("%s/v1/savings-goals/%s", url, model.ID),
			Contributions: fmt.Sprintf("%s/v1/contributions?goal=%s", url, model.ID),
			Family:        fmt.Sprintf("%s/v1/families/%s", url, model.FamilyID),
		},
	}
}

type SavingsGoalListResponse struct {
	Data       []SavingsGoal `json:"data"`                                                          // List of savings goals
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type SavingsGoalResponse struct {
	Data  *SavingsGoal `json:"data"`                                                          // Data for the savings goal
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingsGoalQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the goal name
	Family string `form:"family"`                     // By family ID
	Search string `form:"search" filterField:"false"` // By string in the name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first SavingsGoal returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of SavingsGoals to return. Defaults to 50.
}

func (f SavingsGoalQueryFilter) model() (models.SavingsGoal, error) {
	familyID, err := hs_uuid.Parse(f.Family)
	if err != nil {
		return models.SavingsGoal{}, err
	}

	return models.SavingsGoal{
		FamilyID: familyID.UUID,
	}, nil
}
