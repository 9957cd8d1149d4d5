package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	FamilyID  uuid.UUID           `json:"familyId" example:"c8431323-3f68-4a8a-b073-2f318f9d2b94"`                           // ID of the family the budget belongs to
	Name      string              `json:"name" example:"Groceries" default:""`                                               // Name of the budget
	Amount    decimal.Decimal     `json:"amount" example:"500" default:"0" minimum:"0" maximum:"999999999999.99"`            // The planned amount
	Type      models.BudgetType   `json:"type" example:"expense" default:""`                                                 // income or expense
	Period    models.BudgetPeriod `json:"period" example:"monthly" default:""`                                               // weekly, monthly or yearly
	Note      string              `json:"note" example:"Everything from the supermarket" default:""`                         // A longer description for the budget
	StartDate types.Date          `json:"startDate" example:"2024-03-01"`                                                    // First day the budget applies to
	EndDate   types.Date          `json:"endDate" example:"2024-03-31"`                                                      // Last day the budget applies to
}

// model returns the database resource for the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		FamilyID:  editable.FamilyID,
		Name:      editable.Name,
		Amount:    editable.Amount,
		Type:      editable.Type,
		Period:    editable.Period,
		Note:      editable.Note,
		StartDate: editable.StartDate,
		EndDate:   editable.EndDate,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                  // The budget itself
	Summary      string `json:"summary" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/summary"`       // Spent and remaining amounts for the budget
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Transactions booked against the budget
	Family       string `json:"family" example:"https://example.com/api/v1/families/c8431323-3f68-4a8a-b073-2f318f9d2b94"`               // The family the budget belongs to
}

// Budget is the API v1 representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	CreatedBy uuid.UUID   `json:"createdBy" example:"9b4ff4aa-d2f1-4276-b2b5-4b8a43922a34"` // ID of the user who created the budget
	Links     BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.ContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			FamilyID:  model.FamilyID,
			Name:      model.Name,
			Amount:    model.Amount,
			Type:      model.Type,
			Period:    model.Period,
			Note:      model.Note,
			StartDate: model.StartDate,
			EndDate:   model.EndDate,
		},
		CreatedBy: model.CreatedByID,
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Summary:      fmt.Sprintf("%s/v1/budgets/%s/summary", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?budget=%s", url, model.ID),
			Family:       fmt.Sprintf("%s/v1/families/%s", url, model.FamilyID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// BudgetSummary is a budget with its computed spent and remaining amounts.
type BudgetSummary struct {
	Budget
	Spent     decimal.Decimal `json:"spent" example:"324.49"`     // Sum of all transactions booked against the budget
	Remaining decimal.Decimal `json:"remaining" example:"175.51"` // Remaining amount; for income budgets the amount still missing
}

type BudgetSummaryResponse struct {
	Data  *BudgetSummary `json:"data"`  // Data for the budget
	Error *string        `json:"error"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the budget name
	Note   string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Family string `form:"family"`                     // By family ID
	Type   string `form:"type"`                       // By budget type (income or expense)
	Period string `form:"period"`                     // By period (weekly, monthly or yearly)
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() (models.Budget, error) {
	familyID, err := hs_uuid.Parse(f.Family)
	if err != nil {
		return models.Budget{}, err
	}

	return models.Budget{
		FamilyID: familyID.UUID,
		Type:     models.BudgetType(f.Type),
		Period:   models.BudgetPeriod(f.Period),
	}, nil
}
