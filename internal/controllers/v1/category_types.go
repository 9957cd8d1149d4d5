package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
)

type CategoryEditable struct {
	FamilyID uuid.UUID           `json:"familyId" example:"c8431323-3f68-4a8a-b073-2f318f9d2b94"` // ID of the family the category belongs to
	Name     string              `json:"name" example:"Groceries" default:""`                     // Name of the category
	Type     models.CategoryType `json:"type" example:"expense" default:""`                       // income or expense
}

// model returns the database resource for the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		FamilyID: editable.FamilyID,
		Name:     editable.Name,
		Type:     editable.Type,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/b07881ae-6aa1-4aa6-a0f8-cbbfc54e3097"`                     // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=b07881ae-6aa1-4aa6-a0f8-cbbfc54e3097"` // Transactions in the category
	Family       string `json:"family" example:"https://example.com/api/v1/families/c8431323-3f68-4a8a-b073-2f318f9d2b94"`                    // The family the category belongs to
}

// Category is the API v1 representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.ContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			FamilyID: model.FamilyID,
			Name:     model.Name,
			Type:     model.Type,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
			Family:       fmt.Sprintf("%s/v1/families/%s", url, model.FamilyID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the category name
	Family string `form:"family"`                     // By family ID
	Type   string `form:"type"`                       // By category type (income or expense)
	Search string `form:"search" filterField:"false"` // By string in the name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	familyID, err := hs_uuid.Parse(f.Family)
	if err != nil {
		return models.Category{}, err
	}

	return models.Category{
		FamilyID: familyID.UUID,
		Type:     models.CategoryType(f.Type),
	}, nil
}
