package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/hearthshare/backend/internal/controllers/v1"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateCategory() {
	user := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})

	category := createTestCategory(suite.T(), user, v1.CategoryEditable{
		FamilyID: family.Data.ID,
		Name:     "Groceries",
	})

	suite.Assert().Equal("Groceries", category.Data.Name)
	suite.Assert().Equal(models.CategoryTypeExpense, category.Data.Type)
}

func (suite *TestSuiteStandard) TestCreateCategoryDuplicate() {
	user := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})

	editable := v1.CategoryEditable{
		FamilyID: family.Data.ID,
		Name:     "Groceries",
		Type:     models.CategoryTypeExpense,
	}

	_ = createTestCategory(suite.T(), user, editable)
	_ = createTestCategory(suite.T(), user, editable, http.StatusConflict)

	// The same name with the other type is a different category
	editable.Type = models.CategoryTypeIncome
	_ = createTestCategory(suite.T(), user, editable)
}

func (suite *TestSuiteStandard) TestCreateCategoryNonMember() {
	user := createTestUser(suite.T())
	outsider := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})

	_ = createTestCategory(suite.T(), outsider, v1.CategoryEditable{
		FamilyID: family.Data.ID,
	}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	user := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})

	_ = createTestCategory(suite.T(), user, v1.CategoryEditable{FamilyID: family.Data.ID, Name: "Groceries"})
	_ = createTestCategory(suite.T(), user, v1.CategoryEditable{FamilyID: family.Data.ID, Name: "Salary", Type: models.CategoryTypeIncome})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 2},
		{"Type", "type=income", 1},
		{"Search", "search=grocer", 1},
		{"Family", "family=" + family.Data.ID.String(), 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/categories?"+tt.query, "", test.BearerFor(t, user))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	user := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})
	category := createTestCategory(suite.T(), user, v1.CategoryEditable{FamilyID: family.Data.ID, Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]string{
		"name": "Food",
	}, test.BearerFor(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Food", response.Data.Name)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	user := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})
	category := createTestCategory(suite.T(), user, v1.CategoryEditable{FamilyID: family.Data.ID})
	budget := createTestBudget(suite.T(), user, v1.BudgetEditable{FamilyID: family.Data.ID})

	categoryID := category.Data.ID
	transaction := createTestTransaction(suite.T(), user, v1.TransactionEditable{
		BudgetID:   budget.Data.ID,
		CategoryID: &categoryID,
	})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "", test.BearerFor(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Transactions in the category survive its deletion
	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "", test.BearerFor(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
