package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/hearthshare/backend/internal/controllers/v1"
	"github.com/hearthshare/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateSavingsGoal() {
	user := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})

	goal := createTestSavingsGoal(suite.T(), user, v1.SavingsGoalEditable{
		FamilyID:     family.Data.ID,
		Name:         "Summer vacation",
		TargetAmount: decimal.NewFromInt(1000),
	})

	suite.Assert().Equal("Summer vacation", goal.Data.Name)
	suite.Assert().True(goal.Data.CurrentAmount.IsZero())
	suite.Assert().True(goal.Data.Progress.IsZero())
}

func (suite *TestSuiteStandard) TestCreateSavingsGoalNonMember() {
	user := createTestUser(suite.T())
	outsider := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})

	_ = createTestSavingsGoal(suite.T(), outsider, v1.SavingsGoalEditable{
		FamilyID: family.Data.ID,
	}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateSavingsGoalInvalid() {
	user := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})

	_ = createTestSavingsGoal(suite.T(), user, v1.SavingsGoalEditable{
		FamilyID:     family.Data.ID,
		TargetAmount: decimal.NewFromInt(-100),
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetSavingsGoals() {
	user := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})
	other := createTestFamily(suite.T(), user, v1.FamilyEditable{})

	_ = createTestSavingsGoal(suite.T(), user, v1.SavingsGoalEditable{FamilyID: family.Data.ID, Name: "Summer vacation"})
	_ = createTestSavingsGoal(suite.T(), user, v1.SavingsGoalEditable{FamilyID: family.Data.ID, Name: "New car"})
	_ = createTestSavingsGoal(suite.T(), user, v1.SavingsGoalEditable{FamilyID: other.Data.ID, Name: "Elsewhere"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Family", "family=" + family.Data.ID.String(), 2},
		{"Search", "search=vacation", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/savings-goals?"+tt.query, "", test.BearerFor(t, user))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SavingsGoalListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateSavingsGoal() {
	user := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})
	goal := createTestSavingsGoal(suite.T(), user, v1.SavingsGoalEditable{FamilyID: family.Data.ID})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"targetAmount": "2000",
	}, test.BearerFor(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsGoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.TargetAmount.Equal(decimal.NewFromInt(2000)), "TargetAmount is %s, should be 2000", response.Data.TargetAmount)
}

func (suite *TestSuiteStandard) TestDeleteSavingsGoal() {
	user := createTestUser(suite.T())
	outsider := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})
	goal := createTestSavingsGoal(suite.T(), user, v1.SavingsGoalEditable{FamilyID: family.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "", test.BearerFor(suite.T(), outsider))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "", test.BearerFor(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestSavingsGoalProgressReported() {
	user := createTestUser(suite.T())
	family := createTestFamily(suite.T(), user, v1.FamilyEditable{})
	goal := createTestSavingsGoal(suite.T(), user, v1.SavingsGoalEditable{
		FamilyID:     family.Data.ID,
		TargetAmount: decimal.NewFromInt(1000),
	})

	_ = createTestContribution(suite.T(), user, v1.SavingsContributionEditable{
		GoalID: goal.Data.ID,
		Amount: decimal.NewFromInt(300),
	})

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", test.BearerFor(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsGoalResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.CurrentAmount.Equal(decimal.NewFromInt(300)), "CurrentAmount is %s, should be 300", response.Data.CurrentAmount)
	suite.Assert().True(response.Data.Progress.Equal(decimal.NewFromInt(30)), "Progress is %s, should be 30", response.Data.Progress)
}
