package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/hearthshare/backend/internal/controllers/v1"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/test"
)

func (suite *TestSuiteStandard) TestGetInvitations() {
	creator := createTestUser(suite.T())
	invitee := createTestUser(suite.T())

	family := createTestFamily(suite.T(), creator, v1.FamilyEditable{})

	r := test.Request(suite.T(), http.MethodPost, family.Data.Links.Self+"/invite", v1.InviteRequest{
		Email: invitee.Email,
	}, test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/invitations", "", test.BearerFor(suite.T(), invitee))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MembershipListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(family.Data.ID, response.Data[0].FamilyID)

	// The inviter has no pending invitations themselves
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/invitations", "", test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestRespondToInvitation() {
	creator := createTestUser(suite.T())
	invitee := createTestUser(suite.T())

	family := createTestFamily(suite.T(), creator, v1.FamilyEditable{})
	membership := acceptInvitation(suite.T(), creator, invitee, family)

	suite.Assert().Equal(models.StatusAccepted, membership.Data.Status)
	suite.Assert().NotNil(membership.Data.RespondedAt)

	// The accepted member can now see the family
	r := test.Request(suite.T(), http.MethodGet, family.Data.Links.Self, "", test.BearerFor(suite.T(), invitee))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestRejectInvitation() {
	creator := createTestUser(suite.T())
	invitee := createTestUser(suite.T())

	family := createTestFamily(suite.T(), creator, v1.FamilyEditable{})

	r := test.Request(suite.T(), http.MethodPost, family.Data.Links.Self+"/invite", v1.InviteRequest{
		Email: invitee.Email,
	}, test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var invitation v1.MembershipResponse
	test.DecodeResponse(suite.T(), &r, &invitation)

	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/invitations/%s/respond", invitation.Data.ID), v1.InvitationResponseRequest{
		Decision: models.DecisionReject,
	}, test.BearerFor(suite.T(), invitee))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MembershipResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.StatusRejected, response.Data.Status)

	// Rejecting does not grant access
	r = test.Request(suite.T(), http.MethodGet, family.Data.Links.Self, "", test.BearerFor(suite.T(), invitee))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRespondToInvitationInvalid() {
	creator := createTestUser(suite.T())
	invitee := createTestUser(suite.T())

	family := createTestFamily(suite.T(), creator, v1.FamilyEditable{})

	r := test.Request(suite.T(), http.MethodPost, family.Data.Links.Self+"/invite", v1.InviteRequest{
		Email: invitee.Email,
	}, test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var invitation v1.MembershipResponse
	test.DecodeResponse(suite.T(), &r, &invitation)

	respondURL := fmt.Sprintf("http://example.com/v1/invitations/%s/respond", invitation.Data.ID)

	r = test.Request(suite.T(), http.MethodPost, respondURL, v1.InvitationResponseRequest{
		Decision: "maybe",
	}, test.BearerFor(suite.T(), invitee))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Only the invitee can respond
	r = test.Request(suite.T(), http.MethodPost, respondURL, v1.InvitationResponseRequest{
		Decision: models.DecisionAccept,
	}, test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRemoveMemberEndpoint() {
	creator := createTestUser(suite.T())
	member := createTestUser(suite.T())

	family := createTestFamily(suite.T(), creator, v1.FamilyEditable{})
	membership := acceptInvitation(suite.T(), creator, member, family)

	memberURL := fmt.Sprintf("%s/members/%s", family.Data.Links.Self, membership.Data.ID)

	// Members cannot remove anyone
	r := test.Request(suite.T(), http.MethodDelete, memberURL, "", test.BearerFor(suite.T(), member))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, memberURL, "", test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The removed member lost access to the family
	r = test.Request(suite.T(), http.MethodGet, family.Data.Links.Self, "", test.BearerFor(suite.T(), member))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRemovedMemberCanBeReInvited() {
	creator := createTestUser(suite.T())
	member := createTestUser(suite.T())

	family := createTestFamily(suite.T(), creator, v1.FamilyEditable{})
	membership := acceptInvitation(suite.T(), creator, member, family)

	memberURL := fmt.Sprintf("%s/members/%s", family.Data.Links.Self, membership.Data.ID)

	r := test.Request(suite.T(), http.MethodDelete, memberURL, "", test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Removal leaves no membership behind, so inviting again starts a
	// fresh invitation
	r = test.Request(suite.T(), http.MethodPost, family.Data.Links.Self+"/invite", v1.InviteRequest{
		Email: member.Email,
	}, test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var invitation v1.MembershipResponse
	test.DecodeResponse(suite.T(), &r, &invitation)

	suite.Assert().NotEqual(membership.Data.ID, invitation.Data.ID)
	suite.Assert().Equal(models.StatusPending, invitation.Data.Status)
}

func (suite *TestSuiteStandard) TestRemoveLastAdminEndpoint() {
	creator := createTestUser(suite.T())
	family := createTestFamily(suite.T(), creator, v1.FamilyEditable{})

	r := test.Request(suite.T(), http.MethodGet, family.Data.Links.Members, "", test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var members v1.MembershipListResponse
	test.DecodeResponse(suite.T(), &r, &members)
	suite.Require().Len(members.Data, 1)

	memberURL := fmt.Sprintf("%s/members/%s", family.Data.Links.Self, members.Data[0].ID)

	r = test.Request(suite.T(), http.MethodDelete, memberURL, "", test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestPromoteMember() {
	creator := createTestUser(suite.T())
	member := createTestUser(suite.T())

	family := createTestFamily(suite.T(), creator, v1.FamilyEditable{})
	membership := acceptInvitation(suite.T(), creator, member, family)

	promoteURL := fmt.Sprintf("%s/members/%s/promote", family.Data.Links.Self, membership.Data.ID)

	// Members cannot promote
	r := test.Request(suite.T(), http.MethodPost, promoteURL, "", test.BearerFor(suite.T(), member))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodPost, promoteURL, "", test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MembershipResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.RoleAdmin, response.Data.Role)

	// Promoting an admin again conflicts
	r = test.Request(suite.T(), http.MethodPost, promoteURL, "", test.BearerFor(suite.T(), creator))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}
