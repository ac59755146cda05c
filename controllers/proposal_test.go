package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"salescrm/models"
	"salescrm/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// proposalFixture 在咨询单fixture上再加一条咨询单
type proposalFixture struct {
	inquiryFixture
	inquiry models.Inquiry
}

func seedProposalFixture(t *testing.T, store *repository.MemoryStore) proposalFixture {
	t.Helper()
	fx := seedInquiryFixture(t, store)
	inq := store.AddInquiry(models.Inquiry{
		Details: "Need an audit", Status: models.InquiryStatusOPEN,
		CustomerID: fx.customer.ID, AssignedSalesAgentID: fx.agent.ID,
		Services: []models.Service{fx.svc1},
	})
	return proposalFixture{inquiryFixture: fx, inquiry: inq}
}

func TestCreateProposal(t *testing.T) {
	store, router := newTestServer()
	fx := seedProposalFixture(t, store)

	w := perform(t, router, http.MethodPost, "/proposals/", tokenFor(t, fx.agent), payload{
		"inquiry":  fx.inquiry.ID,
		"details":  "Audit package",
		"services": []uint{fx.svc1.ID, fx.svc2.ID},
		"cost":     "1500.00",
	})
	env := requireEnvelope(t, w, http.StatusCreated, "Proposal created successfully.")

	var data models.ProposalResponse
	decodeData(t, env, &data)
	assert.Equal(t, "Audit package", data.Details)
	assert.Equal(t, models.ProposalStatusPENDING, data.Status)
	assert.True(t, data.Cost.Equal(decimal.RequireFromString("1500.00")), data.Cost.String())
	assert.Len(t, data.Services, 2)

	// inquiry 完整展开，含其自身的关联对象
	assert.Equal(t, fx.inquiry.ID, data.Inquiry.ID)
	assert.Equal(t, "Acme", data.Inquiry.Customer.Name)
	require.NotNil(t, data.Inquiry.AssignedSalesAgent)
	assert.Equal(t, fx.agent.Username, data.Inquiry.AssignedSalesAgent.Username)
}

func TestCreateProposal_Validation(t *testing.T) {
	store, router := newTestServer()
	fx := seedProposalFixture(t, store)
	token := tokenFor(t, fx.agent)

	tests := []struct {
		name   string
		body   payload
		field  string
		errMsg string
	}{
		{"missing inquiry", payload{"details": "d", "services": []uint{fx.svc1.ID}, "cost": "1"}, "inquiry", "This field is required."},
		{"missing details", payload{"inquiry": fx.inquiry.ID, "services": []uint{fx.svc1.ID}, "cost": "1"}, "details", "This field is required."},
		{"missing services", payload{"inquiry": fx.inquiry.ID, "details": "d", "cost": "1"}, "services", "This field is required."},
		{"missing cost", payload{"inquiry": fx.inquiry.ID, "details": "d", "services": []uint{fx.svc1.ID}}, "cost", "This field is required."},
		{"unknown inquiry", payload{"inquiry": 9999, "details": "d", "services": []uint{fx.svc1.ID}, "cost": "1"}, "inquiry", `Invalid pk "9999" - object does not exist.`},
		{"unknown service", payload{"inquiry": fx.inquiry.ID, "details": "d", "services": []uint{7777}, "cost": "1"}, "services", `Invalid pk "7777" - object does not exist.`},
		{"invalid status", payload{"inquiry": fx.inquiry.ID, "details": "d", "services": []uint{fx.svc1.ID}, "cost": "1", "status": "Maybe"}, "status", `"Maybe" is not a valid choice.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, router, http.MethodPost, "/proposals/", token, tt.body)
			env := requireEnvelope(t, w, http.StatusBadRequest, "Invalid or missing fields.")

			var fields map[string][]string
			decodeData(t, env, &fields)
			assert.Contains(t, fields[tt.field], tt.errMsg)
		})
	}
}

func TestProposalList_Scoping(t *testing.T) {
	store, router := newTestServer()
	fx := seedProposalFixture(t, store)
	admin := addUser(t, store, "admin", models.UserRoleADMIN)
	agent2 := addUser(t, store, "agent2", models.UserRoleSALES_AGENT)

	otherInq := store.AddInquiry(models.Inquiry{Details: "other", CustomerID: fx.customer.ID, AssignedSalesAgentID: agent2.ID})
	store.AddProposal(models.Proposal{InquiryID: fx.inquiry.ID, Details: "mine", Status: models.ProposalStatusPENDING})
	store.AddProposal(models.Proposal{InquiryID: otherInq.ID, Details: "theirs", Status: models.ProposalStatusPENDING})

	w := perform(t, router, http.MethodGet, "/proposals/", tokenFor(t, admin), nil)
	env := requireEnvelope(t, w, http.StatusOK, "Proposals retrieved successfully.")
	var adminList []models.ProposalResponse
	decodeData(t, env, &adminList)
	assert.Len(t, adminList, 2)

	// 归属经由所属咨询单的销售代表推导
	w = perform(t, router, http.MethodGet, "/proposals/", tokenFor(t, fx.agent), nil)
	env = requireEnvelope(t, w, http.StatusOK, "Proposals retrieved successfully.")
	var agentList []models.ProposalResponse
	decodeData(t, env, &agentList)
	require.Len(t, agentList, 1)
	assert.Equal(t, "mine", agentList[0].Details)
}

func TestProposalList_Empty(t *testing.T) {
	store, router := newTestServer()
	agent := addUser(t, store, "agent1", models.UserRoleSALES_AGENT)

	w := perform(t, router, http.MethodGet, "/proposals/", tokenFor(t, agent), nil)
	env := requireEnvelope(t, w, http.StatusOK, "No proposals found.")
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestProposalDetail_OutOfScope(t *testing.T) {
	store, router := newTestServer()
	fx := seedProposalFixture(t, store)
	agent2 := addUser(t, store, "agent2", models.UserRoleSALES_AGENT)

	prop := store.AddProposal(models.Proposal{InquiryID: fx.inquiry.ID, Details: "offer"})
	path := fmt.Sprintf("/proposals/%d/", prop.ID)

	w := perform(t, router, http.MethodGet, path, tokenFor(t, fx.agent), nil)
	requireEnvelope(t, w, http.StatusOK, "Proposal retrieved successfully.")

	w = perform(t, router, http.MethodGet, path, tokenFor(t, agent2), nil)
	requireEnvelope(t, w, http.StatusNotFound, "Proposal not found.")
}

func TestUpdateProposal_AnyAgent(t *testing.T) {
	store, router := newTestServer()
	fx := seedProposalFixture(t, store)
	agent2 := addUser(t, store, "agent2", models.UserRoleSALES_AGENT)

	prop := store.AddProposal(models.Proposal{
		InquiryID: fx.inquiry.ID, Details: "offer",
		Status: models.ProposalStatusPENDING,
		Cost:   decimal.RequireFromString("1500.00"),
	})
	path := fmt.Sprintf("/proposals/%d/", prop.ID)

	// 更新不做归属校验，任何销售代表都可以改
	w := perform(t, router, http.MethodPatch, path, tokenFor(t, agent2), payload{"status": "Accepted"})
	env := requireEnvelope(t, w, http.StatusOK, "Proposal updated successfully.")

	var data models.ProposalResponse
	decodeData(t, env, &data)
	assert.Equal(t, models.ProposalStatusACCEPTED, data.Status)
	assert.Equal(t, "offer", data.Details)
	assert.True(t, data.Cost.Equal(decimal.RequireFromString("1500.00")))
}

func TestUpdateProposal_Full(t *testing.T) {
	store, router := newTestServer()
	fx := seedProposalFixture(t, store)

	prop := store.AddProposal(models.Proposal{
		InquiryID: fx.inquiry.ID, Details: "offer",
		Status:   models.ProposalStatusPENDING,
		Cost:     decimal.RequireFromString("1500.00"),
		Services: []models.Service{fx.svc1},
	})

	w := perform(t, router, http.MethodPut, fmt.Sprintf("/proposals/%d/", prop.ID), tokenFor(t, fx.agent), payload{
		"inquiry":  fx.inquiry.ID,
		"details":  "revised offer",
		"services": []uint{fx.svc2.ID},
		"status":   "Rejected",
		"cost":     "1750.50",
	})
	env := requireEnvelope(t, w, http.StatusOK, "Proposal updated successfully.")

	var data models.ProposalResponse
	decodeData(t, env, &data)
	assert.Equal(t, "revised offer", data.Details)
	assert.Equal(t, models.ProposalStatusREJECTED, data.Status)
	assert.True(t, data.Cost.Equal(decimal.RequireFromString("1750.50")))
	require.Len(t, data.Services, 1)
	assert.Equal(t, fx.svc2.ID, data.Services[0].ID)
}

func TestDeleteProposal_AnyAgent(t *testing.T) {
	store, router := newTestServer()
	fx := seedProposalFixture(t, store)
	agent2 := addUser(t, store, "agent2", models.UserRoleSALES_AGENT)

	prop := store.AddProposal(models.Proposal{InquiryID: fx.inquiry.ID, Details: "offer"})
	path := fmt.Sprintf("/proposals/%d/", prop.ID)

	// 删除同样不做归属校验
	w := perform(t, router, http.MethodDelete, path, tokenFor(t, agent2), nil)
	requireEnvelope(t, w, http.StatusOK, "Proposal successfully deleted.")

	_, err := repository.Proposals.FindByID(prop.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	w = perform(t, router, http.MethodDelete, path, tokenFor(t, agent2), nil)
	requireEnvelope(t, w, http.StatusNotFound, "Proposal not found.")
}
