package controllers_test

import (
	"net/http"
	"testing"

	"salescrm/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateSalesAgent_AsAdmin(t *testing.T) {
	store, router := newTestServer()
	admin := addUser(t, store, "admin", models.UserRoleADMIN)

	// payload里声明的role被忽略，创建出来的账号始终是sales_agent
	w := perform(t, router, http.MethodPost, "/sales-agent/", tokenFor(t, admin), payload{
		"username": "newagent",
		"email":    "newagent@example.com",
		"password": "pass1234",
		"role":     "admin",
	})

	env := requireEnvelope(t, w, http.StatusCreated, "Sales agent created successfully.")

	var data models.UserResponse
	decodeData(t, env, &data)
	assert.Equal(t, "newagent", data.Username)
	assert.Equal(t, "newagent@example.com", data.Email)
	assert.Equal(t, models.UserRoleSALES_AGENT, data.Role)

	// 新账号可以直接登录
	w = perform(t, router, http.MethodPost, "/auth/token/", "", payload{
		"username": "newagent",
		"password": "pass1234",
	})
	requireEnvelope(t, w, http.StatusOK, "Token created successfully.")
}

func TestCreateSalesAgent_AsSalesAgent(t *testing.T) {
	store, router := newTestServer()
	agent := addUser(t, store, "agent1", models.UserRoleSALES_AGENT)

	w := perform(t, router, http.MethodPost, "/sales-agent/", tokenFor(t, agent), payload{
		"username": "newagent",
		"email":    "newagent@example.com",
		"password": "pass1234",
	})
	requireEnvelope(t, w, http.StatusForbidden, "You do not have permission to perform this action.")
}

func TestCreateSalesAgent_NoToken(t *testing.T) {
	_, router := newTestServer()

	w := perform(t, router, http.MethodPost, "/sales-agent/", "", payload{
		"username": "newagent",
		"email":    "newagent@example.com",
		"password": "pass1234",
	})
	requireEnvelope(t, w, http.StatusUnauthorized, "Authentication credentials were not provided.")
}

func TestCreateSalesAgent_Validation(t *testing.T) {
	store, router := newTestServer()
	admin := addUser(t, store, "admin", models.UserRoleADMIN)
	addUser(t, store, "taken", models.UserRoleSALES_AGENT)

	tests := []struct {
		name   string
		body   payload
		field  string
		errMsg string
	}{
		{"missing username", payload{"email": "a@b.com", "password": "p"}, "username", "This field is required."},
		{"missing email", payload{"username": "x", "password": "p"}, "email", "This field is required."},
		{"missing password", payload{"username": "x", "email": "a@b.com"}, "password", "This field is required."},
		{"invalid email", payload{"username": "x", "email": "not-an-email", "password": "p"}, "email", "Enter a valid email address."},
		{"duplicate username", payload{"username": "taken", "email": "new@b.com", "password": "p"}, "username", "A user with that username already exists."},
		{"duplicate email", payload{"username": "fresh", "email": "taken@example.com", "password": "p"}, "email", "A user with that email already exists."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, router, http.MethodPost, "/sales-agent/", tokenFor(t, admin), tt.body)
			env := requireEnvelope(t, w, http.StatusBadRequest, "Invalid or missing fields.")

			var fields map[string][]string
			decodeData(t, env, &fields)
			assert.Contains(t, fields[tt.field], tt.errMsg)
		})
	}
}
