package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"salescrm/models"
	"salescrm/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceList(t *testing.T) {
	store, router := newTestServer()
	agent := addUser(t, store, "agent1", models.UserRoleSALES_AGENT)

	w := perform(t, router, http.MethodGet, "/services/", tokenFor(t, agent), nil)
	env := requireEnvelope(t, w, http.StatusOK, "No services found.")
	assert.JSONEq(t, "[]", string(env.Data))

	store.AddService(models.Service{Name: "Audit", Description: "Security audit"})
	store.AddService(models.Service{Name: "Support", Description: "Yearly support"})

	w = perform(t, router, http.MethodGet, "/services/", tokenFor(t, agent), nil)
	env = requireEnvelope(t, w, http.StatusOK, "Services retrieved successfully.")
	var list []models.Service
	decodeData(t, env, &list)
	assert.Len(t, list, 2)
}

func TestServiceList_Unauthenticated(t *testing.T) {
	_, router := newTestServer()

	w := perform(t, router, http.MethodGet, "/services/", "", nil)
	requireEnvelope(t, w, http.StatusUnauthorized, "Authentication credentials were not provided.")
}

func TestServiceCRUD_BothRoles(t *testing.T) {
	store, router := newTestServer()
	admin := addUser(t, store, "admin", models.UserRoleADMIN)
	agent := addUser(t, store, "agent1", models.UserRoleSALES_AGENT)

	// 服务目录对两种角色都开放完整CRUD
	for _, user := range []models.User{admin, agent} {
		token := tokenFor(t, user)

		w := perform(t, router, http.MethodPost, "/services/", token, payload{
			"name":        "Audit " + user.Username,
			"description": "Security audit",
			"price":       "999.00",
		})
		env := requireEnvelope(t, w, http.StatusCreated, "Service created successfully.")

		var created models.Service
		decodeData(t, env, &created)
		require.NotZero(t, created.ID)
		require.NotNil(t, created.Price)
		assert.Equal(t, "999.00", *created.Price)

		path := fmt.Sprintf("/services/%d/", created.ID)

		w = perform(t, router, http.MethodGet, path, token, nil)
		requireEnvelope(t, w, http.StatusOK, "Service retrieved successfully.")

		w = perform(t, router, http.MethodPatch, path, token, payload{"price": "1299.00"})
		env = requireEnvelope(t, w, http.StatusOK, "Service updated successfully.")
		var patched models.Service
		decodeData(t, env, &patched)
		require.NotNil(t, patched.Price)
		assert.Equal(t, "1299.00", *patched.Price)
		assert.Equal(t, created.Name, patched.Name)

		w = perform(t, router, http.MethodDelete, path, token, nil)
		requireEnvelope(t, w, http.StatusOK, "Service successfully deleted.")

		_, err := repository.Services.FindByID(created.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	}
}

func TestServiceDetail_NotFound(t *testing.T) {
	store, router := newTestServer()
	agent := addUser(t, store, "agent1", models.UserRoleSALES_AGENT)

	w := perform(t, router, http.MethodGet, "/services/42/", tokenFor(t, agent), nil)
	requireEnvelope(t, w, http.StatusNotFound, "Service not found.")
}

func TestServiceValidation(t *testing.T) {
	store, router := newTestServer()
	agent := addUser(t, store, "agent1", models.UserRoleSALES_AGENT)

	tests := []struct {
		name   string
		body   payload
		field  string
		errMsg string
	}{
		{"missing name", payload{"description": "d"}, "name", "This field is required."},
		{"blank name", payload{"name": "", "description": "d"}, "name", "This field may not be blank."},
		{"missing description", payload{"name": "Audit"}, "description", "This field is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, router, http.MethodPost, "/services/", tokenFor(t, agent), tt.body)
			env := requireEnvelope(t, w, http.StatusBadRequest, "Invalid or missing fields.")

			var fields map[string][]string
			decodeData(t, env, &fields)
			assert.Contains(t, fields[tt.field], tt.errMsg)
		})
	}

	// price 可省略
	w := perform(t, router, http.MethodPost, "/services/", tokenFor(t, agent), payload{
		"name":        "Audit",
		"description": "Security audit",
	})
	env := requireEnvelope(t, w, http.StatusCreated, "Service created successfully.")
	var created models.Service
	decodeData(t, env, &created)
	assert.Nil(t, created.Price)
}
