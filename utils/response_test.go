package utils_test

import (
	"testing"
	"time"

	"salescrm/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope_StatusFromCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		code   int
		status string
	}{
		{"ok", 200, "success"},
		{"created", 201, "success"},
		{"redirect", 302, "success"},
		{"bad request", 400, "error"},
		{"unauthorized", 401, "error"},
		{"forbidden", 403, "error"},
		{"not found", 404, "error"},
		{"server error", 500, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := utils.NewEnvelope(tt.code, "msg", nil)
			assert.Equal(t, tt.status, env.Status)
			assert.Equal(t, tt.code, env.Code)
			assert.Equal(t, "msg", env.Message)
		})
	}
}

func TestNewEnvelope_Timestamp(t *testing.T) {
	t.Parallel()

	env := utils.NewEnvelope(200, "ok", nil)
	ts, err := time.Parse(time.RFC3339, env.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
}

func TestNewEnvelope_DataPassthrough(t *testing.T) {
	t.Parallel()

	data := map[string]string{"k": "v"}
	env := utils.NewEnvelope(200, "ok", data)
	assert.Equal(t, data, env.Data)

	env = utils.NewEnvelope(404, "missing", nil)
	assert.Nil(t, env.Data)
}
