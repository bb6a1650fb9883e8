package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcare-auth/internal/delivery/http/middleware"
	"healthcare-auth/internal/domain/entity"
	"healthcare-auth/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardHandler() *DashboardHandler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewDashboardHandler(usecase.NewDashboardUsecase(log))
}

func getDashboard(t *testing.T, user *entity.User) *httptest.ResponseRecorder {
	t.Helper()
	h := dashboardHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserKey, user))
	rec := httptest.NewRecorder()
	h.GetDashboard(rec, req)
	return rec
}

func TestGetDashboardDoctorPayload(t *testing.T) {
	user := testUser()
	user.Role = entity.RoleDoctor

	rec := getDashboard(t, user)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Role           string         `json:"role"`
		WelcomeMessage string         `json:"welcome_message"`
		Stats          map[string]int `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "doctor", body.Role)
	assert.Equal(t, "Welcome Dr. John Doe", body.WelcomeMessage)
	assert.Equal(t, map[string]int{
		"total_patients":        45,
		"appointments_today":    8,
		"pending_consultations": 3,
	}, body.Stats)
}

func TestGetDashboardInvalidRole(t *testing.T) {
	user := testUser()
	user.Role = "janitor"

	rec := getDashboard(t, user)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid role", body["error"])
}

func TestGetDashboardMissingUser(t *testing.T) {
	h := dashboardHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	h.GetDashboard(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
