package usecase

import (
	"context"
	"testing"

	"healthcare-auth/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardUser(role string) *entity.User {
	return &entity.User{
		ID:        1,
		Username:  "jdoe",
		FirstName: "John",
		LastName:  "Doe",
		Role:      role,
	}
}

func TestGetDashboardDoctor(t *testing.T) {
	u := NewDashboardUsecase(testLogger())

	dashboard, err := u.GetDashboard(context.Background(), dashboardUser(entity.RoleDoctor))
	require.NoError(t, err)

	assert.Equal(t, "doctor", dashboard.Role)
	assert.Equal(t, "Welcome Dr. John Doe", dashboard.WelcomeMessage)
	assert.Equal(t, map[string]int{
		"total_patients":        45,
		"appointments_today":    8,
		"pending_consultations": 3,
	}, dashboard.Stats)
}

func TestGetDashboardPatient(t *testing.T) {
	u := NewDashboardUsecase(testLogger())

	dashboard, err := u.GetDashboard(context.Background(), dashboardUser(entity.RolePatient))
	require.NoError(t, err)

	assert.Equal(t, "patient", dashboard.Role)
	assert.Equal(t, "Welcome John Doe", dashboard.WelcomeMessage)
	assert.Equal(t, map[string]int{
		"upcoming_appointments": 2,
		"medical_records":       12,
		"prescriptions":         3,
	}, dashboard.Stats)
}

func TestGetDashboardNurse(t *testing.T) {
	u := NewDashboardUsecase(testLogger())

	dashboard, err := u.GetDashboard(context.Background(), dashboardUser(entity.RoleNurse))
	require.NoError(t, err)

	assert.Equal(t, "nurse", dashboard.Role)
	assert.Equal(t, "Welcome Nurse John Doe", dashboard.WelcomeMessage)
	assert.Equal(t, map[string]int{
		"patients_assigned": 15,
		"tasks_pending":     7,
		"shift_hours":       8,
	}, dashboard.Stats)
}

func TestGetDashboardUnrecognizedRole(t *testing.T) {
	u := NewDashboardUsecase(testLogger())

	_, err := u.GetDashboard(context.Background(), dashboardUser("janitor"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}
