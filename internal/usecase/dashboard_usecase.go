package usecase

import (
	"context"
	"fmt"

	"healthcare-auth/internal/delivery/dto"
	"healthcare-auth/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// DashboardUsecase resolves the per-role dashboard block. The stats are a
// static projection keyed by role; a real aggregation can replace this
// implementation without changing the contract shape.
type DashboardUsecase interface {
	GetDashboard(ctx context.Context, user *entity.User) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log *logrus.Logger
}

func NewDashboardUsecase(log *logrus.Logger) DashboardUsecase {
	return &dashboardUsecase{log: log}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context, user *entity.User) (*dto.DashboardResponse, error) {
	switch user.Role {
	case entity.RoleDoctor:
		return &dto.DashboardResponse{
			Role:           entity.RoleDoctor,
			WelcomeMessage: fmt.Sprintf("Welcome Dr. %s %s", user.FirstName, user.LastName),
			Stats: map[string]int{
				"total_patients":        45,
				"appointments_today":    8,
				"pending_consultations": 3,
			},
		}, nil
	case entity.RolePatient:
		return &dto.DashboardResponse{
			Role:           entity.RolePatient,
			WelcomeMessage: fmt.Sprintf("Welcome %s %s", user.FirstName, user.LastName),
			Stats: map[string]int{
				"upcoming_appointments": 2,
				"medical_records":       12,
				"prescriptions":         3,
			},
		}, nil
	case entity.RoleNurse:
		return &dto.DashboardResponse{
			Role:           entity.RoleNurse,
			WelcomeMessage: fmt.Sprintf("Welcome Nurse %s %s", user.FirstName, user.LastName),
			Stats: map[string]int{
				"patients_assigned": 15,
				"tasks_pending":     7,
				"shift_hours":       8,
			},
		}, nil
	default:
		// Registration guarantees one of the three roles; reaching this
		// means the row was tampered with outside the API.
		u.log.WithFields(logrus.Fields{
			"user_id": user.ID,
			"role":    user.Role,
		}).Warn("Dashboard requested for unrecognized role")
		return nil, ErrInvalidRole
	}
}
