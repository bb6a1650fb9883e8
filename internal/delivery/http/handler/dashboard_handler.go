package handler

import (
	"errors"
	"net/http"

	"healthcare-auth/internal/delivery/http/middleware"
	"healthcare-auth/internal/usecase"
	"healthcare-auth/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetDashboard returns the role-specific dashboard block
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), user)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRole) {
			response.Error(w, http.StatusBadRequest, "Invalid role")
			return
		}
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.JSON(w, http.StatusOK, dashboard)
}
