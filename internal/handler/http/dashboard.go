package http

import (
	"log/slog"
	"net/http"

	"github.com/hrmspro/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmspro/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Company(w http.ResponseWriter, r *http.Request)
	Employee(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Company implements DashboardHandler.
func (h *dashboardHandlerImpl) Company(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Company(r.Context())
	if err != nil {
		slog.Error("Company dashboard error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Employee implements DashboardHandler.
func (h *dashboardHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Employee(r.Context())
	if err != nil {
		slog.Error("Employee dashboard error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
