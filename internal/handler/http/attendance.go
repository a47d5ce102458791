package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hrmspro/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmspro/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// PunchIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.PunchIn(r.Context())
	if err != nil {
		slog.Error("Punch in error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in", result)
}

// PunchOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.PunchOut(r.Context())
	if err != nil {
		slog.Error("Punch out error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out", result)
}

// Today implements AttendanceHandler. Punch state for the current day;
// data is null when the employee has not punched in yet.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Today(r.Context())
	if err != nil {
		slog.Error("Today attendance error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements AttendanceHandler. The employee_id query parameter
// is honored for reviewers only.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	filter := attendance.HistoryFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			response.BadRequest(w, "Invalid limit", nil)
			return
		}
		filter.Limit = limit
	}

	result, err := h.attendanceService.History(r.Context(), r.URL.Query().Get("employee_id"), filter)
	if err != nil {
		slog.Error("Attendance history error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Summary(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		slog.Error("Attendance summary error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
