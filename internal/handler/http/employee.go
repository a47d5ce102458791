package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
	"github.com/hrmspro/hrms-backend-go/internal/handler/http/response"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	UploadProfilePicture(w http.ResponseWriter, r *http.Request)
	Directory(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	ChangeRole(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService user.EmployeeService
}

func NewEmployeeHandler(employeeService user.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Me implements EmployeeHandler.
func (h *employeeHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Profile(r.Context())
	if err != nil {
		slog.Error("Get profile error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ProfileByEmployeeID(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		slog.Error("Get employee error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update profile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.UpdateProfile(r.Context(), req)
	if err != nil {
		slog.Error("Update profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", result)
}

// UploadProfilePicture implements EmployeeHandler.
func (h *employeeHandlerImpl) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(storage.MaxProfilePictureSize); err != nil {
		slog.Error("Profile picture parse error", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("picture")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'picture' is required", nil)
			return
		}
		slog.Error("Profile picture form error", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	result, err := h.employeeService.UploadProfilePicture(
		r.Context(), file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		slog.Error("Profile picture service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile picture updated", result)
}

// Directory implements EmployeeHandler.
func (h *employeeHandlerImpl) Directory(w http.ResponseWriter, r *http.Request) {
	filter := user.DirectoryFilter{
		Department: r.URL.Query().Get("department"),
		Role:       r.URL.Query().Get("role"),
	}

	result, err := h.employeeService.Directory(r.Context(), filter)
	if err != nil {
		slog.Error("Directory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Departments implements EmployeeHandler.
func (h *employeeHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Departments(r.Context())
	if err != nil {
		slog.Error("Departments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements EmployeeHandler. Admin only, enforced in the
// service as well as by the route middleware.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created", result)
}

// ChangeRole implements EmployeeHandler.
func (h *employeeHandlerImpl) ChangeRole(w http.ResponseWriter, r *http.Request) {
	var req user.ChangeRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Change role decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	result, err := h.employeeService.ChangeRole(r.Context(), req)
	if err != nil {
		slog.Error("Change role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role updated", result)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
		slog.Error("Delete user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account deleted", nil)
}
