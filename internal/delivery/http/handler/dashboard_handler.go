package handler

import (
	"net/http"

	"doctor-appointment-system/internal/delivery/http/middleware"
	"doctor-appointment-system/internal/usecase"
	"doctor-appointment-system/pkg/response"
)

// DashboardHandler serves the role-specific landing pages. Each
// endpoint is additionally gated by the matching role middleware.
type DashboardHandler struct {
	adminDashboard        usecase.AdminDashboardUsecase
	doctorDashboard       usecase.DoctorDashboardUsecase
	patientDashboard      usecase.PatientDashboardUsecase
	receptionistDashboard usecase.ReceptionistDashboardUsecase
}

func NewDashboardHandler(
	adminDashboard usecase.AdminDashboardUsecase,
	doctorDashboard usecase.DoctorDashboardUsecase,
	patientDashboard usecase.PatientDashboardUsecase,
	receptionistDashboard usecase.ReceptionistDashboardUsecase,
) *DashboardHandler {
	return &DashboardHandler{
		adminDashboard:        adminDashboard,
		doctorDashboard:       doctorDashboard,
		patientDashboard:      patientDashboard,
		receptionistDashboard: receptionistDashboard,
	}
}

func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.adminDashboard.GetDashboard(r.Context(), userID)
	if err != nil {
		writeDashboardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *DashboardHandler) Doctor(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.doctorDashboard.GetDashboard(r.Context(), userID)
	if err != nil {
		writeDashboardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *DashboardHandler) Patient(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.patientDashboard.GetDashboard(r.Context(), userID)
	if err != nil {
		writeDashboardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *DashboardHandler) Receptionist(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.receptionistDashboard.GetDashboard(r.Context(), userID)
	if err != nil {
		writeDashboardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func writeDashboardError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrAccountInactive:
		response.Forbidden(w, err.Error())
	default:
		response.InternalServerError(w, "Failed to load dashboard")
	}
}
