package handler

import (
	"net/http"
	"strconv"

	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/usecase"
	"doctor-appointment-system/pkg/response"
	"doctor-appointment-system/pkg/validator"
)

// DoctorDirectoryHandler serves the paginated "Find a Doctor" listing
// used by patients and receptionists.
type DoctorDirectoryHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorDirectoryHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DoctorDirectoryHandler {
	return &DoctorDirectoryHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *DoctorDirectoryHandler) Directory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := &dto.DoctorDirectoryQuery{
		Name:       q.Get("name"),
		Experience: q.Get("experience"),
	}
	if v := q.Get("specialty_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid specialty ID")
			return
		}
		query.SpecialtyID = id
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid page number")
			return
		}
		query.Page = page
	}

	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.directoryUsecase.Directory(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to load doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
