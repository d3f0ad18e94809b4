package handler

import (
	"net/http"
	"strconv"

	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/delivery/http/middleware"
	"doctor-appointment-system/internal/service"
	"doctor-appointment-system/internal/usecase"
	"doctor-appointment-system/pkg/response"
	"doctor-appointment-system/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.AdminPatientUsecase
	uploadService  service.UploadService
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.AdminPatientUsecase, uploadService service.UploadService, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		uploadService:  uploadService,
		validator:      validator,
	}
}

func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.patientUsecase.List(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("filter"))
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}
	response.Success(w, http.StatusOK, "Patients retrieved successfully", list)
}

func (h *PatientHandler) Search(w http.ResponseWriter, r *http.Request) {
	rows, err := h.patientUsecase.Search(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("filter"))
	if err != nil {
		response.InternalServerError(w, "Failed to search patients")
		return
	}
	response.Success(w, http.StatusOK, "Patients retrieved successfully", rows)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	profileID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), profileID)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}
	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePatientRequest
	imagePath, err := decodeWithUpload(r, h.uploadService, &req)
	if err != nil {
		switch err {
		case service.ErrUnsupportedImageType:
			response.BadRequest(w, err.Error())
		default:
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		}
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), actorID, &req, imagePath)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profileID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.UpdatePatientRequest
	imagePath, err := decodeWithUpload(r, h.uploadService, &req)
	if err != nil {
		switch err {
		case service.ErrUnsupportedImageType:
			response.BadRequest(w, err.Error())
		default:
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		}
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), actorID, profileID, &req, imagePath)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "Patient activated successfully")
}

func (h *PatientHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "Patient deactivated successfully")
}

func (h *PatientHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profileID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.SetActive(r.Context(), actorID, profileID, active); err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to update patient status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}
