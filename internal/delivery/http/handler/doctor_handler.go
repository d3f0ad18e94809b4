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

type DoctorHandler struct {
	doctorUsecase usecase.AdminDoctorUsecase
	uploadService service.UploadService
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.AdminDoctorUsecase, uploadService service.UploadService, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		uploadService: uploadService,
		validator:     validator,
	}
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.doctorUsecase.List(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("filter"))
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", list)
}

func (h *DoctorHandler) Search(w http.ResponseWriter, r *http.Request) {
	rows, err := h.doctorUsecase.Search(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("filter"))
	if err != nil {
		response.InternalServerError(w, "Failed to search doctors")
		return
	}
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", rows)
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	profileID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.Get(r.Context(), profileID)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}
	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateDoctorRequest
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

	doctor, err := h.doctorUsecase.Create(r.Context(), actorID, &req, imagePath)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profileID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.UpdateDoctorRequest
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

	doctor, err := h.doctorUsecase.Update(r.Context(), actorID, profileID, &req, imagePath)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "Doctor activated successfully")
}

func (h *DoctorHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "Doctor deactivated successfully")
}

func (h *DoctorHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profileID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.SetActive(r.Context(), actorID, profileID, active); err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to update doctor status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}
