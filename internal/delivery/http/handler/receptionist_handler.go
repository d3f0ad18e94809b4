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

type ReceptionistHandler struct {
	receptionistUsecase usecase.AdminReceptionistUsecase
	uploadService       service.UploadService
	validator           *validator.CustomValidator
}

func NewReceptionistHandler(receptionistUsecase usecase.AdminReceptionistUsecase, uploadService service.UploadService, validator *validator.CustomValidator) *ReceptionistHandler {
	return &ReceptionistHandler{
		receptionistUsecase: receptionistUsecase,
		uploadService:       uploadService,
		validator:           validator,
	}
}

func (h *ReceptionistHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.receptionistUsecase.List(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("filter"))
	if err != nil {
		response.InternalServerError(w, "Failed to list receptionists")
		return
	}
	response.Success(w, http.StatusOK, "Receptionists retrieved successfully", list)
}

func (h *ReceptionistHandler) Search(w http.ResponseWriter, r *http.Request) {
	rows, err := h.receptionistUsecase.Search(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("filter"))
	if err != nil {
		response.InternalServerError(w, "Failed to search receptionists")
		return
	}
	response.Success(w, http.StatusOK, "Receptionists retrieved successfully", rows)
}

func (h *ReceptionistHandler) Get(w http.ResponseWriter, r *http.Request) {
	profileID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid receptionist ID")
		return
	}

	receptionist, err := h.receptionistUsecase.Get(r.Context(), profileID)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Receptionist not found")
		default:
			response.InternalServerError(w, "Failed to get receptionist")
		}
		return
	}
	response.Success(w, http.StatusOK, "Receptionist retrieved successfully", receptionist)
}

func (h *ReceptionistHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateReceptionistRequest
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

	receptionist, err := h.receptionistUsecase.Create(r.Context(), actorID, &req, imagePath)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create receptionist")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Receptionist created successfully", receptionist)
}

func (h *ReceptionistHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profileID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid receptionist ID")
		return
	}

	var req dto.UpdateReceptionistRequest
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

	receptionist, err := h.receptionistUsecase.Update(r.Context(), actorID, profileID, &req, imagePath)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Receptionist not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update receptionist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Receptionist updated successfully", receptionist)
}

func (h *ReceptionistHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "Receptionist activated successfully")
}

func (h *ReceptionistHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "Receptionist deactivated successfully")
}

func (h *ReceptionistHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profileID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid receptionist ID")
		return
	}

	if err := h.receptionistUsecase.SetActive(r.Context(), actorID, profileID, active); err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Receptionist not found")
		default:
			response.InternalServerError(w, "Failed to update receptionist status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}
