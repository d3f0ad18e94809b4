package handler

import (
	"net/http"

	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/delivery/http/middleware"
	"doctor-appointment-system/internal/service"
	"doctor-appointment-system/internal/usecase"
	"doctor-appointment-system/pkg/response"
	"doctor-appointment-system/pkg/validator"
)

type AdminProfileHandler struct {
	profileUsecase usecase.AdminProfileUsecase
	uploadService  service.UploadService
	validator      *validator.CustomValidator
}

func NewAdminProfileHandler(profileUsecase usecase.AdminProfileUsecase, uploadService service.UploadService, validator *validator.CustomValidator) *AdminProfileHandler {
	return &AdminProfileHandler{
		profileUsecase: profileUsecase,
		uploadService:  uploadService,
		validator:      validator,
	}
}

func (h *AdminProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.profileUsecase.Get(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}
	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *AdminProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateAdminProfileRequest
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

	profile, err := h.profileUsecase.Update(r.Context(), userID, &req, imagePath)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}
