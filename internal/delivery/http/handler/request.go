package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"doctor-appointment-system/internal/service"
)

const maxUploadSize = 10 << 20 // 10 MB

var errInvalidBody = errors.New("invalid request body")

// decodeWithUpload decodes a create/update request that may arrive as
// plain JSON or as multipart form data with the JSON payload in the
// "data" field and an optional "profile_image" file. It returns the
// stored image path when a file was uploaded.
func decodeWithUpload(r *http.Request, uploads service.UploadService, dst interface{}) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return "", errInvalidBody
		}
		return "", nil
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", errInvalidBody
	}

	payload := r.FormValue("data")
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), dst); err != nil {
			return "", errInvalidBody
		}
	}

	file, header, err := r.FormFile("profile_image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", errInvalidBody
	}
	defer file.Close()

	return uploads.SaveProfileImage(file, header)
}
