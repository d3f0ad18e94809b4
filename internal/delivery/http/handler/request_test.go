package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"doctor-appointment-system/internal/delivery/dto"
	"doctor-appointment-system/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestUploads(t *testing.T) service.UploadService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return service.NewUploadService(t.TempDir(), log)
}

func TestDecodeWithUploadJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Cardiology"}`))
	req.Header.Set("Content-Type", "application/json")

	var dst dto.CreateSpecialtyRequest
	imagePath, err := decodeWithUpload(req, newTestUploads(t), &dst)
	require.NoError(t, err)
	require.Empty(t, imagePath)
	require.Equal(t, "Cardiology", dst.Name)
}

func TestDecodeWithUploadInvalidJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{broken`))
	req.Header.Set("Content-Type", "application/json")

	var dst dto.CreateSpecialtyRequest
	_, err := decodeWithUpload(req, newTestUploads(t), &dst)
	require.ErrorIs(t, err, errInvalidBody)
}

func TestDecodeWithUploadMultipart(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("data", `{"first_name":"Jane","last_name":"Doe"}`))
	part, err := writer.CreateFormFile("profile_image", "avatar.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var dst dto.UpdatePatientRequest
	imagePath, err := decodeWithUpload(req, newTestUploads(t), &dst)
	require.NoError(t, err)
	require.Equal(t, "Jane", dst.FirstName)
	require.True(t, strings.HasPrefix(imagePath, "/uploads/users/"))
}

func TestDecodeWithUploadMultipartWithoutFile(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("data", `{"first_name":"Jane"}`))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var dst dto.UpdatePatientRequest
	imagePath, err := decodeWithUpload(req, newTestUploads(t), &dst)
	require.NoError(t, err)
	require.Empty(t, imagePath)
	require.Equal(t, "Jane", dst.FirstName)
}

func TestDecodeWithUploadRejectsBadExtension(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("profile_image", "script.js")
	require.NoError(t, err)
	_, err = part.Write([]byte("alert(1)"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var dst dto.UpdatePatientRequest
	_, err = decodeWithUpload(req, newTestUploads(t), &dst)
	require.ErrorIs(t, err, service.ErrUnsupportedImageType)
}
