package service

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func uploadRequest(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("profile_image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("profile_image")
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file, header
}

func TestSaveProfileImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, newTestLogger())

	file, header := uploadRequest(t, "avatar.PNG", []byte("fake-png-bytes"))

	path, err := svc.SaveProfileImage(file, header)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "/uploads/users/"))
	require.True(t, strings.HasSuffix(path, ".png"))

	stored := filepath.Join(dir, "users", filepath.Base(path))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	require.Equal(t, []byte("fake-png-bytes"), data)
}

func TestSaveProfileImageRejectsUnsupportedType(t *testing.T) {
	svc := NewUploadService(t.TempDir(), newTestLogger())

	file, header := uploadRequest(t, "payload.exe", []byte("nope"))

	_, err := svc.SaveProfileImage(file, header)
	require.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestDeleteProfileImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, newTestLogger())

	file, header := uploadRequest(t, "avatar.jpg", []byte("x"))
	path, err := svc.SaveProfileImage(file, header)
	require.NoError(t, err)

	svc.DeleteProfileImage(path)

	_, statErr := os.Stat(filepath.Join(dir, "users", filepath.Base(path)))
	require.True(t, os.IsNotExist(statErr))
}

func TestDeleteProfileImageIgnoresForeignPaths(t *testing.T) {
	svc := NewUploadService(t.TempDir(), newTestLogger())

	// Paths that never came from this service are left alone
	svc.DeleteProfileImage("")
	svc.DeleteProfileImage("/etc/passwd")
	svc.DeleteProfileImage("users/loose.png")
}
