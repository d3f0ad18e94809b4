package service

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrUnsupportedImageType = errors.New("unsupported image type")

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadService stores profile images on local disk under
// {dir}/users/{uuid}{ext} and returns the web-relative path.
type UploadService interface {
	SaveProfileImage(file multipart.File, header *multipart.FileHeader) (string, error)
	DeleteProfileImage(relativePath string)
}

type uploadService struct {
	dir string
	log *logrus.Logger
}

func NewUploadService(dir string, log *logrus.Logger) UploadService {
	return &uploadService{dir: dir, log: log}
}

func (s *uploadService) SaveProfileImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return "", ErrUnsupportedImageType
	}

	userDir := filepath.Join(s.dir, "users")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		s.log.Warnf("Failed to create upload directory: %+v", err)
		return "", err
	}

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(userDir, filename))
	if err != nil {
		s.log.Warnf("Failed to create upload file: %+v", err)
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		s.log.Warnf("Failed to write upload file: %+v", err)
		return "", err
	}

	return "/uploads/users/" + filename, nil
}

// DeleteProfileImage removes a previously stored image. Best effort: a
// missing file is not an error worth surfacing to the caller.
func (s *uploadService) DeleteProfileImage(relativePath string) {
	if relativePath == "" {
		return
	}
	trimmed := strings.TrimPrefix(relativePath, "/uploads/")
	if trimmed == relativePath {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(trimmed))); err != nil && !os.IsNotExist(err) {
		s.log.Warnf("Failed to delete old profile image %s: %+v", relativePath, err)
	}
}
