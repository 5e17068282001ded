package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadBytes = 20 << 20 // 20 MiB

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
	".pdf":  true,
}

type UploadServiceInterface interface {
	// Save writes the uploaded file under the upload directory with a
	// uuid-prefixed name and returns the public path.
	Save(c *gin.Context, file *multipart.FileHeader) (string, error)
}

type UploadService struct {
	dir    string
	logger *zap.Logger
}

func NewUploadService(logger *zap.Logger) UploadServiceInterface {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return &UploadService{dir: dir, logger: logger}
}

func (s *UploadService) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxUploadBytes {
		return "", fmt.Errorf("file exceeds %d bytes", maxUploadBytes)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		return "", fmt.Errorf("file type %q not allowed", ext)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	// Original name is discarded; only the extension survives.
	name := uuid.NewString() + ext
	dst := filepath.Join(s.dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		s.logger.Error("upload save failed", zap.String("dst", dst), zap.Error(err))
		return "", err
	}
	return "/uploads/" + name, nil
}
