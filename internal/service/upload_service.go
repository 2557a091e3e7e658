package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/clc-api/pkg/errors"
	"github.com/noah-isme/clc-api/pkg/storage"
)

var contentTypeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// UploadConfig bounds accepted marksheet files.
type UploadConfig struct {
	MaxFileSizeBytes  int64
	AllowedExtensions []string
	StoreTimeout      time.Duration
}

// UploadService validates marksheet uploads and forwards them to the
// object store. Validation failures leave no side effects.
type UploadService struct {
	store  storage.ObjectStore
	config UploadConfig
	logger *zap.Logger
}

// NewUploadService constructs an UploadService.
func NewUploadService(store storage.ObjectStore, config UploadConfig, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.MaxFileSizeBytes <= 0 {
		config.MaxFileSizeBytes = 20 * 1024 * 1024
	}
	if len(config.AllowedExtensions) == 0 {
		config.AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
	}
	if config.StoreTimeout <= 0 {
		config.StoreTimeout = 30 * time.Second
	}
	return &UploadService{store: store, config: config, logger: logger}
}

// Accept validates the file against the extension allow-list and size cap,
// then stores it and returns the durable reference. The declared size is
// the server-side authority; clients may pre-filter tighter bands but are
// not trusted to.
func (s *UploadService) Accept(ctx context.Context, filename string, size int64, body io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !s.extensionAllowed(ext) {
		return "", appErrors.Clone(appErrors.ErrInvalidFileType, "")
	}
	if size <= 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "marksheet file is empty")
	}
	if size > s.config.MaxFileSizeBytes {
		return "", appErrors.Clone(appErrors.ErrFileTooLarge, "")
	}

	contentType := contentTypeByExt[ext]
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := uuid.NewString() + ext

	storeCtx, cancel := context.WithTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	url, err := s.store.Put(storeCtx, key, contentType, io.LimitReader(body, size))
	if err != nil {
		s.logger.Warn("marksheet upload failed", zap.String("key", key), zap.Error(err))
		return "", appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, appErrors.ErrUploadFailed.Message)
	}

	s.logger.Info("marksheet stored", zap.String("key", key), zap.Int64("size_bytes", size))
	return url, nil
}

// ResolveURL turns a stored marksheet reference into a fetchable URL.
func (s *UploadService) ResolveURL(ref string) (string, error) {
	return s.store.ResolveURL(ref)
}

func (s *UploadService) extensionAllowed(ext string) bool {
	for _, allowed := range s.config.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
