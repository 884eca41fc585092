package upload

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
)

// allowedTypes maps sniffed content types to the extension used for the
// stored object
var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"application/pdf": ".pdf",
}

// TooLargeError is returned for files above the size limit
type TooLargeError struct {
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("%d bytes exceeds the %d byte limit", e.Size, e.Limit)
}

func (e *TooLargeError) Unwrap() error {
	return usecaseErrors.ErrUploadTooLarge
}

// RejectedTypeError is returned for files whose sniffed type is not allowed
type RejectedTypeError struct {
	ContentType string
}

func (e *RejectedTypeError) Error() string {
	return fmt.Sprintf("content type %s is not allowed", e.ContentType)
}

func (e *RejectedTypeError) Unwrap() error {
	return usecaseErrors.ErrUploadContentType
}

// ObjectStore stores a file and returns the URL it is served from
type ObjectStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// Service defines the upload use case
type Service interface {
	// Upload checks and stores a file, returning where it can be fetched
	Upload(ctx context.Context, input Input) (*Result, error)
}

// Input describes an uploaded file
type Input struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// Result describes a stored file
type Result struct {
	URL         string
	ObjectName  string
	ContentType string
	Size        int64
}

var _ Service = (*UploadService)(nil)

// UploadService validates uploads and hands them to an ObjectStore
type UploadService struct {
	store    ObjectStore
	maxBytes int64
	logger   *zap.Logger
	now      func() time.Time
}

// NewUploadService creates a new upload service
func NewUploadService(store ObjectStore, maxBytes int64, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{store: store, maxBytes: maxBytes, logger: logger, now: time.Now}
}

// MaxBytes returns the size limit for a single file
func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload sniffs the content type from the first bytes of the file; the
// client-declared type is not trusted
func (s *UploadService) Upload(ctx context.Context, input Input) (*Result, error) {
	if input.Size <= 0 || input.Body == nil {
		return nil, usecaseErrors.ErrUploadEmpty
	}
	if s.maxBytes > 0 && input.Size > s.maxBytes {
		return nil, &TooLargeError{Size: input.Size, Limit: s.maxBytes}
	}

	body := bufio.NewReaderSize(input.Body, 512)
	head, err := body.Peek(512)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	contentType := http.DetectContentType(head)
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	ext, ok := allowedTypes[contentType]
	if !ok {
		return nil, &RejectedTypeError{ContentType: contentType}
	}

	objectName := fmt.Sprintf("uploads/%s/%s%s", s.now().UTC().Format("2006/01"), uuid.NewString(), ext)
	url, err := s.store.Put(ctx, objectName, body, input.Size, contentType)
	if err != nil {
		return nil, err
	}

	s.logger.Info("upload.stored",
		zap.String("object_name", objectName),
		zap.String("original_name", input.Filename),
		zap.String("content_type", contentType),
		zap.Int64("size", input.Size),
	)

	return &Result{
		URL:         url,
		ObjectName:  objectName,
		ContentType: contentType,
		Size:        input.Size,
	}, nil
}
