package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/errors"
	uploadDTO "github.com/johnquangdev/agency-cms/internal/adapter/dto/upload"
	"github.com/johnquangdev/agency-cms/internal/usecase/upload"
)

// Upload handles admin file uploads
type Upload struct {
	uploadService upload.Service
	logger        *zap.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService upload.Service, logger *zap.Logger) *Upload {
	return &Upload{uploadService: uploadService, logger: logger}
}

// UploadFile handles POST /admin/uploads
// @Summary      Upload a file
// @Description  Stores an image, video or PDF and returns its public URL. The type is sniffed from the content.
// @Tags         Admin Uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "File"
// @Success      201   {object}  upload.UploadResponse
// @Failure      400   {object}  map[string]interface{}  "Missing file"
// @Failure      413   {object}  map[string]interface{}  "File too large"
// @Failure      415   {object}  map[string]interface{}  "File type not allowed"
// @Router       /admin/uploads [post]
func (h *Upload) UploadFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := errors.ErrInvalidArgument("Multipart field \"file\" is required")
		appErr.Raw = err
		return HandleError(h.logger, c, appErr)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer file.Close()

	result, err := h.uploadService.Upload(c.Request().Context(), upload.Input{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Body:     file,
	})
	if err != nil {
		var appErr errors.AppError
		if !toAppError(c, err, &appErr) {
			appErr = errors.ErrStorageFailed("upload", err)
		}
		return HandleError(h.logger, c, appErr)
	}

	return HandleCreated(h.logger, c, &uploadDTO.UploadResponse{
		URL:         result.URL,
		ObjectName:  result.ObjectName,
		ContentType: result.ContentType,
		Size:        result.Size,
	})
}
