package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/errors"
	"github.com/johnquangdev/agency-cms/internal/adapter/dto/common"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
	"github.com/johnquangdev/agency-cms/internal/usecase/content"
	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
	"github.com/johnquangdev/agency-cms/internal/usecase/upload"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID reads X-Request-ID from the request, or the one generated by
// the request id middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized 201 response
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusCreated, data)
}

func respond(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger.
// Use case errors are translated to AppErrors first.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) || toAppError(c, err, &appErr) {
		if logger != nil {
			log := logger.Warn
			if appErr.HTTPCode >= http.StatusInternalServerError {
				log = logger.Error
			}
			log("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		// raw causes of server-side failures stay in the log
		info := ""
		if appErr.Raw != nil && appErr.HTTPCode < http.StatusInternalServerError {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// toAppError maps use case and validation errors onto AppErrors. It
// reports false for errors that should surface as 500.
func toAppError(c echo.Context, err error, out *errors.AppError) bool {
	slug := c.Param("slug")

	var shortage *content.FAQShortageError
	var storeErr *content.StoreError
	var tooLarge *upload.TooLargeError
	var rejected *upload.RejectedTypeError
	var validationErrs validator.ValidationErrors

	switch {
	case stdErrors.As(err, &shortage):
		*out = errors.ErrNotEnoughFAQs(shortage.Have, shortage.Want)
	case stdErrors.As(err, &storeErr):
		*out = errors.ErrDBQueryFailed(storeErr.Op, storeErr.Err)
	case stdErrors.Is(err, usecaseErrors.ErrCacheUnavailable):
		*out = errors.ErrCacheFailed("count login attempts", err)
	case stdErrors.As(err, &tooLarge):
		*out = errors.ErrUploadTooLarge(tooLarge.Size, tooLarge.Limit)
	case stdErrors.As(err, &rejected):
		*out = errors.ErrUploadRejected(rejected.ContentType)
	case stdErrors.As(err, &validationErrs):
		*out = errors.ErrInvalidArgument("Validation failed")
		for _, fe := range validationErrs {
			*out = out.WithDetail(fe.Field(), fe.Tag())
		}
	case stdErrors.Is(err, usecaseErrors.ErrPostNotFound):
		*out = errors.ErrPostNotFound(slug)
	case stdErrors.Is(err, usecaseErrors.ErrVideoNotFound):
		*out = errors.ErrVideoNotFound(slug)
	case stdErrors.Is(err, usecaseErrors.ErrReviewNotFound):
		*out = errors.ErrReviewNotFound(slug)
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		*out = errors.ErrNotFound("Resource")
	case stdErrors.Is(err, usecaseErrors.ErrSlugTaken):
		*out = errors.ErrSlugTaken(slug)
		out.Raw = err
	case stdErrors.Is(err, usecaseErrors.ErrAlreadyExists):
		*out = errors.ErrAlreadyExists("Resource")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		*out = errors.ErrInvalidArgument("Invalid input")
		out.Raw = err
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		*out = errors.ErrInvalidCredentials()
	case stdErrors.Is(err, usecaseErrors.ErrTooManyAttempts):
		*out = errors.ErrTooManyAttempts()
	case stdErrors.Is(err, usecaseErrors.ErrTokenExpired):
		*out = errors.ErrTokenExpired()
	case stdErrors.Is(err, usecaseErrors.ErrTokenInvalid):
		*out = errors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
		*out = errors.ErrUnauthenticated()
	case stdErrors.Is(err, usecaseErrors.ErrUploadEmpty):
		*out = errors.ErrInvalidArgument("File is empty")
	default:
		return false
	}
	return true
}

// bindAndValidate binds the request into req and runs the registered
// validator. Bind failures are reported as an invalid payload.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		appErr := errors.ErrInvalidPayload()
		appErr.Raw = err
		return appErr
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// buildFilters converts list query parameters to repository filters
func buildFilters(req *common.ListRequest, published *bool) repositories.ContentFilters {
	req.Normalize()
	return repositories.ContentFilters{
		Published: published,
		Tag:       req.Tag,
		Search:    req.Search,
		Limit:     req.PageSize,
		Offset:    req.Offset(),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
}
