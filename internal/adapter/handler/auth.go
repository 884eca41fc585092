package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authDTO "github.com/johnquangdev/agency-cms/internal/adapter/dto/auth"
	"github.com/johnquangdev/agency-cms/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Login exchanges the admin API key for an access token
// @Summary      Admin login
// @Description  Exchanges the admin API key for a JWT access token. Repeated failures from one client are locked out.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.LoginRequest  true  "API key"
// @Success      200      {object}  auth.TokenResponse
// @Failure      401      {object}  map[string]interface{}  "Invalid API key"
// @Failure      429      {object}  map[string]interface{}  "Too many failed attempts"
// @Router       /auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	token, err := h.authService.Login(c.Request().Context(), req.APIKey, c.RealIP())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &authDTO.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		ExpiresIn:   token.ExpiresIn,
	})
}
