package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
	"github.com/johnquangdev/agency-cms/pkg/jwt"
)

const (
	// MaxFailedLogins is the number of bad API keys accepted from one client
	// within FailureWindow before further attempts are refused
	MaxFailedLogins = 5
	FailureWindow   = 15 * time.Minute
)

// Service defines the admin authentication use cases
type Service interface {
	// Login exchanges the admin API key for an access token
	Login(ctx context.Context, apiKey, clientIP string) (*Token, error)

	// Authenticate validates an access token and returns its claims
	Authenticate(token string) (*jwt.Claims, error)
}

// Token is an issued access token
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	ExpiresIn   int64     `json:"expires_in"`
}

var _ Service = (*AuthService)(nil)

// AuthService checks the shared admin API key and issues JWTs
type AuthService struct {
	apiKey     []byte
	jwtManager *jwt.Manager
	attempts   cache.Store
	logger     *zap.Logger
}

// NewAuthService creates a new auth service. attempts may be nil to disable
// lockout.
func NewAuthService(apiKey string, jwtManager *jwt.Manager, attempts cache.Store, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		apiKey:     []byte(apiKey),
		jwtManager: jwtManager,
		attempts:   attempts,
		logger:     logger,
	}
}

// Login exchanges the admin API key for an access token. Each attempt is
// counted before the key is compared, so concurrent guesses from one client
// cannot exceed MaxFailedLogins.
func (s *AuthService) Login(ctx context.Context, apiKey, clientIP string) (*Token, error) {
	attempt, err := s.countAttempt(ctx, clientIP)
	if err != nil {
		return nil, err
	}
	if attempt > MaxFailedLogins {
		s.logger.Warn("auth.login.locked_out", zap.String("client_ip", clientIP), zap.Int64("attempt", attempt))
		return nil, usecaseErrors.ErrTooManyAttempts
	}

	if len(s.apiKey) == 0 || subtle.ConstantTimeCompare([]byte(apiKey), s.apiKey) != 1 {
		s.logger.Warn("auth.login.rejected", zap.String("client_ip", clientIP), zap.Int64("attempt", attempt))
		return nil, usecaseErrors.ErrInvalidCredentials
	}

	if s.attempts != nil {
		if err := s.attempts.Delete(ctx, failureKey(clientIP)); err != nil {
			s.logger.Warn("auth.login.reset_failures", zap.String("client_ip", clientIP), zap.Error(err))
		}
	}

	token, expiresAt, err := s.jwtManager.GenerateAccessToken("admin", jwt.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("auth.login.succeeded", zap.String("client_ip", clientIP))
	return &Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		ExpiresIn:   int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// Authenticate validates an access token and returns its claims
func (s *AuthService) Authenticate(token string) (*jwt.Claims, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if errors.Is(err, jwt.ErrExpired) {
		return nil, usecaseErrors.ErrTokenExpired
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrTokenInvalid, err)
	}
	if claims.Role != jwt.RoleAdmin {
		return nil, usecaseErrors.ErrUnauthorized
	}
	return claims, nil
}

func failureKey(clientIP string) string {
	return "login-fail:" + clientIP
}

func (s *AuthService) countAttempt(ctx context.Context, clientIP string) (int64, error) {
	if s.attempts == nil {
		return 0, nil
	}
	n, err := s.attempts.Incr(ctx, failureKey(clientIP), FailureWindow)
	if err != nil {
		return 0, fmt.Errorf("%w: count login attempts: %v", usecaseErrors.ErrCacheUnavailable, err)
	}
	return n, nil
}
