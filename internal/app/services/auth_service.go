package services

import (
	"context"

	"github.com/ravikt/tuitiondesk/internal/app/models/dto"
	"github.com/ravikt/tuitiondesk/internal/config"
	"github.com/ravikt/tuitiondesk/internal/pkg/apperrors"
	"github.com/ravikt/tuitiondesk/internal/pkg/auth"
	"github.com/ravikt/tuitiondesk/internal/pkg/logger"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface. There is a single
// admin principal configured via the auth section of the config.
type authServiceImpl struct {
	adminUsername     string
	adminPasswordHash string
	jwtService        *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(cfg *config.Config, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		adminUsername:     cfg.Auth.AdminUsername,
		adminPasswordHash: cfg.Auth.AdminPasswordHash,
		jwtService:        jwtService,
	}
}

// Login checks the admin credentials and issues an access token.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != s.adminUsername || !auth.CheckPassword(s.adminPasswordHash, req.Password) {
		logger.Warn().Str("username", req.Username).Msg("Failed admin login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(req.Username)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", req.Username).Msg("Admin logged in")
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
