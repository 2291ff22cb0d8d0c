package ordertech

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/restopos/backend/internal/domain/ordertech"
	"github.com/restopos/backend/internal/domain/shared"
)

// TokenRegistrationService stores the platform-issued bearer token that
// authenticates all outbound sync calls.
type TokenRegistrationService struct {
	settingsRepo ordertech.SettingsRepository
	logger       *zap.Logger
}

// NewTokenRegistrationService creates a new TokenRegistrationService
func NewTokenRegistrationService(
	settingsRepo ordertech.SettingsRepository,
	logger *zap.Logger,
) *TokenRegistrationService {
	return &TokenRegistrationService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Register validates the token's JWT structure (signature is the platform's
// concern, not verified here) and persists it. Expiry is logged when the
// token carries one.
func (s *TokenRegistrationService) Register(ctx context.Context, token string) error {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		s.logger.Error("rejected malformed platform token", zap.Error(err))
		return shared.NewDomainError(shared.ErrCodeValidation, "platform_jwt_token is not a valid JWT")
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		s.logger.Info("registered platform token", zap.Time("expires_at", exp.Time))
	} else {
		s.logger.Info("registered platform token without expiry")
	}
	if err := s.settingsRepo.SetBearerToken(ctx, token); err != nil {
		s.logger.Error("storing platform token failed", zap.Error(err))
		return err
	}
	return nil
}
