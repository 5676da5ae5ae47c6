package roles

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type roleGate struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewRoleGate(userRepository contracts.UserRepository, logger *zap.Logger) contracts.RoleGate {
	return &roleGate{
		UserRepository: userRepository,
		Log:            logger,
	}
}

// Authorize only looks at the role. Account activity is a login concern.
func (g *roleGate) Authorize(ctx context.Context, callerID, requiredRole string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)

	user, err := g.UserRepository.FindByID(ctx, callerID)
	if err != nil {
		g.Log.Error("roleGate.Authorize error calling UserRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, callerID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		g.Log.Info("roleGate.Authorize caller not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, callerID),
		)
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if !user.HasRole(requiredRole) {
		g.Log.Info("roleGate.Authorize role mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, callerID),
			zap.String(constvars.LoggingRoleKey, user.Role),
		)
		return nil, exceptions.ErrNotMatchRoleType(nil, requiredRole)
	}

	return user, nil
}
