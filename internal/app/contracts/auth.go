package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"time"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
}

type TokenManager interface {
	GenerateAccessToken(subject string) (token string, expiresIn time.Duration, err error)
	ParseAccessToken(token string) (subject string, err error)
}

// RoleGate authorizes a caller for an operation restricted to one role.
type RoleGate interface {
	Authorize(ctx context.Context, callerID, requiredRole string) (*models.User, error)
}
