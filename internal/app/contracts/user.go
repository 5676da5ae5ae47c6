package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"time"
)

// UserRepository is the identity store. Lookups return (nil, nil) when no
// account matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error
	DeleteByID(ctx context.Context, userID string) error
}

type ProfileRepository interface {
	CreateDoctorProfile(ctx context.Context, profile *models.DoctorProfile) (profileID string, err error)
	CreatePatientProfile(ctx context.Context, profile *models.PatientProfile) (profileID string, err error)
	FindDoctorProfileByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error)
}
