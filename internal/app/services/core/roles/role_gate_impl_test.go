package roles

import (
	"context"
	"errors"
	"mediconnect-service/internal/app/contracts/mocks"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestRoleGate_Authorize(t *testing.T) {
	ctx := context.Background()
	callerID := primitive.NewObjectID()

	t.Run("matching role returns the account", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		patient := &models.User{ID: callerID, Role: constvars.RolePatient, IsActive: true}
		repo.On("FindByID", ctx, callerID.Hex()).Return(patient, nil)

		user, err := NewRoleGate(repo, zap.NewNop()).Authorize(ctx, callerID.Hex(), constvars.RolePatient)

		require.NoError(t, err)
		assert.Equal(t, patient, user)
	})

	t.Run("unknown caller is not found", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("FindByID", ctx, callerID.Hex()).Return(nil, nil)

		_, err := NewRoleGate(repo, zap.NewNop()).Authorize(ctx, callerID.Hex(), constvars.RolePatient)

		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		doctor := &models.User{ID: callerID, Role: constvars.RoleDoctor, IsActive: true}
		repo.On("FindByID", ctx, callerID.Hex()).Return(doctor, nil)

		_, err := NewRoleGate(repo, zap.NewNop()).Authorize(ctx, callerID.Hex(), constvars.RolePatient)

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, "access denied, patient role required", customErr.ClientMessage)
	})

	t.Run("inactive account with matching role passes", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		inactive := &models.User{ID: callerID, Role: constvars.RolePatient, IsActive: false}
		repo.On("FindByID", ctx, callerID.Hex()).Return(inactive, nil)

		user, err := NewRoleGate(repo, zap.NewNop()).Authorize(ctx, callerID.Hex(), constvars.RolePatient)

		require.NoError(t, err)
		assert.Equal(t, inactive, user)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		storeErr := exceptions.ErrMongoDBFindDocument(errors.New("connection reset"))
		repo.On("FindByID", ctx, callerID.Hex()).Return(nil, storeErr)

		_, err := NewRoleGate(repo, zap.NewNop()).Authorize(ctx, callerID.Hex(), constvars.RolePatient)

		assert.ErrorIs(t, err, storeErr)
	})
}
