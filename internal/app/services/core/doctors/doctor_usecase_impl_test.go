package doctors

import (
	"context"
	"errors"
	"mediconnect-service/internal/app/contracts/mocks"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDoctorUsecase(repo *mocks.MockDoctorRepository, now time.Time) *doctorUsecase {
	uc := NewDoctorUsecase(repo, zap.NewNop()).(*doctorUsecase)
	uc.now = func() time.Time { return now }
	return uc
}

func TestDoctorUsecase_ListDoctors(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)
	filter := requests.DoctorListFilter{Specialty: "cardio"}

	t.Run("pages through the directory", func(t *testing.T) {
		repo := new(mocks.MockDoctorRepository)
		page := []responses.DoctorSummary{
			{ID: "a", Name: "Sarah Johnson", Specialty: "Cardiology", Rating: 4.8, ConsultationFee: 200},
			{ID: "b", Name: "Michael Chen", Specialty: "Cardiology", Rating: 4.5, ConsultationFee: 150},
		}
		repo.On("FindDoctors", ctx, filter, int64(20), int64(10)).Return(page, nil)
		repo.On("CountDoctors", ctx, filter).Return(23, nil)

		result, err := newTestDoctorUsecase(repo, now).ListDoctors(ctx, &requests.ListDoctors{Filter: filter, Page: 3, Limit: 10})

		require.NoError(t, err)
		require.Len(t, result.Doctors, 2)
		assert.Equal(t, "2026-10-15T08:30:00Z", result.Doctors[0].NextAvailable)
		assert.Equal(t, responses.Pagination{CurrentPage: 3, TotalPages: 3, TotalDoctors: 23, HasNext: false}, result.Pagination)
		repo.AssertExpectations(t)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		repo := new(mocks.MockDoctorRepository)
		repo.On("FindDoctors", ctx, filter, int64(0), int64(10)).Return(nil, nil)
		repo.On("CountDoctors", ctx, filter).Return(0, nil)

		result, err := newTestDoctorUsecase(repo, now).ListDoctors(ctx, &requests.ListDoctors{Filter: filter, Page: 1, Limit: 10})

		require.NoError(t, err)
		assert.NotNil(t, result.Doctors)
		assert.Empty(t, result.Doctors)
		assert.Equal(t, 0, result.Pagination.TotalPages)
		assert.False(t, result.Pagination.HasNext)
	})

	t.Run("out of range limit is rejected before querying", func(t *testing.T) {
		repo := new(mocks.MockDoctorRepository)

		_, err := newTestDoctorUsecase(repo, now).ListDoctors(ctx, &requests.ListDoctors{Page: 1, Limit: 51})

		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		repo.AssertNotCalled(t, "FindDoctors", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("count failure propagates", func(t *testing.T) {
		repo := new(mocks.MockDoctorRepository)
		countErr := exceptions.ErrMongoDBAggregate(errors.New("timeout"))
		repo.On("FindDoctors", ctx, filter, int64(0), int64(5)).Return([]responses.DoctorSummary{}, nil)
		repo.On("CountDoctors", ctx, filter).Return(0, countErr)

		_, err := newTestDoctorUsecase(repo, now).ListDoctors(ctx, &requests.ListDoctors{Filter: filter, Page: 1, Limit: 5})

		assert.ErrorIs(t, err, countErr)
	})
}
