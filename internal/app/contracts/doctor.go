package contracts

import (
	"context"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	FindDoctors(ctx context.Context, filter requests.DoctorListFilter, skip, limit int64) ([]responses.DoctorSummary, error)
	CountDoctors(ctx context.Context, filter requests.DoctorListFilter) (int, error)
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, request *requests.ListDoctors) (*responses.DoctorList, error)
}
