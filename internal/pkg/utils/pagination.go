package utils

import (
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"strconv"
)

// ParsePaginationParams applies defaults to empty values and rejects
// non-integers and out-of-range values.
func ParsePaginationParams(rawPage, rawLimit string) (page, limit int, err error) {
	page, limit = constvars.DoctorListDefaultPage, constvars.DoctorListDefaultLimit

	if rawPage != "" {
		page, err = strconv.Atoi(rawPage)
		if err != nil {
			return 0, 0, exceptions.ErrInvalidPaginationParam(err, "page")
		}
	}
	if rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil {
			return 0, 0, exceptions.ErrInvalidPaginationParam(err, "limit")
		}
	}

	if err := ValidatePagination(page, limit); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func ValidatePagination(page, limit int) error {
	if page < 1 || limit < 1 || limit > constvars.DoctorListMaxLimit {
		return exceptions.ErrInvalidPaginationValues(nil)
	}
	return nil
}

func PaginationSkip(page, limit int) int64 {
	return int64((page - 1) * limit)
}

func BuildPagination(total, page, limit int) responses.Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return responses.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalDoctors: total,
		HasNext:      page < totalPages,
	}
}
