package services

import "micron-manager/internal/models"

// Envelope computes the pagination metadata for total matching records
// split into pages of pageSize.
func Envelope(total int64, pageSize int) models.PageEnvelope {
	if total < 0 {
		total = 0
	}
	if pageSize <= 0 {
		return models.PageEnvelope{TotalCount: total}
	}

	size := int64(pageSize)
	return models.PageEnvelope{
		TotalCount: total,
		TotalPages: (total + size - 1) / size,
	}
}
