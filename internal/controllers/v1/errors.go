package v1

import (
	"errors"
	"net/http"

	"github.com/hearthshare/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for a backend error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrForbidden) {
		return http.StatusForbidden
	}

	if errors.Is(err, models.ErrConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}
