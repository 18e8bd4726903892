package v1

import (
	"errors"
	"net/http"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the budget goal check requires a committed configuration"`
}

// status returns the appropriate HTTP status for a database or
// validation error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errClearConfirmation   = errors.New("the confirmation for the clear data API call was incorrect")
)
