package v1

import (
	"errors"
	"net/http"

	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, ledger.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errTextNotSetInQuery = errors.New("the text query parameter must be set")
	errMonthsBackInvalid = errors.New("the monthsBack query parameter must be a positive number")
	errNoFilePost        = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix   = errors.New("this endpoint only supports files of the following types")
)
