package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/snnyvrz/library/internal/repository"
	"github.com/snnyvrz/library/internal/validation"
)

// failureStatus maps a use-case error onto the response status.
func failureStatus(err error) int {
	var verr *validation.ValidationError
	var cerr *repository.ConstraintError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &cerr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// failureDetail strips the wrapping context added by the service so the
// user sees the storage error text itself.
func failureDetail(err error) string {
	return errors.Cause(err).Error()
}

func validationFailure(err error) (*validation.ValidationError, bool) {
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
