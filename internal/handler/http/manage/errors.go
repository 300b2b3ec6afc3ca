package manage

import (
	"errors"
	"net/http"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/respond"
	manageUC "github.com/Tubbz-alt/email-alert-frontend/internal/usecase/manage"
)

// Outcome codes specific to subscription management.
const (
	codeInvalidFrequency = "invalid_frequency"
	codeMissingFrequency = "missing_frequency"
	codeMissingAddress   = "missing_address"
	codeInvalidAddress   = "invalid_address"
)

// writeError maps a management use case error to its response.
func writeError(w http.ResponseWriter, err error) {
	var addrErr *manageUC.AddressError
	switch {
	case errors.As(err, &addrErr):
		code := codeInvalidAddress
		if errors.Is(addrErr, manageUC.ErrMissingAddress) {
			code = codeMissingAddress
		}
		appErr := respond.NewAppError(http.StatusUnprocessableEntity, code, addrErr.Message, err)
		appErr.Details = AddressErrorDetails{Attempted: addrErr.Attempted, Current: addrErr.Current}
		respond.Fail(w, appErr)
	case errors.Is(err, manageUC.ErrNotFound):
		respond.Fail(w, respond.NewAppError(http.StatusNotFound, "", "subscription not found", err))
	case errors.Is(err, manageUC.ErrInvalidFrequency):
		respond.Fail(w, respond.NewAppError(http.StatusBadRequest, codeInvalidFrequency, "invalid frequency", err))
	case errors.Is(err, entity.ErrInvalidInput):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, entity.ErrServiceUnavailable):
		respond.SafeError(w, http.StatusServiceUnavailable, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
