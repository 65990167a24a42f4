package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactdesk/internal/common"
)

// statusFor maps a service error onto an HTTP status and a client message.
// Internal details never reach the client.
func statusFor(err error) (int, string) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Msg
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, common.ErrConflict):
		return http.StatusBadRequest, "email already registered"
	case errors.Is(err, common.ErrAuthentication):
		return http.StatusUnauthorized, common.ErrAuthentication.Error()
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrMalformedToken):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, "contact not found"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// fail logs err and writes the mapped response. 5xx are logged as errors,
// everything else as warnings.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "status", status, "error", err.Error())
	} else {
		s.logger.Warn(r.Context(), "request rejected", "path", r.URL.Path, "status", status, "error", err.Error())
	}
	writeError(w, status, msg)
}
