package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/geolens/internal/domain"
)

// ErrorCode is the machine-readable error code of an API error.
type ErrorCode string

const (
	CodeBadRequest       ErrorCode = "bad_request"
	CodeValidationFailed ErrorCode = "validation_failed"
	CodeNotFound         ErrorCode = "not_found"
	CodeUnauthorized     ErrorCode = "unauthorized"
	CodeGeoServiceError  ErrorCode = "geo_service_error"
	CodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		ignoredHandler,
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound, safeMessage),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, CodeValidationFailed, errorMessage),
		sentinelHandler(domain.ErrServiceUnavailable, http.StatusBadGateway, CodeGeoServiceError, errorMessage),
	}
}

// ignoredHandler turns a failed guard (signed out, other tab) into an empty 204.
func ignoredHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrPreconditionNotMet) {
		return false
	}
	w.WriteHeader(http.StatusNoContent)
	return true
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode, msg func(error) string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg(err))
		return true
	}
}

// safeMessage returns the sentinel message without exposing internals.
func safeMessage(err error) string {
	for _, s := range []error{domain.ErrNotFound, domain.ErrInvalidInput, domain.ErrServiceUnavailable} {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// errorMessage exposes the full chain; validation and backend errors carry no secrets.
func errorMessage(err error) string { return err.Error() }

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			if !errors.Is(err, domain.ErrPreconditionNotMet) {
				s.logger.Warn("domain error", zap.Error(err))
			}
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
