package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/facts-mng/internal/domain"
	"github.com/heartmarshall/facts-mng/pkg/ctxutil"
)

// Error codes of the response envelope.
const (
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeDuplicateKey     = "DUPLICATE_KEY"
	CodeValidation       = "VALIDATION"
	CodeStoreTimeout     = "STORE_TIMEOUT"
	CodeEmission         = "EMISSION_ERROR"
	CodeBadRequest       = "BAD_REQUEST"
	CodeInternal         = "INTERNAL"
)

// ErrorResponse is the {code, message} envelope of every failed request.
// Result carries the committed value when only event emission failed.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
	Result  any                 `json:"result,omitempty"`
}

// writeError maps err onto the envelope and status code. Unmapped errors
// are logged with the request id and reported as INTERNAL.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve *domain.ValidationError
		ee *domain.EmissionError
	)
	// An emission error wraps the event log cause, which may itself be a
	// timeout or a duplicate; the store write already committed.
	switch {
	case errors.As(err, &ee):
		log.ErrorContext(r.Context(), "event emission failed",
			slog.String("aggregate_id", ee.AggregateID),
			slog.String("error", ee.Err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Code: CodeEmission, Message: err.Error(), Result: ee.Result})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: CodeValidation, Message: ve.Error(), Fields: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: CodeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Code: CodeUnauthenticated, Message: "authentication required"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Code: CodePermissionDenied, Message: "permission denied"})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Code: CodeDuplicateKey, Message: err.Error()})
	case errors.Is(err, domain.ErrStoreTimeout):
		log.WarnContext(r.Context(), "store timeout",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Code: CodeStoreTimeout, Message: "store timeout, outcome unknown"})
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Code: CodeInternal, Message: "internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: CodeBadRequest, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
