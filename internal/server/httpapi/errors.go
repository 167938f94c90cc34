package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/solsocial/internal/common"
)

// errorBody is the structured error every failure returns: a stable kind
// plus a human-readable message, never a stack trace or an internal cause.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError maps a sentinel error to the HTTP taxonomy. Validation
// failures keep their message (user-correctable); everything else gets a
// fixed phrase so internal causes never leak.
func writeError(w http.ResponseWriter, err error) {
	kind, status := classify(err)

	var msg string
	switch status {
	case http.StatusBadRequest:
		msg = err.Error()
	case http.StatusUnauthorized:
		msg = "invalid credentials"
	case http.StatusForbidden:
		msg = "wallet does not own this resource"
	case http.StatusNotFound:
		msg = "not found"
	case http.StatusServiceUnavailable:
		msg = "temporarily unavailable, retry later"
	default:
		msg = "internal error"
	}

	writeJSON(w, status, errorBody{Error: kind, Message: msg})
}

func classify(err error) (string, int) {
	switch {
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrorInvalidAddress):
		return "validation_error", http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrSignatureMismatch),
		errors.Is(err, common.ErrChallengeExpired):
		return "unauthorized", http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return "forbidden", http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return "not_found", http.StatusNotFound
	case errors.Is(err, common.ErrorDependency):
		return "dependency_unavailable", http.StatusServiceUnavailable
	default:
		return "internal_error", http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
