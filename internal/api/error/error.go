// Package error defines the API error envelope and
// helpers for writing it to a response.
package error

import (
	"encoding/json"
	"net/http"
)

// Error is the JSON error envelope returned by every endpoint.
type Error struct {
	Code    ErrorCode `json:"code"`
	Status  int       `json:"status"`
	Message string    `json:"message"`
	ErrorID string    `json:"error_id"`
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// EncodeError writes an error envelope with the status
// mapped from the error code.
func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	body := Error{
		Code:    code,
		Status:  code.StatusCode(),
		Message: message,
		ErrorID: errorID,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Status)
	return json.NewEncoder(w).Encode(body)
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}
