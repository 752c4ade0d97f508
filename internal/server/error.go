package server

import (
	"net/http"

	"github.com/rs/zerolog/hlog"
)

// Error represents an API error exposed to clients.
type Error string

// Error returns the error message.
func (e Error) Error() string { return string(e) }

// API errors.
const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrUnsupportedFormat  = Error("unsupported text format")
	ErrRequestTooLarge    = Error("request body too large")
	ErrInternal           = Error("internal error")
)

// errorMap is a whitelist that maps errors to status codes.
var errorMap = map[error]int{
	ErrInvalidRequestBody: http.StatusBadRequest,
	ErrUnsupportedFormat:  http.StatusBadRequest,
	ErrRequestTooLarge:    http.StatusRequestEntityTooLarge,
}

// ErrorStatusCode returns the HTTP status code for an error object.
func ErrorStatusCode(err error) int {
	if code, ok := errorMap[err]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := ErrorStatusCode(err)
	hlog.FromRequest(r).Warn().Err(err).Int("status", code).Msg("http error")

	// Mask unrecognized errors from end users.
	if _, ok := errorMap[err]; !ok {
		err = ErrInternal
	}

	writeJSON(w, r, code, &errorResponse{Err: err.Error()})
}

type errorResponse struct {
	Err string `json:"error,omitempty"`
}
