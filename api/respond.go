package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rpupo63/dsa-learning-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON marshals data before touching the response so a marshal failure
// can still be answered with a clean 500.
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error","status":"error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError answers with an ErrorResponse carrying the request id.
func (r Responder) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	var apiErr *errs.ApiErr
	requestID := RequestIDFromContext(req.Context())

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Str("requestID", requestID).Msg("unexpected error")
		r.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:     "Internal Server Error",
			Status:    "error",
			Details:   "An unexpected error occurred",
			RequestID: requestID,
		})
		return
	}

	response := ErrorResponse{
		Error:     apiErr.Error(),
		Status:    "error",
		Field:     apiErr.Field,
		Details:   apiErr.Details,
		Errors:    apiErr.Fields,
		RequestID: requestID,
	}
	// Add full error chain for debugging (especially useful for database errors)
	if apiErr.Cause != nil {
		response.Cause = apiErr.GetFullError()
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Int("status", apiErr.StatusCode).Str("requestID", requestID).Msg(apiErr.GetFullError())
	}
	r.WriteJSON(w, apiErr.StatusCode, response)
}
