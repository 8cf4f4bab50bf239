package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Request & Input-Validation Errors
var (
	ErrValidation          = errors.New("validation failed")
	ErrMalformedPayload    = errors.New("malformed payload")
	ErrMaxBodySizeExceeded = errors.New("max body size exceeded")
)

// FieldError is one failed constraint on one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// NewValidationError wraps one or more field failures into a 422.
func NewValidationError(fields ...FieldError) *ApiErr {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.String())
	}
	e := &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrValidation,
		Details:    strings.Join(parts, "; "),
		Fields:     fields,
	}
	if len(fields) == 1 {
		e.Field = fields[0].Field
	}
	return e
}

func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrMalformedPayload,
		Details:    fmt.Sprintf("Malformed %s payload", payloadType),
		Cause:      cause,
		Field:      "body",
		Fields:     []FieldError{{Field: "body", Message: cause.Error()}},
	}
}

func NewMaxBodySizeExceededError(maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestEntityTooLarge,
		err:        ErrMaxBodySizeExceeded,
		Details:    fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxSize),
		Field:      "body",
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrMalformedPayload)
}
