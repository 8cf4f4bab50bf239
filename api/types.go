package api

import "github.com/rpupo63/dsa-learning-backend/errs"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	categoryHandler  categoryHandler
	exampleHandler   exampleHandler
	algorithmHandler algorithmHandler
	systemHandler    systemHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error     string            `json:"error" example:"Category not found"`
	Status    string            `json:"status" example:"error"`
	Field     string            `json:"field,omitempty" example:"slug"`
	Details   string            `json:"details,omitempty" example:"Category with slug \"arrays\" already exists"`
	Cause     string            `json:"cause,omitempty" example:"Underlying error cause"`
	Errors    []errs.FieldError `json:"errors,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"3f0c9a52-6a41-4d0e-9a0b-0d2f4c1b7e11"`
}

// MessageResponse acknowledges a write that returns no record.
type MessageResponse struct {
	Message string `json:"message" example:"Category deleted successfully"`
}
