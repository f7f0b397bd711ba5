package handlers

import (
	"errors"
	"strings"

	"quotes-api/internal/repositories"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// isValidationError checks if an error is a client-input error
func isValidationError(err error) bool {
	if err == nil {
		return false
	}
	if repositories.IsValidation(err) || errors.Is(err, repositories.ErrInvalidID) {
		return true
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "validation") ||
		strings.Contains(errMsg, "invalid") ||
		strings.Contains(errMsg, "required")
}

// isNotFoundError checks if an error is a not found error
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return repositories.IsNotFound(err)
}

// isConstraintError checks if an error is a constraint violation
func isConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return repositories.IsConstraint(err)
}
