package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Persistence errors
	ErrPersistence = errors.New("failed to persist document")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Admission request errors
var (
	ErrAdmissionNotFound = errors.New("admission request not found")
	ErrAlreadyProcessed  = errors.New("admission request already processed")
)

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
