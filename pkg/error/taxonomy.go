package error

import (
	"errors"
	"fmt"
)

// Error codes surfaced to clients inside graphql extensions.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeValidationError = "VALIDATION_ERROR"
	CodeDatabaseError   = "DATABASE_ERROR"
	CodeUpstreamError   = "TMDB_ERROR"
)

// AppError carries a client-safe message plus a code and http-equivalent
// status. Database/upstream causes are kept server-side only.
type AppError struct {
	Code    string
	Status  int
	Message string
	cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Extensions satisfies the gqlerrors.ExtendedError interface so the code and
// status travel in the graphql error extensions block.
func (e *AppError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.Code,
		"http": map[string]interface{}{"status": e.Status},
	}
}

func BadRequest(message string) *AppError {
	if message == "" {
		message = "Bad request"
	}
	return &AppError{Code: CodeBadRequest, Status: 400, Message: message}
}

func Unauthorized(message string) *AppError {
	if message == "" {
		message = "You must be logged in"
	}
	return &AppError{Code: CodeUnauthorized, Status: 401, Message: message}
}

func Forbidden(message string) *AppError {
	if message == "" {
		message = "You do not have permission to perform this action"
	}
	return &AppError{Code: CodeForbidden, Status: 403, Message: message}
}

func NotFound(message string) *AppError {
	if message == "" {
		message = "Resource not found"
	}
	return &AppError{Code: CodeNotFound, Status: 404, Message: message}
}

func ValidationError(message string) *AppError {
	if message == "" {
		message = "Validation error"
	}
	return &AppError{Code: CodeValidationError, Status: 422, Message: message}
}

// DatabaseError logs the original cause and returns a generic message, the
// persistence failure detail never reaches the client.
func DatabaseError(message string, cause error) *AppError {
	if message == "" {
		message = "Database error"
	}
	SaveError(fmt.Sprintf("%s: %v", message, cause), cause)
	return &AppError{Code: CodeDatabaseError, Status: 500, Message: message, cause: cause}
}

// UpstreamError is DatabaseError's counterpart for catalog api failures.
func UpstreamError(message string, cause error) *AppError {
	if message == "" {
		message = "TMDB API error"
	}
	SaveError(fmt.Sprintf("%s: %v", message, cause), cause)
	return &AppError{Code: CodeUpstreamError, Status: 502, Message: message, cause: cause}
}

// AsAppError returns the taxonomy error wrapped in err, if any.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
