package domain

import "errors"

// ErrorKind classifies operational errors so the HTTP boundary can map them
// to status codes in one place.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
)

// FieldError carries field-level detail for validation failures
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is an operational error whose message is safe to surface to
// clients verbatim. Anything that is not an AppError is reported generically
// outside development mode.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidationError creates a 400-class error, optionally with field detail
func NewValidationError(message string, fields ...FieldError) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

// NewAuthenticationError creates a 401-class error
func NewAuthenticationError(message string) *AppError {
	return &AppError{Kind: KindAuthentication, Message: message}
}

// NewAuthorizationError creates a 403-class error
func NewAuthorizationError(message string) *AppError {
	return &AppError{Kind: KindAuthorization, Message: message}
}

// NewNotFoundError creates a 404-class error
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// NewConflictError creates a 409-class error
func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// AsAppError unwraps err into an *AppError if it is one
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
