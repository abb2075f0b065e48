// Package errors defines the application error taxonomy surfaced to callers.
package errors

import (
	"net/http"

	"foodaid/internal/errors"
)

// Kind is the stable classification of an application error.
type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"
	KindForbidden  Kind = "FORBIDDEN"
	KindConflict   Kind = "CONFLICT"
	KindValidation Kind = "VALIDATION"
	KindInternal   Kind = "INTERNAL"
)

// HTTPCode maps the kind to its HTTP status code.
func (k Kind) HTTPCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Stable error kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error kind
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Not found
	ErrActorNotFound = NewBaseError(KindNotFound, "ACTOR_NOT_FOUND", "actor not found", "")

	ErrFoodBankNotFound = NewBaseError(KindNotFound, "FOOD_BANK_NOT_FOUND", "food bank not found", "")

	ErrFoodItemNotFound = NewBaseError(KindNotFound, "FOOD_ITEM_NOT_FOUND", "food item not found", "")

	ErrDistrictNotFound = NewBaseError(KindNotFound, "DISTRICT_NOT_FOUND", "district not found", "")

	ErrRequestNotFound = NewBaseError(KindNotFound, "REQUEST_NOT_FOUND", "request not found", "")

	ErrInventoryRecordNotFound = NewBaseError(KindNotFound, "INVENTORY_RECORD_NOT_FOUND", "inventory record not found", "")

	// Forbidden
	ErrForbidden = NewBaseError(KindForbidden, "FORBIDDEN", "access denied", "")

	// Conflict
	ErrFoodItemAlreadyExists = NewBaseError(KindConflict, "FOOD_ITEM_ALREADY_EXISTS", "food item already exists", "")

	ErrDistrictAlreadyExists = NewBaseError(KindConflict, "DISTRICT_ALREADY_EXISTS", "district already exists", "")

	ErrOperatorAlreadyAssigned = NewBaseError(KindConflict, "OPERATOR_ALREADY_ASSIGNED", "operator already administers a food bank", "")

	ErrRequestFinalized = NewBaseError(KindConflict, "REQUEST_FINALIZED", "request can no longer change", "")

	ErrInvalidTransition = NewBaseError(KindConflict, "INVALID_TRANSITION", "request status transition not allowed", "")

	ErrTrackingNumberExhausted = NewBaseError(KindInternal, "TRACKING_NUMBER_EXHAUSTED", "could not allocate a unique tracking number", "")

	// Validation
	ErrValidationFailed = NewBaseError(KindValidation, "VALIDATION_FAILED", "input validation failed", "")

	ErrNationalIDRequired = NewBaseError(KindValidation, "NATIONAL_ID_REQUIRED", "national ID is required", "")

	ErrInvalidQuantity = NewBaseError(KindValidation, "INVALID_QUANTITY", "invalid quantity", "")

	ErrInvalidStatus = NewBaseError(KindValidation, "INVALID_STATUS", "invalid request status", "")

	ErrEmptyRequestItems = NewBaseError(KindValidation, "EMPTY_REQUEST_ITEMS", "a request needs at least one item", "")

	ErrInvalidOperatorRole = NewBaseError(KindValidation, "INVALID_OPERATOR_ROLE", "operator must have role food_bank_operator", "")

	ErrInvalidBoundary = NewBaseError(KindValidation, "INVALID_BOUNDARY", "district boundary is not valid GeoJSON", "")

	// Internal
	ErrTransactionFailed = NewBaseError(KindInternal, "TRANSACTION_FAILED", "database transaction failed", "")

	ErrInternalError = NewBaseError(KindInternal, "INTERNAL_ERROR", "internal error", "")
)

// KindOf returns the kind of the first AppError in err's tree.
// Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// IsKind reports whether err belongs to the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error kind
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
