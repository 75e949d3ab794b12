package errs

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// ErrorType ใช้แยกประเภทของ error เพื่อ map ไปเป็น HTTP status code ที่ middleware
type ErrorType string

const (
	ErrInputValidation  ErrorType = "input_validation_error"
	ErrAuthentication   ErrorType = "authentication_error"
	ErrResourceNotFound ErrorType = "resource_not_found"
	ErrConflict         ErrorType = "conflict_error"
	ErrBusinessRule     ErrorType = "business_rule_error"
	ErrDatabaseFailure  ErrorType = "database_failure"
	ErrOperationFailed  ErrorType = "operation_failed"
)

type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// HTTPStatus คืน status code ตามประเภทของ error
func (e *AppError) HTTPStatus() int {
	switch e.Type {
	case ErrInputValidation:
		return http.StatusBadRequest
	case ErrAuthentication:
		return http.StatusUnauthorized
	case ErrResourceNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrBusinessRule:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func InputValidationError(message string) *AppError {
	return New(ErrInputValidation, message)
}

func AuthenticationError(message string) *AppError {
	return New(ErrAuthentication, message)
}

func ResourceNotFoundError(message string) *AppError {
	return New(ErrResourceNotFound, message)
}

func ConflictError(message string) *AppError {
	return New(ErrConflict, message)
}

func BusinessRuleError(message string) *AppError {
	return New(ErrBusinessRule, message)
}

func DatabaseFailureError(message string) *AppError {
	return New(ErrDatabaseFailure, message)
}

func OperationFailedError(message string) *AppError {
	return New(ErrOperationFailed, message)
}

// HandleDBError แปลง error จากฐานข้อมูลให้เป็น AppError
// เช่น unique_violation จะกลายเป็น conflict แทนที่จะเป็น internal error
func HandleDBError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return ConflictError("duplicate record")
		case "foreign_key_violation":
			return ConflictError("reference to a missing record")
		}
	}
	return DatabaseFailureError(err.Error())
}
