package errors

import (
	"net/http"

	"bazaar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
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
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in Thai, matching the
// marketplace UI language.
var (
	// Sign-in related errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"โทเคนไม่ถูกต้องหรือหมดอายุ",
		"",
	)

	ErrEmailDomainNotAllowed = NewBaseError(
		http.StatusForbidden,
		"EMAIL_DOMAIN_NOT_ALLOWED",
		"ใช้อีเมลโรงเรียนเท่านั้น",
		"",
	)

	ErrNotSignedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_SIGNED_IN",
		"กรุณาเข้าสู่ระบบก่อน",
		"",
	)

	// Seller/store related errors
	ErrSellerNotFound = NewBaseError(
		http.StatusNotFound,
		"SELLER_NOT_FOUND",
		"ไม่พบข้อมูลผู้ขาย",
		"",
	)

	ErrSellerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SELLER_ALREADY_EXISTS",
		"บัญชีผู้ขายนี้มีอยู่แล้ว",
		"",
	)

	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"ไม่พบร้านค้า",
		"",
	)

	// Catalog related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"ไม่พบสินค้า",
		"",
	)

	ErrNotProductOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_PRODUCT_OWNER",
		"แก้ไขได้เฉพาะสินค้าของตัวเองเท่านั้น",
		"",
	)

	ErrProductCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PRODUCT_CREATION_FAILED",
		"สร้างสินค้าไม่สำเร็จ",
		"",
	)

	ErrReviewCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REVIEW_CREATION_FAILED",
		"สร้างรีวิวไม่สำเร็จ",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"ข้อมูลไม่ถูกต้อง",
		"",
	)

	// Generic internal error
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"เกิดข้อผิดพลาด",
		"",
	)
)
