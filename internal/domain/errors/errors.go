package errors

import (
	"maps"
	"net/http"

	"catalog/internal/errors"
)

// Kind classifies an application error independently of its transport status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalidCredentials
	KindUserNotEnabled
	KindUsernameAlreadyExists
	KindEmailAlreadyExists
	KindUserNotFound
	KindUserAlreadyVerified
	KindInvalidOtp
	KindMissingArguments
	KindPasswordsDoNotMatch
	KindUnauthorized
	KindAccessDenied
	KindProductNotFound
	KindProductsEmpty
	KindInvalidPagination
	KindInvalidSortDirection
	KindModelValidation
)

var kindNames = map[Kind]string{
	KindInternal:              "Internal",
	KindValidation:            "Validation",
	KindInvalidCredentials:    "InvalidCredentials",
	KindUserNotEnabled:        "UserNotEnabled",
	KindUsernameAlreadyExists: "UsernameAlreadyExists",
	KindEmailAlreadyExists:    "EmailAlreadyExists",
	KindUserNotFound:          "UserNotFound",
	KindUserAlreadyVerified:   "UserAlreadyVerified",
	KindInvalidOtp:            "InvalidOtp",
	KindMissingArguments:      "MissingArguments",
	KindPasswordsDoNotMatch:   "PasswordsDoNotMatch",
	KindUnauthorized:          "Unauthorized",
	KindAccessDenied:          "AccessDenied",
	KindProductNotFound:       "ProductNotFound",
	KindProductsEmpty:         "ProductsEmpty",
	KindInvalidPagination:     "InvalidPagination",
	KindInvalidSortDirection:  "InvalidSortDirection",
	KindModelValidation:       "ModelValidation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Unknown"
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int
	ErrorCode() string
	// MessageKey is the key into the message table; Params fills its placeholders.
	MessageKey() string
	Params() map[string]string
	// Message is the fallback when the key has no translation.
	Message() string
	Details() any
}

// FieldViolation describes one failed field rule. Messages are resolved at the boundary.
type FieldViolation struct {
	Field      string
	MessageKey string
	Params     map[string]string
}

// BaseError is the single error type carried from the domain to the API boundary.
type BaseError struct {
	kind       Kind
	httpCode   int
	errorCode  string
	messageKey string
	message    string
	params     map[string]string
	details    any
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, messageKey, message string) *BaseError {
	return &BaseError{
		kind:       kind,
		httpCode:   httpCode,
		errorCode:  errorCode,
		messageKey: messageKey,
		message:    message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches on error code so parameterised copies still match their sentinel.
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

func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) MessageKey() string {
	return e.messageKey
}

func (e *BaseError) Params() map[string]string {
	return e.params
}

// Message returns the untranslated fallback message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithParam returns a copy carrying one more message placeholder value.
func (e *BaseError) WithParam(key, value string) *BaseError {
	cp := e.clone()
	if cp.params == nil {
		cp.params = make(map[string]string, 1)
	}
	cp.params[key] = value

	return cp
}

// WithDetails returns a copy carrying detailed error information.
func (e *BaseError) WithDetails(details any) *BaseError {
	cp := e.clone()
	cp.details = details

	return cp
}

// WithMessageKey returns a copy resolved through a different message key.
func (e *BaseError) WithMessageKey(key, message string) *BaseError {
	cp := e.clone()
	cp.messageKey = key
	cp.message = message

	return cp
}

func (e *BaseError) clone() *BaseError {
	cp := *e
	cp.params = maps.Clone(e.params)

	return &cp
}

// NewValidationError aggregates field violations into one 400 error.
func NewValidationError(violations []FieldViolation) *BaseError {
	return ErrValidation.WithDetails(violations)
}

// Predefined error types
var (
	ErrInternal = NewBaseError(KindInternal, http.StatusInternalServerError,
		"INTERNAL_ERROR", "error.internal", "An internal error occurred")

	ErrLoginFailed = NewBaseError(KindInternal, http.StatusInternalServerError,
		"LOGIN_FAILED", "auth.login_failed", "Error occurred during login")

	ErrVerificationMailFailed = NewBaseError(KindInternal, http.StatusInternalServerError,
		"VERIFICATION_MAIL_FAILED", "mail.verification_failed", "Error occurred while sending email to verify account")

	ErrResetMailFailed = NewBaseError(KindInternal, http.StatusInternalServerError,
		"RESET_MAIL_FAILED", "mail.reset_failed", "Error occurred while sending email to reset password")

	ErrValidation = NewBaseError(KindValidation, http.StatusBadRequest,
		"VALIDATION_FAILED", "validation.failed", "Request validation failed")

	// Expects param "reason".
	ErrMalformedRequest = NewBaseError(KindValidation, http.StatusBadRequest,
		"MALFORMED_REQUEST", "request.malformed", "The request could not be read")

	ErrInvalidCredentials = NewBaseError(KindInvalidCredentials, http.StatusUnauthorized,
		"INVALID_CREDENTIALS", "auth.invalid_credentials", "Invalid username or password")

	ErrUserNotEnabled = NewBaseError(KindUserNotEnabled, http.StatusBadRequest,
		"USER_NOT_ENABLED", "user.not_enabled", "User account is not verified")

	// Expects param "username".
	ErrUsernameAlreadyExists = NewBaseError(KindUsernameAlreadyExists, http.StatusBadRequest,
		"USERNAME_ALREADY_EXISTS", "user.username_already_exists", "Username already exists")

	// Expects param "email".
	ErrEmailAlreadyExists = NewBaseError(KindEmailAlreadyExists, http.StatusBadRequest,
		"EMAIL_ALREADY_EXISTS", "user.email_already_exists", "Email already exists")

	// Expects param "email".
	ErrUserNotFound = NewBaseError(KindUserNotFound, http.StatusNotFound,
		"USER_NOT_FOUND", "user.with_email_not_found", "User not found")

	ErrUserAlreadyVerified = NewBaseError(KindUserAlreadyVerified, http.StatusBadRequest,
		"USER_ALREADY_VERIFIED", "user.already_verified", "User account is already verified")

	ErrInvalidOtp = NewBaseError(KindInvalidOtp, http.StatusUnauthorized,
		"INVALID_OTP", "auth.invalid_otp", "Invalid or expired one-time password")

	ErrMissingArguments = NewBaseError(KindMissingArguments, http.StatusBadRequest,
		"MISSING_ARGUMENTS", "password_reset.arguments_missing", "Token, password and confirmation are required")

	ErrPasswordsDoNotMatch = NewBaseError(KindPasswordsDoNotMatch, http.StatusConflict,
		"PASSWORDS_DO_NOT_MATCH", "password_reset.must_match", "Password and confirmation must match")

	ErrUnauthorized = NewBaseError(KindUnauthorized, http.StatusUnauthorized,
		"UNAUTHORIZED", "auth.unauthorized", "Authentication is required")

	ErrAccessDenied = NewBaseError(KindAccessDenied, http.StatusForbidden,
		"ACCESS_DENIED", "access.denied", "Access denied")

	// Expects param "id".
	ErrProductNotFound = NewBaseError(KindProductNotFound, http.StatusNotFound,
		"PRODUCT_NOT_FOUND", "product.not_found", "Product not found")

	ErrProductsEmpty = NewBaseError(KindProductsEmpty, http.StatusNotFound,
		"PRODUCTS_EMPTY", "product.empty_list", "No products found")

	ErrInvalidPaginationArguments = NewBaseError(KindInvalidPagination, http.StatusBadRequest,
		"INVALID_PAGINATION_ARGUMENTS", "pagination.invalid_arguments", "Page and size must not be negative")

	ErrInvalidSortDirection = NewBaseError(KindInvalidSortDirection, http.StatusBadRequest,
		"INVALID_SORT_DIRECTION", "pagination.invalid_sort_direction", "Sort must be <property>,<asc|desc>")

	ErrProductCodeAlreadyExists = NewBaseError(KindModelValidation, http.StatusBadRequest,
		"PRODUCT_CODE_ALREADY_EXISTS", "product.code_already_exists", "Product code already exists")

	ErrProductNameAlreadyExists = NewBaseError(KindModelValidation, http.StatusBadRequest,
		"PRODUCT_NAME_ALREADY_EXISTS", "product.name_already_exists", "Product name already exists")
)

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
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

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

func (e *DatabaseExecuteError) MessageKey() string {
	return ErrInternal.messageKey
}

func (e *DatabaseExecuteError) Params() map[string]string {
	return nil
}

// Message returns the untranslated fallback message
func (e *DatabaseExecuteError) Message() string {
	return ErrInternal.message
}

// Details is never exposed for 5xx responses; it is kept for logs.
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
