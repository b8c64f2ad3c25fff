package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// FieldErrors collects validation messages keyed by field path, e.g. "lines[0].amount"
type FieldErrors map[string][]string

// Add appends a message for a field
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// HasErrors reports whether any field failed
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(fe[k], "; ")))
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// UnavailableError represents a failing upstream dependency
type UnavailableError struct {
	Service string
	Err     error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s unavailable", e.Service)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound                  = &NotFoundError{Entity: "user"}
	ErrPropertyNotFound              = &NotFoundError{Entity: "property"}
	ErrRoomNotFound                  = &NotFoundError{Entity: "room"}
	ErrServicePriceNotFound          = &NotFoundError{Entity: "service price"}
	ErrTenancyNotFound               = &NotFoundError{Entity: "tenancy"}
	ErrInvoiceNotFound               = &NotFoundError{Entity: "invoice"}
	ErrInvoiceLineNotFound           = &NotFoundError{Entity: "invoice line"}
	ErrPaymentNotFound               = &NotFoundError{Entity: "payment"}
	ErrMaintenanceRequestNotFound    = &NotFoundError{Entity: "maintenance request"}
	ErrMaintenanceAttachmentNotFound = &NotFoundError{Entity: "maintenance attachment"}
	ErrMeterReadingNotFound          = &NotFoundError{Entity: "meter reading"}
	ErrInviteNotFound                = &NotFoundError{Entity: "invite"}
	ErrNotificationNotFound          = &NotFoundError{Entity: "notification"}
	ErrAuditLogNotFound              = &NotFoundError{Entity: "audit log"}
	ErrFileAssetNotFound             = &NotFoundError{Entity: "file"}
	ErrTenantNotFound                = &NotFoundError{Entity: "tenant"}
)

// Already Exists Errors
var (
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrPhoneExists        = &AlreadyExistsError{Entity: "user", Context: "with this phone"}
	ErrRoomExists         = &AlreadyExistsError{Entity: "room", Context: "with this number in the property"}
	ErrServicePriceExists = &AlreadyExistsError{Entity: "service price", Context: "for this service type in the property"}
	ErrInvoiceExists      = &AlreadyExistsError{Entity: "invoice", Context: "for this period in the tenancy"}
	ErrMeterReadingExists = &AlreadyExistsError{Entity: "meter reading", Context: "for this period in the room"}
)

// Business Logic Errors
var (
	ErrInvalidStatus         = &ValidationError{Field: "status", Message: "invalid status"}
	ErrInvalidPeriodFormat   = &ValidationError{Field: "period", Message: "period must use the YYYY-MM format"}
	ErrInvalidDateFormat     = &ValidationError{Message: "dates must use the YYYY-MM-DD format"}
	ErrInvalidAmount         = &ValidationError{Field: "amount", Message: "invalid amount"}
	ErrInviteAlreadyAccepted = &ValidationError{Field: "status", Message: "invite has already been accepted"}
	ErrInviteAlreadyRejected = &ValidationError{Field: "status", Message: "invite has already been rejected"}
	ErrInviteExpired         = &ValidationError{Field: "status", Message: "invite has expired"}
	ErrInviteContactRequired = &ValidationError{Field: "email", Message: "email or phone is required"}
	ErrContractRequired      = &ValidationError{Field: "contract_file", Message: "contract file is required"}
	ErrContractMustBePDF     = &ValidationError{Field: "file", Message: "only PDF files are accepted for contracts"}
	ErrInvalidFilePurpose    = &ValidationError{Field: "purpose", Message: "invalid file purpose"}
	ErrBankInfoLandlordOnly  = &ValidationError{Field: "bank_account_number", Message: "only landlords can set bank information"}
	ErrInvalidBankAccount    = &ValidationError{Field: "bank_account_number", Message: "account number must be 6-19 digits"}
	ErrBankInfoMissing       = &ValidationError{Field: "bank", Message: "landlord has not configured bank information"}
	ErrMeterValueDecreased   = &ValidationError{Message: "new meter value cannot be lower than the old value"}
	ErrInvalidRole           = &ValidationError{Field: "role", Message: "role must be landlord or tenant"}
	ErrTenantRoleRequired    = &ValidationError{Field: "tenant", Message: "user is not a tenant"}
	ErrNoActiveTenancy       = &ValidationError{Field: "room", Message: "no active tenancy for this room"}
)

// Authorization Errors
var (
	ErrOnlyLandlords       = &AuthorizationError{Message: "only landlords can perform this action"}
	ErrNotPropertyOwner    = &AuthorizationError{Message: "you do not own this property"}
	ErrSuperuserRequired   = &AuthorizationError{Message: "superuser access required"}
	ErrInvoiceAccessDenied = &AuthorizationError{Message: "you do not have access to this invoice"}
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInactiveUser        = &AuthenticationError{Message: "user account is disabled"}
	ErrInvalidRefreshToken = &AuthenticationError{Message: "invalid refresh token"}
	ErrRefreshTokenExpired = &AuthenticationError{Message: "refresh token has expired"}
)

// Upstream Errors
var (
	ErrBanksUnavailable = &UnavailableError{Service: "bank list"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or a FieldErrors set
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var fieldErrs FieldErrors
	return errors.As(err, &validationErr) || errors.As(err, &fieldErrs)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsUnavailable checks if an error is an UnavailableError
func IsUnavailable(err error) bool {
	var unavailableErr *UnavailableError
	return errors.As(err, &unavailableErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// AsFieldErrors extracts per-field messages from err, if any
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) && validationErr.Field != "" {
		return FieldErrors{validationErr.Field: {validationErr.Message}}, true
	}
	return nil, false
}

// HTTPStatus maps err to the status code returned by the API
func HTTPStatus(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsAuthorization(err):
		return http.StatusForbidden
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Body renders err as the JSON error payload; internal errors are not exposed
func Body(err error) map[string]interface{} {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		return map[string]interface{}{"error": "internal server error"}
	}
	body := map[string]interface{}{"error": err.Error()}
	if fields, ok := AsFieldErrors(err); ok {
		body["details"] = fields
	}
	return body
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewUnavailableError wraps an upstream failure
func NewUnavailableError(service string, err error) error {
	return &UnavailableError{Service: service, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
