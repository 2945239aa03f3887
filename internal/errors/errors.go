package errors

import (
	"errors"
	"fmt"
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
	Context string // Additional context like "with this material code"
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

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrBaseNotFound          = &NotFoundError{Entity: "base"}
	ErrWorkshopNotFound      = &NotFoundError{Entity: "workshop"}
	ErrEquipmentTypeNotFound = &NotFoundError{Entity: "equipment type"}
	ErrEquipmentNotFound     = &NotFoundError{Entity: "equipment"}
	ErrComponentNotFound     = &NotFoundError{Entity: "component"}
	ErrSparePartNotFound     = &NotFoundError{Entity: "spare part"}
	ErrSupplierNotFound      = &NotFoundError{Entity: "supplier"}
	ErrAssociationNotFound   = &NotFoundError{Entity: "association"}
)

// Already Exists Errors
var (
	ErrBaseExists        = &AlreadyExistsError{Entity: "base", Context: "with this name"}
	ErrSparePartExists   = &AlreadyExistsError{Entity: "spare part", Context: "with this material code"}
	ErrAssociationExists = &AlreadyExistsError{Entity: "association", Context: "for this equipment, component and spare part"}
)

// Business Logic Errors
var (
	ErrInvalidBusyLevel        = errors.New("invalid busy level")
	ErrInvalidImportanceLevel  = errors.New("invalid importance level")
	ErrInvalidSortField        = errors.New("invalid sort field")
	ErrInvalidSupplyCycleRange = errors.New("invalid supply cycle range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingAuthHeader  = &AuthenticationError{Message: "authorization header is missing"}
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

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
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
