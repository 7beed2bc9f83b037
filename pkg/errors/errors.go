package errors

import (
	"fmt"
)

// ErrorType defines different categories of errors
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "VALIDATION"
	ErrorTypeNotFound            ErrorType = "NOT_FOUND"
	ErrorTypeConflict            ErrorType = "CONFLICT"
	ErrorTypeInternal            ErrorType = "INTERNAL"
	ErrorTypeShortage            ErrorType = "INVENTORY_SHORTAGE"
	ErrorTypeDuplicateClaim      ErrorType = "DUPLICATE_CLAIM_IN_EPOCH"
	ErrorTypeInactive            ErrorType = "LOCATION_INACTIVE"
	ErrorTypeNotOwner            ErrorType = "NOT_OWNER"
	ErrorTypeNotListed           ErrorType = "NOT_LISTED"
	ErrorTypeAlreadyListed       ErrorType = "ALREADY_LISTED"
	ErrorTypeInsufficientPayment ErrorType = "INSUFFICIENT_PAYMENT"
)

// AppError is the custom error type for the application
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work
func (e *AppError) Unwrap() error {
	return e.Err
}

// Constructor functions for different error types

// NewValidation creates a validation error
func NewValidation(message string) error {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NewNotFound creates a not found error
func NewNotFound(message string) error {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// NewConflict creates a state-conflict error
func NewConflict(message string) error {
	return &AppError{Type: ErrorTypeConflict, Message: message}
}

// NewInternal creates an internal error
func NewInternal(message string, err error) error {
	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// NewShortage creates an inventory shortage error
func NewShortage(message string) error {
	return &AppError{Type: ErrorTypeShortage, Message: message}
}

// NewDuplicateClaim creates a duplicate-claim-in-epoch error
func NewDuplicateClaim(message string) error {
	return &AppError{Type: ErrorTypeDuplicateClaim, Message: message}
}

// NewInactive creates a location-inactive error
func NewInactive(message string) error {
	return &AppError{Type: ErrorTypeInactive, Message: message}
}

// NewNotOwner creates a not-owner authorization error
func NewNotOwner(message string) error {
	return &AppError{Type: ErrorTypeNotOwner, Message: message}
}

// NewNotListed creates a not-listed error
func NewNotListed(message string) error {
	return &AppError{Type: ErrorTypeNotListed, Message: message}
}

// NewAlreadyListed creates an already-listed error
func NewAlreadyListed(message string) error {
	return &AppError{Type: ErrorTypeAlreadyListed, Message: message}
}

// NewInsufficientPayment creates an insufficient-payment error
func NewInsufficientPayment(message string) error {
	return &AppError{Type: ErrorTypeInsufficientPayment, Message: message}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, preserve the type
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Type:    appErr.Type,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
		}
	}

	// Otherwise, create an internal error
	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// TypeOf returns the error type, or ErrorTypeInternal for foreign errors
func TypeOf(err error) ErrorType {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// Type checking functions

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return TypeOf(err) == ErrorTypeValidation
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

// IsConflict checks if an error is a state-conflict error
func IsConflict(err error) bool {
	return TypeOf(err) == ErrorTypeConflict
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return TypeOf(err) == ErrorTypeInternal
}

// IsShortage checks if an error is an inventory shortage
func IsShortage(err error) bool {
	return TypeOf(err) == ErrorTypeShortage
}

// IsDuplicateClaim checks if an error is a duplicate claim rejection
func IsDuplicateClaim(err error) bool {
	return TypeOf(err) == ErrorTypeDuplicateClaim
}

// IsInactive checks if an error is a location-inactive rejection
func IsInactive(err error) bool {
	return TypeOf(err) == ErrorTypeInactive
}

// IsNotOwner checks if an error is a not-owner rejection
func IsNotOwner(err error) bool {
	return TypeOf(err) == ErrorTypeNotOwner
}

// IsNotListed checks if an error is a not-listed rejection
func IsNotListed(err error) bool {
	return TypeOf(err) == ErrorTypeNotListed
}

// IsAlreadyListed checks if an error is an already-listed rejection
func IsAlreadyListed(err error) bool {
	return TypeOf(err) == ErrorTypeAlreadyListed
}

// IsInsufficientPayment checks if an error is an insufficient payment rejection
func IsInsufficientPayment(err error) bool {
	return TypeOf(err) == ErrorTypeInsufficientPayment
}
