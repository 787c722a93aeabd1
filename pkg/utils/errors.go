package utils

import (
	"fmt"
	"strings"
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewAppError(code string, message string, details ...string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s - %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validation error codes
const (
	ErrCodeTypeMismatch      = "TYPE_MISMATCH"
	ErrCodeOutOfRange        = "OUT_OF_RANGE"
	ErrCodeInvalidEnum       = "INVALID_ENUM"
	ErrCodeCrossField        = "CROSS_FIELD_VIOLATION"
	ErrCodeMalformedDate     = "MALFORMED_DATE"
	ErrCodeContractViolation = "CONTRACT_VIOLATION"
)

func NewTypeMismatch(message string, details ...string) *AppError {
	return NewAppError(ErrCodeTypeMismatch, message, details...)
}

func NewOutOfRange(field string, min, max, received interface{}) *AppError {
	return NewAppError(ErrCodeOutOfRange,
		fmt.Sprintf("%s must be between %v and %v", field, min, max),
		fmt.Sprintf("received %v", received))
}

func NewInvalidEnum(field, received string, allowed ...string) *AppError {
	return NewAppError(ErrCodeInvalidEnum,
		fmt.Sprintf("%s must be one of %s", field, strings.Join(allowed, ", ")),
		fmt.Sprintf("received %q", received))
}

func NewCrossField(message string, details ...string) *AppError {
	return NewAppError(ErrCodeCrossField, message, details...)
}

func NewMalformedDate(received string) *AppError {
	return NewAppError(ErrCodeMalformedDate,
		"date must be a valid ISO-8601 YYYY-MM-DD value",
		fmt.Sprintf("received %q", received))
}

func NewContractViolation(message string, details ...string) *AppError {
	return NewAppError(ErrCodeContractViolation, message, details...)
}
