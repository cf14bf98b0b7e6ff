/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrDataNotFound = errors.New("data not found")
)

// ErrorCode identifies a class of failure. Validation failures are caller-fixable, every other
// code is an infrastructure condition.
type ErrorCode string

const (
	ValidationError     ErrorCode = "validation-error"
	CapabilityNotFound  ErrorCode = "capability-not-found"
	StoreUnavailable    ErrorCode = "store-unavailable"
	RegistryUnavailable ErrorCode = "registry-unavailable"
	QueueUnavailable    ErrorCode = "queue-unavailable"
	IdentityUnavailable ErrorCode = "identity-unavailable"
	Conflict            ErrorCode = "conflict"
	InvalidValue        ErrorCode = "invalid-value"
	MethodNotFound      ErrorCode = "method-not-found"
	SystemError         ErrorCode = "system-error"
)

// Name returns the code name.
func (c ErrorCode) Name() string {
	return string(c)
}

var httpStatuses = map[ErrorCode]int{ //nolint:gochecknoglobals
	ValidationError:     http.StatusBadRequest,
	InvalidValue:        http.StatusBadRequest,
	CapabilityNotFound:  http.StatusFailedDependency,
	StoreUnavailable:    http.StatusServiceUnavailable,
	RegistryUnavailable: http.StatusServiceUnavailable,
	QueueUnavailable:    http.StatusServiceUnavailable,
	IdentityUnavailable: http.StatusServiceUnavailable,
	Conflict:            http.StatusConflict,
	MethodNotFound:      http.StatusNotFound,
	SystemError:         http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code that corresponds to the error code.
func (c ErrorCode) HTTPStatus() int {
	if status, ok := httpStatuses[c]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// CustomError is the error returned by the admission and commit pipeline.
type CustomError struct {
	Code            ErrorCode
	Component       Component
	FailedOperation string
	IncorrectValue  string
	Err             error
}

// NewValidationError creates a caller-fixable error. msg is the single violation reported to the caller.
func NewValidationError(component Component, msg string) *CustomError {
	return &CustomError{
		Code:      ValidationError,
		Component: component,
		Err:       errors.New(msg),
	}
}

// NewInvalidValueError reports a malformed input value.
func NewInvalidValueError(incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           InvalidValue,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

// NewSystemError reports an unexpected failure of the given component and operation.
func NewSystemError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

// NewCustomError creates an error with the given code.
func NewCustomError(code ErrorCode, component Component, err error) *CustomError {
	return &CustomError{
		Code:      code,
		Component: component,
		Err:       err,
	}
}

func (e *CustomError) Error() string {
	switch {
	case e.IncorrectValue != "":
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	case e.Component != "" && e.FailedOperation != "":
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.Component, e.FailedOperation, e.Err)
	case e.Component != "":
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.Component, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Message returns the single human-readable message surfaced to the caller.
func (e *CustomError) Message() string {
	if e.Err == nil {
		return string(e.Code)
	}

	return e.Err.Error()
}

// HTTPCodeMsg returns the HTTP status and response body for the error.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	body := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Message(),
	}

	if e.Component != "" {
		body["component"] = e.Component
	}

	if e.IncorrectValue != "" {
		body["incorrectValue"] = e.IncorrectValue
	}

	return e.Code.HTTPStatus(), body
}

// HasCode returns true if err is (or wraps) a CustomError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var ce *CustomError

	return errors.As(err, &ce) && ce.Code == code
}

// IsValidation returns true if err is a caller-fixable validation error.
func IsValidation(err error) bool {
	return HasCode(err, ValidationError)
}

// GetErrorDetails returns the message, code and component of the given error.
func GetErrorDetails(err error) (string, string, Component) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Message(), string(ce.Code), ce.Component
	}

	return err.Error(), "", ""
}
