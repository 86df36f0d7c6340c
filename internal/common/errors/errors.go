// Package errors provides standardized error handling for the trip-planning pipeline.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidTripRequest ErrorCode = "INVALID_TRIP_REQUEST"

	ErrCodeTaskNotFound  ErrorCode = "TASK_NOT_FOUND"
	ErrCodeAgentNotFound ErrorCode = "AGENT_NOT_FOUND"

	ErrCodeSchemaValidationFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"
	ErrCodeOutputDecodeFailed     ErrorCode = "OUTPUT_DECODE_FAILED"

	ErrCodeLLMTimeout          ErrorCode = "LLM_TIMEOUT"
	ErrCodeLLMGenerationFailed ErrorCode = "LLM_GENERATION_FAILED"
	ErrCodeWebSearchTimeout    ErrorCode = "WEB_SEARCH_TIMEOUT"
	ErrCodeEmailSendFailed     ErrorCode = "EMAIL_SEND_FAILED"

	ErrCodeContextStoreFailed ErrorCode = "CONTEXT_STORE_FAILED"
	ErrCodeRunStoreFailed     ErrorCode = "RUN_STORE_FAILED"
	ErrCodeRunNotFound        ErrorCode = "RUN_NOT_FOUND"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidTripRequestError creates a non-retryable request validation error.
func NewInvalidTripRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidTripRequest,
		Message:   "Trip request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTaskNotFoundError creates a non-retryable task lookup error.
func NewTaskNotFoundError(taskName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTaskNotFound,
		Message:   "Task not found in pipeline definition",
		Details:   fmt.Sprintf("taskName: %s", taskName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAgentNotFoundError creates a non-retryable agent lookup error.
func NewAgentNotFoundError(agentName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAgentNotFound,
		Message:   "Agent not found in registry",
		Details:   fmt.Sprintf("agentName: %s", agentName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaValidationFailedError creates a non-retryable structured-output error.
func NewSchemaValidationFailedError(taskName, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaValidationFailed,
		Message:   "Task output failed schema validation",
		Details:   fmt.Sprintf("taskName: %s, %s", taskName, details),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOutputDecodeFailedError creates a non-retryable decode error.
func NewOutputDecodeFailedError(taskName string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOutputDecodeFailed,
		Message:   "Task output is not valid JSON",
		Details:   fmt.Sprintf("taskName: %s, error: %s", taskName, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMTimeoutError creates a retryable LLM timeout error.
func NewLLMTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMTimeout,
		Message:   "Generation API timeout",
		Details:   "API call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMGenerationFailedError creates a retryable generation error.
func NewLLMGenerationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMGenerationFailed,
		Message:   "Generation API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewWebSearchTimeoutError creates a non-retryable (returns empty) web search timeout error.
func NewWebSearchTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeWebSearchTimeout,
		Message:   "Web search API timeout",
		Details:   "Search call exceeded timeout, research continues without findings",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailSendFailedError creates a retryable email delivery error.
func NewEmailSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailSendFailed,
		Message:   "Itinerary email delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewContextStoreFailedError creates a retryable context store error.
func NewContextStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeContextStoreFailed,
		Message:   "Context store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRunStoreFailedError creates a retryable run store error.
func NewRunStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRunStoreFailed,
		Message:   "Run store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRunNotFoundError creates a non-retryable run lookup error.
func NewRunNotFoundError(runID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRunNotFound,
		Message:   "Pipeline run not found",
		Details:   fmt.Sprintf("runId: %s", runID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// GetRetryCount returns the recommended transport retry count per code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeLLMGenerationFailed,
		ErrCodeEmailSendFailed,
		ErrCodeContextStoreFailed,
		ErrCodeRunStoreFailed:
		return 3

	case ErrCodeLLMTimeout:
		return 1

	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "TRIP_REQUEST"):
		return "REQUEST"
	case strings.Contains(codeStr, "TASK") || strings.Contains(codeStr, "AGENT"):
		return "PIPELINE"
	case strings.Contains(codeStr, "SCHEMA") || strings.Contains(codeStr, "DECODE"):
		return "VALIDATION"
	case strings.Contains(codeStr, "LLM") || strings.Contains(codeStr, "WEB"):
		return "AI"
	case strings.Contains(codeStr, "EMAIL"):
		return "DELIVERY"
	case strings.Contains(codeStr, "STORE") || strings.Contains(codeStr, "RUN"):
		return "STORAGE"
	default:
		return "OTHER"
	}
}
