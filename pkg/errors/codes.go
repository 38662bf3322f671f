package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
// The prefix before the underscore names the owning module.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeStorageError       ErrorCode = "COMMON_014"
)

// Aliases used by call sites.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeRateLimit    = ErrCodeTooManyRequests
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
)

// Audit Module Error Codes
const (
	CodeDocumentUnreadable  ErrorCode = "AUDIT_001"
	CodeSchemaValidation    ErrorCode = "AUDIT_002"
	CodeProviderUnavailable ErrorCode = "AUDIT_003"
	CodeEmailUnavailable    ErrorCode = "AUDIT_004"
	CodeUnknownDocumentType ErrorCode = "AUDIT_005"
	CodeUnsupportedLanguage ErrorCode = "AUDIT_006"
	CodeReportExportFailed  ErrorCode = "AUDIT_007"
)

// Provider Module Error Codes.  These never cross the failover boundary.
const (
	CodeProviderConstruction ErrorCode = "PROVIDER_001"
	CodeProviderInvocation   ErrorCode = "PROVIDER_002"
	CodeProviderTimeout      ErrorCode = "PROVIDER_003"
	CodeProviderEmptyOutput  ErrorCode = "PROVIDER_004"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeStorageError:       http.StatusInternalServerError,

	CodeDocumentUnreadable:  http.StatusUnprocessableEntity,
	CodeSchemaValidation:    http.StatusBadGateway,
	CodeProviderUnavailable: http.StatusServiceUnavailable,
	CodeEmailUnavailable:    http.StatusServiceUnavailable,
	CodeUnknownDocumentType: http.StatusBadRequest,
	CodeUnsupportedLanguage: http.StatusBadRequest,
	CodeReportExportFailed:  http.StatusBadGateway,

	CodeProviderConstruction: http.StatusServiceUnavailable,
	CodeProviderInvocation:   http.StatusBadGateway,
	CodeProviderTimeout:      http.StatusGatewayTimeout,
	CodeProviderEmptyOutput:  http.StatusBadGateway,
}

// ErrorCodeMessage maps ErrorCodes to default user-safe messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",
	ErrCodeStorageError:       "storage error",

	CodeDocumentUnreadable:  "document text is empty or too short to analyze",
	CodeSchemaValidation:    "analysis output did not match the expected schema",
	CodeProviderUnavailable: "Both primary and backup engines are currently unavailable due to high traffic.",
	CodeEmailUnavailable:    "Email generation service is busy.",
	CodeUnknownDocumentType: "unknown document type",
	CodeUnsupportedLanguage: "unsupported explanation language",
	CodeReportExportFailed:  "failed to export report",

	CodeProviderConstruction: "inference provider could not be constructed",
	CodeProviderInvocation:   "inference provider request failed",
	CodeProviderTimeout:      "inference provider timed out",
	CodeProviderEmptyOutput:  "inference provider returned no output",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 1 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
