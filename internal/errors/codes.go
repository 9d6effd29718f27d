package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationUnknownCategory ErrorCode = "VALIDATION_005"
)

// Catalog error codes (CATALOG_*)
const (
	CatalogCardNotFound ErrorCode = "CATALOG_001"
	CatalogInvalidID    ErrorCode = "CATALOG_002"
)

// Selection error codes (SELECTION_*)
const (
	SelectionNegativeSpend ErrorCode = "SELECTION_001"
	SelectionInvalidRate   ErrorCode = "SELECTION_002"
)

// Session error codes (SESSION_*)
const (
	SessionNotFound  ErrorCode = "SESSION_001"
	SessionInvalidID ErrorCode = "SESSION_002"
	SessionExpired   ErrorCode = "SESSION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemEndpointDisabled   ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationUnknownCategory: "Unknown spend category tag",

	// Catalog errors
	CatalogCardNotFound: "Card not found in the catalog",
	CatalogInvalidID:    "Invalid card ID format",

	// Selection errors
	SelectionNegativeSpend: "Spend amounts cannot be negative",
	SelectionInvalidRate:   "Cashback rate must be between 0 and 100",

	// Session errors
	SessionNotFound:  "Session not found",
	SessionInvalidID: "Invalid session ID format",
	SessionExpired:   "Session has expired",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemEndpointDisabled:   "Endpoint is not available in this environment",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
