package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_006"
	ErrCodeTimeout            ErrorCode = "COMMON_007"
	ErrCodeValidation         ErrorCode = "COMMON_008"
	ErrCodeSerialization      ErrorCode = "COMMON_009"
	ErrCodeDatabaseError      ErrorCode = "COMMON_010"
	ErrCodeCacheError         ErrorCode = "COMMON_011"
	ErrCodeStorageError       ErrorCode = "COMMON_012"
	ErrCodeMessagingError     ErrorCode = "COMMON_013"
	ErrCodeNotImplemented     ErrorCode = "COMMON_014"
)

// Sentinel aliases used by generic helpers.
const (
	CodeOK      = ErrorCode("OK")
	CodeUnknown = ErrorCode("UNKNOWN")
)

// Reaction Module Error Codes
const (
	ErrCodeReactionInvalidSMILES ErrorCode = "RXN_001"
	ErrCodeReactionEmptyInput    ErrorCode = "RXN_002"
	ErrCodeReactionParseFailed   ErrorCode = "RXN_003"
	ErrCodeReactionTypeUnknown   ErrorCode = "RXN_004"
	ErrCodeDatasetUnavailable    ErrorCode = "RXN_005"
	ErrCodeDatasetParseFailed    ErrorCode = "RXN_006"
)

// Fingerprint Module Error Codes
const (
	ErrCodeFingerprintFailed      ErrorCode = "FP_001"
	ErrCodeFingerprintSizeInvalid ErrorCode = "FP_002"
	ErrCodeSimilarityFailed       ErrorCode = "FP_003"
)

// Evidence Module Error Codes
const (
	ErrCodeSummaryNotFound    ErrorCode = "EVD_001"
	ErrCodeSummaryCorrupt     ErrorCode = "EVD_002"
	ErrCodeSummaryStale       ErrorCode = "EVD_003"
	ErrCodeAggregationFailed  ErrorCode = "EVD_004"
	ErrCodeManifestInvalid    ErrorCode = "EVD_005"
	ErrCodePublishFailed      ErrorCode = "EVD_006"
	ErrCodeGenerationConflict ErrorCode = "EVD_007"
)

// Catalog Module Error Codes
const (
	ErrCodeReagentUnknown     ErrorCode = "CAT_001"
	ErrCodeCatalogLoadFailed  ErrorCode = "CAT_002"
	ErrCodeOverlayInvalid     ErrorCode = "CAT_003"
	ErrCodeWeightTableInvalid ErrorCode = "CAT_004"
)

// Recommendation Module Error Codes
const (
	ErrCodeRecommendationFailed ErrorCode = "REC_001"
	ErrCodeInsufficientEvidence ErrorCode = "REC_002"
	ErrCodeExportFailed         ErrorCode = "REC_003"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeStorageError:       http.StatusInternalServerError,
	ErrCodeMessagingError:     http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeReactionInvalidSMILES: http.StatusBadRequest,
	ErrCodeReactionEmptyInput:    http.StatusBadRequest,
	ErrCodeReactionParseFailed:   http.StatusBadRequest,
	ErrCodeReactionTypeUnknown:   http.StatusUnprocessableEntity,
	ErrCodeDatasetUnavailable:    http.StatusServiceUnavailable,
	ErrCodeDatasetParseFailed:    http.StatusInternalServerError,

	ErrCodeFingerprintFailed:      http.StatusInternalServerError,
	ErrCodeFingerprintSizeInvalid: http.StatusBadRequest,
	ErrCodeSimilarityFailed:       http.StatusInternalServerError,

	ErrCodeSummaryNotFound:    http.StatusNotFound,
	ErrCodeSummaryCorrupt:     http.StatusInternalServerError,
	ErrCodeSummaryStale:       http.StatusConflict,
	ErrCodeAggregationFailed:  http.StatusInternalServerError,
	ErrCodeManifestInvalid:    http.StatusInternalServerError,
	ErrCodePublishFailed:      http.StatusInternalServerError,
	ErrCodeGenerationConflict: http.StatusConflict,

	ErrCodeReagentUnknown:     http.StatusNotFound,
	ErrCodeCatalogLoadFailed:  http.StatusInternalServerError,
	ErrCodeOverlayInvalid:     http.StatusBadRequest,
	ErrCodeWeightTableInvalid: http.StatusInternalServerError,

	ErrCodeRecommendationFailed: http.StatusInternalServerError,
	ErrCodeInsufficientEvidence: http.StatusUnprocessableEntity,
	ErrCodeExportFailed:         http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeStorageError:       "object storage error",
	ErrCodeMessagingError:     "message broker error",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeReactionInvalidSMILES: "invalid reaction SMILES",
	ErrCodeReactionEmptyInput:    "reaction input is empty",
	ErrCodeReactionParseFailed:   "failed to parse reaction encoding",
	ErrCodeReactionTypeUnknown:   "reaction type could not be determined",
	ErrCodeDatasetUnavailable:    "reaction dataset unavailable",
	ErrCodeDatasetParseFailed:    "failed to parse reaction dataset",

	ErrCodeFingerprintFailed:      "failed to generate fingerprint",
	ErrCodeFingerprintSizeInvalid: "fingerprint bit size invalid",
	ErrCodeSimilarityFailed:       "similarity computation failed",

	ErrCodeSummaryNotFound:    "evidence summary not found",
	ErrCodeSummaryCorrupt:     "evidence summary corrupt",
	ErrCodeSummaryStale:       "evidence summary stale",
	ErrCodeAggregationFailed:  "evidence aggregation failed",
	ErrCodeManifestInvalid:    "summary manifest invalid",
	ErrCodePublishFailed:      "failed to publish summary generation",
	ErrCodeGenerationConflict: "summary generation conflict",

	ErrCodeReagentUnknown:     "reagent not in catalog",
	ErrCodeCatalogLoadFailed:  "failed to load reagent catalog",
	ErrCodeOverlayInvalid:     "catalog overlay invalid",
	ErrCodeWeightTableInvalid: "scoring weight table invalid",

	ErrCodeRecommendationFailed: "recommendation failed",
	ErrCodeInsufficientEvidence: "insufficient evidence for recommendation",
	ErrCodeExportFailed:         "failed to export prediction payload",
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
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
