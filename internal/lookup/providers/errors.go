package providers

import (
	"errors"
	"fmt"

	"idlookup/internal/lookup/models"
)

// ErrorKind is the normalized failure taxonomy for a search attempt.
type ErrorKind string

const (
	// KindValidation indicates the query does not match the category's format
	KindValidation ErrorKind = "validation"

	// KindBlocked indicates the query is on the category's protected list
	KindBlocked ErrorKind = "blocked"

	// KindNetwork indicates a non-2xx status or a connectivity failure
	KindNetwork ErrorKind = "network"

	// KindParse indicates the upstream body was not valid JSON
	KindParse ErrorKind = "parse"

	// KindNotFound indicates the upstream reported no match
	KindNotFound ErrorKind = "not_found"

	// KindInvalidResponse indicates a success reply that fails the minimal shape check
	KindInvalidResponse ErrorKind = "invalid_response"

	// KindInternal indicates an unexpected failure
	KindInternal ErrorKind = "internal"
)

// User-facing messages.
const (
	MsgInvalidIdentity  = "Please enter a valid 12-digit Aadhaar number."
	MsgInvalidNumber    = "Please enter a valid 10-digit mobile number."
	MsgBlocked          = "This number is protected and cannot be searched."
	MsgConnectivity     = "Could not connect to the server. Please check your internet connection and try again."
	MsgUnparseable      = "Received an invalid response from the API service. It might be temporarily unavailable."
	MsgIdentityNotFound = "No results found for this Aadhaar number. Please check the number and try again."
	MsgNumberNotFound   = "No details found for this number."
	MsgInvalidResponse  = "Received an invalid or unexpected response from the server. Please try again."
	MsgSomethingWrong   = "Something went wrong. Please try again later."
)

// LookupError carries the failure kind together with the one message shown to the user.
type LookupError struct {
	Kind       ErrorKind
	Category   models.Category
	Message    string
	StatusCode int
	Underlying error
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("lookup %s [%s]: %s: %v", e.Category, e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("lookup %s [%s]: %s", e.Category, e.Kind, e.Message)
}

// Unwrap supports error unwrapping
func (e *LookupError) Unwrap() error {
	return e.Underlying
}

// NewLookupError creates a normalized lookup error
func NewLookupError(kind ErrorKind, category models.Category, message string, underlying error) *LookupError {
	return &LookupError{
		Kind:       kind,
		Category:   category,
		Message:    message,
		Underlying: underlying,
	}
}

// NewStatusError reports a non-2xx upstream reply.
func NewStatusError(category models.Category, statusCode int) *LookupError {
	return &LookupError{
		Kind:       KindNetwork,
		Category:   category,
		Message:    fmt.Sprintf("The server responded with an error (Status: %d)", statusCode),
		StatusCode: statusCode,
	}
}

// NewValidationError reports a query with the wrong shape for its category.
func NewValidationError(category models.Category) *LookupError {
	msg := MsgInvalidIdentity
	if category == models.CategoryNumber {
		msg = MsgInvalidNumber
	}
	return NewLookupError(KindValidation, category, msg, nil)
}

// KindOf extracts the error kind from an error
func KindOf(err error) ErrorKind {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindInternal
}

// UserMessage returns the display string for any error the orchestrator produced.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var le *LookupError
	if errors.As(err, &le) && le.Message != "" {
		return le.Message
	}
	return MsgSomethingWrong
}

// IsKind reports whether err is a LookupError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var le *LookupError
	return errors.As(err, &le) && le.Kind == kind
}
