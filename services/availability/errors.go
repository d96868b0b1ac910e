package availability

import "fmt"

// Validation error codes surfaced to the HTTP layer.
const (
	CodeInvalidTimezone    = "invalidTimezone"
	CodeDateRangeTooLarge  = "dateRangeTooLarge"
	CodeInvalidDateRange   = "invalidDateRange"
	CodeEmptyPractitioners = "emptyPractitionerSet"
)

// ValidationError is a caller-fault failure detected before any fetch occurs.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidTimezoneError reports an unresolvable or missing member timezone.
func NewInvalidTimezoneError(tz string) error {
	if tz == "" {
		return &ValidationError{Code: CodeInvalidTimezone, Message: "member timezone is required"}
	}
	return &ValidationError{Code: CodeInvalidTimezone, Message: fmt.Sprintf("unknown timezone %q", tz)}
}

// NewDateRangeTooLargeError reports a requested span exceeding the configured cap.
func NewDateRangeTooLargeError(maxDays int) error {
	return &ValidationError{
		Code:    CodeDateRangeTooLarge,
		Message: fmt.Sprintf("requested range exceeds the maximum of %d days", maxDays),
	}
}

// NewInvalidDateRangeError reports a window whose end does not follow its start.
func NewInvalidDateRangeError() error {
	return &ValidationError{Code: CodeInvalidDateRange, Message: "end time must be after start time"}
}

// NewEmptyPractitionerSetError reports a search with no candidate practitioners.
func NewEmptyPractitionerSetError() error {
	return &ValidationError{Code: CodeEmptyPractitioners, Message: "at least one practitioner ID is required"}
}
