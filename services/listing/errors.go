package listing

import "fmt"

// ListingError means the case cannot produce a safe, schedulable result:
// an invalid benefit/issue combination, an unresolvable processing center,
// an inconsistent unavailability range, a missing mandatory name. The whole
// mapping pass is abandoned; no partial payload is returned.
type ListingError struct {
	Message string
}

func (e *ListingError) Error() string {
	return e.Message
}

// NewListingError builds a ListingError with a formatted message
func NewListingError(format string, args ...any) *ListingError {
	return &ListingError{Message: fmt.Sprintf(format, args...)}
}

// InvalidMappingError means a specific reference-data code (an adjustment, a
// language) has no known mapping. Raised instead of silently defaulting.
type InvalidMappingError struct {
	Message string
}

func (e *InvalidMappingError) Error() string {
	return e.Message
}

// NewInvalidMappingError builds an InvalidMappingError with a formatted message
func NewInvalidMappingError(format string, args ...any) *InvalidMappingError {
	return &InvalidMappingError{Message: fmt.Sprintf(format, args...)}
}
