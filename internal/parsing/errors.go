package parsing

import "fmt"

// ParseError represents an unexpected failure inside normalization,
// segmentation, or extraction. Extractors are designed to be total, so a
// ParseError indicates a genuine defect rather than a data-quality issue.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
