package normalization

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed metadata field. The
// item is skipped and stays in staging until upstream data is fixed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid metadata field %s: %s", e.Field, e.Reason)
}

// InfrastructureError wraps a storage or database failure with the
// operation and staging key it occurred on.
type InfrastructureError struct {
	Op  string
	Key string
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInfrastructure reports whether err is (or wraps) an InfrastructureError.
func IsInfrastructure(err error) bool {
	var ie *InfrastructureError
	return errors.As(err, &ie)
}
