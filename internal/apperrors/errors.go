package apperrors

import "fmt"

// ValidationError reports malformed or rule-violating input. It is always
// recoverable at the transport boundary as a 400 with its message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// CapacityError reports a full slot. A business-rule rejection, not a fault.
type CapacityError struct {
	Message string
}

func (e *CapacityError) Error() string {
	return e.Message
}

func NewCapacityError(message string) *CapacityError {
	return &CapacityError{Message: message}
}

// StorageError wraps any failure reaching or querying the persistence layer.
// Its detail is for logs only; callers see a generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
