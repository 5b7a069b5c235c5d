package serverutils

// ValidationError rejects a request before anything is persisted
// (empty message, missing action type, missing feedback fields).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
