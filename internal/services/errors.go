package services

// ValidationError marks missing or malformed request input. Handlers translate
// it to a 400 with the offending field name when known.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
