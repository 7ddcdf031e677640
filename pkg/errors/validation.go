package errors

// ValidationError is a specialized error type for input validation failures:
// an empty key or value passed to Set/Remove/Get, or a malformed Options
// value passed to Open.
type ValidationError struct {
	*baseError

	// field identifies which argument or option failed validation.
	field string

	// rule describes which constraint was violated (e.g. "non_empty").
	rule string
}

// NewValidationError creates a new validation-specific error with the provided context.
func NewValidationError(err error, code ErrorCode, msg string) *ValidationError {
	return &ValidationError{baseError: NewBaseError(err, code, msg)}
}

// WithMessage updates the error message while maintaining the ValidationError type.
func (ve *ValidationError) WithMessage(msg string) *ValidationError {
	ve.baseError.WithMessage(msg)
	return ve
}

// WithDetail adds contextual information while maintaining the ValidationError type.
func (ve *ValidationError) WithDetail(key string, value any) *ValidationError {
	ve.baseError.WithDetail(key, value)
	return ve
}

// WithField sets which field failed validation.
func (ve *ValidationError) WithField(field string) *ValidationError {
	ve.field = field
	return ve
}

// WithRule specifies which validation rule was violated.
func (ve *ValidationError) WithRule(rule string) *ValidationError {
	ve.rule = rule
	return ve
}

// Field returns the field name that failed validation.
func (ve *ValidationError) Field() string {
	return ve.field
}

// Rule returns the validation rule that was violated.
func (ve *ValidationError) Rule() string {
	return ve.rule
}

// NewEmptyArgumentError creates the error Set/Get/Remove return when called
// with an empty key or value; both are required to be non-empty strings.
func NewEmptyArgumentError(field string) *ValidationError {
	return NewValidationError(nil, ErrorCodeInvalidInput, field+" must be a non-empty string").
		WithField(field).
		WithRule("non_empty")
}

// NewConfigurationValidationError creates an error for an invalid Options field.
func NewConfigurationValidationError(field string, issue string) *ValidationError {
	return NewValidationError(nil, ErrorCodeInvalidInput, "configuration validation failed").
		WithField(field).
		WithRule("configuration_integrity").
		WithDetail("issue", issue)
}
