package errortypes

// Defines numeric codes for terminal codec errors.
const (
	UnknownErrorCode = 999
	ParseErrorCode   = iota
	SerializationErrorCode
	MissingRequiredFieldErrorCode
	TypeMismatchErrorCode
)

// Defines numeric codes for findings reported as warnings.
const (
	UnknownWarningCode          = 10999
	UnknownEnumValueWarningCode = iota + 10000
	SemanticViolationWarningCode
	MissingRecommendedFieldWarningCode
	TypeMismatchWarningCode
)

// Coder provides an error or warning code with severity.
type Coder interface {
	Code() int
	Severity() Severity
}

// ReadCode returns the error or warning code, or UnknownErrorCode if unavailable.
func ReadCode(err error) int {
	if e, ok := err.(Coder); ok {
		return e.Code()
	}
	return UnknownErrorCode
}
