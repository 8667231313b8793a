package errortypes

import "fmt"

// ParseError is returned when the input handed to the decoder is not a
// syntactically valid JSON object. No partial result accompanies it.
type ParseError struct {
	Message string
	Cause   error
}

func (err *ParseError) Error() string {
	if err.Cause != nil {
		return fmt.Sprintf("%s: %v", err.Message, err.Cause)
	}
	return err.Message
}

func (err *ParseError) Unwrap() error {
	return err.Cause
}

func (err *ParseError) Code() int {
	return ParseErrorCode
}

func (err *ParseError) Severity() Severity {
	return SeverityError
}

// SerializationError is returned by the encoder when a value cannot be written as
// JSON: an extension or unknown payload that is not valid JSON, or a non-finite
// float. Path names the offending field, e.g. "imp[0].ext".
type SerializationError struct {
	Path    string
	Message string
}

func (err *SerializationError) Error() string {
	if err.Path == "" {
		return err.Message
	}
	return fmt.Sprintf("%s: %s", err.Path, err.Message)
}

func (err *SerializationError) Code() int {
	return SerializationErrorCode
}

func (err *SerializationError) Severity() Severity {
	return SeverityError
}
