package errortypes

// Severity represents the severity level of a codec finding or error.
type Severity int

const (
	// SeverityUnknown represents an unknown severity level.
	SeverityUnknown Severity = iota

	// SeverityError represents a violation a strict caller should reject, such as a
	// missing required field or a required field of the wrong type.
	SeverityError

	// SeverityWarning represents a deviation from the OpenRTB schema that was
	// preserved as-is, such as an unknown enum value or a cross-field violation.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// isError treats anything that does not carry a severity as an error.
func isError(err error) bool {
	s, ok := err.(Coder)
	return !ok || s.Severity() == SeverityError
}

// IsWarning returns true if an error is labeled with a Severity of SeverityWarning.
func IsWarning(err error) bool {
	s, ok := err.(Coder)
	return ok && s.Severity() == SeverityWarning
}

// ContainsError checks if the error list contains an error severity entry.
func ContainsError(errors []error) bool {
	for _, err := range errors {
		if isError(err) {
			return true
		}
	}

	return false
}

// ErrorOnly returns a new error list with only the error severity entries.
func ErrorOnly(errs []error) []error {
	errsError := make([]error, 0, len(errs))

	for _, err := range errs {
		if isError(err) {
			errsError = append(errsError, err)
		}
	}

	return errsError
}

// WarningOnly returns a new error list with only the warning severity entries.
func WarningOnly(errs []error) []error {
	errsWarning := make([]error, 0, len(errs))

	for _, err := range errs {
		if IsWarning(err) {
			errsWarning = append(errsWarning, err)
		}
	}

	return errsWarning
}
