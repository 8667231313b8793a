package errortypes

import "fmt"

// FindingKind classifies a deviation reported while decoding.
type FindingKind int

const (
	MissingRequiredField FindingKind = iota
	TypeMismatch
	UnknownEnumValue
	SemanticViolation
	MissingRecommendedField
)

func (k FindingKind) String() string {
	switch k {
	case MissingRequiredField:
		return "MissingRequiredField"
	case TypeMismatch:
		return "TypeMismatch"
	case UnknownEnumValue:
		return "UnknownEnumValue"
	case SemanticViolation:
		return "SemanticViolation"
	case MissingRecommendedField:
		return "MissingRecommendedField"
	default:
		return fmt.Sprintf("FindingKind(%d)", int(k))
	}
}

// Finding is a recoverable deviation from the OpenRTB schema. The decoder never
// aborts on a finding; callers decide which severities they reject.
type Finding struct {
	// Path is the wire path of the field, e.g. "imp[2].banner.w".
	Path    string
	Kind    FindingKind
	Message string
	Sev     Severity
}

func (f *Finding) Error() string {
	return fmt.Sprintf("%s: %s", f.Path, f.Message)
}

func (f *Finding) Severity() Severity {
	return f.Sev
}

func (f *Finding) Code() int {
	switch f.Kind {
	case MissingRequiredField:
		return MissingRequiredFieldErrorCode
	case TypeMismatch:
		if f.Sev == SeverityWarning {
			return TypeMismatchWarningCode
		}
		return TypeMismatchErrorCode
	case UnknownEnumValue:
		return UnknownEnumValueWarningCode
	case SemanticViolation:
		return SemanticViolationWarningCode
	case MissingRecommendedField:
		return MissingRecommendedFieldWarningCode
	}
	if f.Sev == SeverityWarning {
		return UnknownWarningCode
	}
	return UnknownErrorCode
}

// NewMissingRequired reports a required field that is absent or empty.
func NewMissingRequired(path, message string) *Finding {
	return &Finding{Path: path, Kind: MissingRequiredField, Message: message, Sev: SeverityError}
}

// NewTypeMismatch reports a value of the wrong JSON type. It is an error only when
// the field is required.
func NewTypeMismatch(path, message string, required bool) *Finding {
	sev := SeverityWarning
	if required {
		sev = SeverityError
	}
	return &Finding{Path: path, Kind: TypeMismatch, Message: message, Sev: sev}
}

// NewUnknownEnumValue reports a value outside of a field's known domain.
func NewUnknownEnumValue(path, message string) *Finding {
	return &Finding{Path: path, Kind: UnknownEnumValue, Message: message, Sev: SeverityWarning}
}

// NewSemanticViolation reports a broken cross-field rule.
func NewSemanticViolation(path, message string) *Finding {
	return &Finding{Path: path, Kind: SemanticViolation, Message: message, Sev: SeverityWarning}
}

// NewMissingRecommended reports an absent recommended field.
func NewMissingRecommended(path, message string) *Finding {
	return &Finding{Path: path, Kind: MissingRecommendedField, Message: message, Sev: SeverityWarning}
}
