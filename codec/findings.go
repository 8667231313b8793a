package codec

import (
	"github.com/prebid/openrtb-codec/errortypes"
)

// Findings are the validation results of one decode, in the order they were
// found. A nil Findings means the input was clean.
type Findings []*errortypes.Finding

// HasErrors reports whether any finding has Error severity.
func (f Findings) HasErrors() bool {
	for _, finding := range f {
		if finding.Sev == errortypes.SeverityError {
			return true
		}
	}
	return false
}

func (f Findings) filter(keep func(*errortypes.Finding) bool) Findings {
	var out Findings
	for _, finding := range f {
		if keep(finding) {
			out = append(out, finding)
		}
	}
	return out
}

func (f Findings) Errors() Findings {
	return f.filter(func(finding *errortypes.Finding) bool { return finding.Sev == errortypes.SeverityError })
}

func (f Findings) Warnings() Findings {
	return f.filter(func(finding *errortypes.Finding) bool { return finding.Sev == errortypes.SeverityWarning })
}

// OfKind returns the findings of one kind.
func (f Findings) OfKind(kind errortypes.FindingKind) Findings {
	return f.filter(func(finding *errortypes.Finding) bool { return finding.Kind == kind })
}

// Paths lists the field path of every finding.
func (f Findings) Paths() []string {
	if len(f) == 0 {
		return nil
	}
	paths := make([]string, len(f))
	for i, finding := range f {
		paths[i] = finding.Path
	}
	return paths
}

// Err returns the Error findings as an errortypes.AggregateErrors, or nil if
// there are none. Warnings never make a decode fail.
func (f Findings) Err() error {
	errs := f.Errors()
	if len(errs) == 0 {
		return nil
	}
	list := make([]error, len(errs))
	for i, finding := range errs {
		list[i] = finding
	}
	return errortypes.NewAggregateErrors("invalid OpenRTB payload", list)
}
