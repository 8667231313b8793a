package ortb

import (
	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/openrtb2"
)

func validateBanner(path string, banner *openrtb2.Banner) []*errortypes.Finding {
	var findings []*errortypes.Finding

	if banner.W != nil && *banner.W < 0 {
		findings = append(findings, violation(join(path, "w"), "w must be a positive number"))
	}
	if banner.H != nil && *banner.H < 0 {
		findings = append(findings, violation(join(path, "h"), "h must be a positive number"))
	}
	if banner.WMin != nil && banner.WMax != nil && *banner.WMin > *banner.WMax {
		findings = append(findings, violation(path, "wmin (%d) is greater than wmax (%d)", *banner.WMin, *banner.WMax))
	}
	if banner.HMin != nil && banner.HMax != nil && *banner.HMin > *banner.HMax {
		findings = append(findings, violation(path, "hmin (%d) is greater than hmax (%d)", *banner.HMin, *banner.HMax))
	}

	return findings
}

func positive(v *int64) bool {
	return v != nil && *v > 0
}

func validateFormat(path string, format *openrtb2.Format) []*errortypes.Finding {
	var findings []*errortypes.Finding

	for _, f := range []struct {
		name  string
		value *int64
	}{
		{"w", format.W},
		{"h", format.H},
		{"wratio", format.WRatio},
		{"hratio", format.HRatio},
		{"wmin", format.WMin},
	} {
		if f.value != nil && *f.value < 0 {
			findings = append(findings, violation(join(path, f.name), "%s must be a positive number", f.name))
		}
	}

	usesHW := positive(format.W) || positive(format.H)
	usesRatios := positive(format.WMin) || positive(format.WRatio) || positive(format.HRatio)

	switch {
	case usesHW && usesRatios:
		findings = append(findings, violation(path, "format should define *either* {w, h} *or* {wmin, wratio, hratio}, but not both"))
	case !usesHW && !usesRatios:
		findings = append(findings, violation(path, "format should define *either* {w, h} (for static size requirements) *or* {wmin, wratio, hratio} (for flexible sizes) to be non-zero"))
	case usesHW && !(positive(format.W) && positive(format.H)):
		findings = append(findings, violation(path, "format must define non-zero \"h\" and \"w\" properties"))
	case usesRatios && !(positive(format.WMin) && positive(format.WRatio) && positive(format.HRatio)):
		findings = append(findings, violation(path, "format must define non-zero \"wmin\", \"wratio\", and \"hratio\" properties"))
	}

	return findings
}
