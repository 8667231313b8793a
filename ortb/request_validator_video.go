package ortb

import (
	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/openrtb2"
)

func validateVideo(path string, video *openrtb2.Video) []*errortypes.Finding {
	var findings []*errortypes.Finding

	if video.W != nil && *video.W < 0 {
		findings = append(findings, violation(join(path, "w"), "w must be a positive number"))
	}
	if video.H != nil && *video.H < 0 {
		findings = append(findings, violation(join(path, "h"), "h must be a positive number"))
	}
	if video.MinDuration != nil && video.MaxDuration != nil && *video.MinDuration > *video.MaxDuration {
		findings = append(findings, violation(path, "minduration (%d) is greater than maxduration (%d)", *video.MinDuration, *video.MaxDuration))
	}
	if video.MinBitRate != nil && *video.MinBitRate < 0 {
		findings = append(findings, violation(join(path, "minbitrate"), "minbitrate must be a positive number"))
	}
	if video.MaxBitRate != nil && *video.MaxBitRate < 0 {
		findings = append(findings, violation(join(path, "maxbitrate"), "maxbitrate must be a positive number"))
	}
	if video.MinBitRate != nil && video.MaxBitRate != nil && *video.MinBitRate > *video.MaxBitRate {
		findings = append(findings, violation(path, "minbitrate (%d) is greater than maxbitrate (%d)", *video.MinBitRate, *video.MaxBitRate))
	}
	if video.Protocol == nil && len(video.Protocols) == 0 {
		findings = append(findings, violation(path, "video must define \"protocol\" or \"protocols\""))
	}

	return findings
}
