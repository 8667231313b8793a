package codec

import (
	"github.com/prebid/openrtb-codec/openrtb2"
	"github.com/prebid/openrtb-codec/ortb"
)

// ValidateResponse checks a decoded bid response against the request it answers.
// The findings are SemanticViolation warnings with paths rooted at the response.
func ValidateResponse(req *openrtb2.BidRequest, resp *openrtb2.BidResponse) Findings {
	findings := ortb.ValidateResponse(req, resp)
	if len(findings) == 0 {
		return nil
	}
	return Findings(findings)
}
