// Package ortb holds the OpenRTB rules that span more than one attribute. They
// run after an entity has been decoded and report SemanticViolation findings;
// none of them stops a decode.
package ortb

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"

	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/openrtb2"
)

// Check runs the rules of a single entity. Path is the wire path of v, empty for
// the root. Nested entities are not visited: the decoder calls Check once per
// entity it builds.
func Check(path string, v any) []*errortypes.Finding {
	switch e := v.(type) {
	case *openrtb2.BidRequest:
		return validateRequest(path, e)
	case *openrtb2.Imp:
		return validateImp(path, e)
	case *openrtb2.Banner:
		return validateBanner(path, e)
	case *openrtb2.Format:
		return validateFormat(path, e)
	case *openrtb2.Video:
		return validateVideo(path, e)
	case *openrtb2.Deal:
		return validateDeal(path, e)
	case *openrtb2.Device:
		return validateDevice(path, e)
	case *openrtb2.Geo:
		return validateGeo(path, e)
	case *openrtb2.User:
		return validateUser(path, e)
	case *openrtb2.Content:
		return validateContent(path, e)
	case *openrtb2.BidResponse:
		return validateResponse(path, e)
	case *openrtb2.Bid:
		return validateBid(path, e)
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func violation(path, format string, args ...any) *errortypes.Finding {
	return errortypes.NewSemanticViolation(path, fmt.Sprintf(format, args...))
}

// validCurrency reports whether code is an ISO-4217 currency code.
func validCurrency(code string) bool {
	if len(code) != 3 || strings.ToUpper(code) != code {
		return false
	}
	_, err := currency.ParseISO(code)
	return err == nil
}

func validateRequest(path string, r *openrtb2.BidRequest) []*errortypes.Finding {
	var findings []*errortypes.Finding

	if r.Site != nil && r.App != nil {
		findings = append(findings, violation(path, "request.site or request.app must be defined, but not both"))
	}

	if r.TMax != nil && *r.TMax <= 0 {
		findings = append(findings, violation(join(path, "tmax"), "tmax must be a positive number of milliseconds, got %d", *r.TMax))
	}

	seen := make(map[string]int, len(r.Imp))
	for i, imp := range r.Imp {
		if imp.ID == nil {
			continue
		}
		if first, ok := seen[*imp.ID]; ok {
			findings = append(findings, violation(fmt.Sprintf("%s[%d].id", join(path, "imp"), i),
				"request.imp[%d].id and request.imp[%d].id are both %q. Imp IDs must be unique", first, i, *imp.ID))
			continue
		}
		seen[*imp.ID] = i
	}

	for i, cur := range r.Cur {
		if !validCurrency(cur) {
			findings = append(findings, violation(fmt.Sprintf("%s[%d]", join(path, "cur"), i),
				"%q is not an ISO-4217 currency code", cur))
		}
	}

	return findings
}

func isInterstitial(imp *openrtb2.Imp) bool {
	return imp.Instl != nil && *imp.Instl == 1
}

func validateImp(path string, imp *openrtb2.Imp) []*errortypes.Finding {
	var findings []*errortypes.Finding

	if imp.Banner == nil && imp.Video == nil && imp.Native == nil {
		findings = append(findings, violation(path, "imp must contain at least one of \"banner\", \"video\" or \"native\""))
	}

	if b := imp.Banner; b != nil && !isInterstitial(imp) {
		hasRootSize := b.W != nil && b.H != nil && *b.W > 0 && *b.H > 0
		if !hasRootSize && len(b.Format) == 0 {
			findings = append(findings, violation(join(path, "banner"),
				"banner has no sizes. Define \"w\" and \"h\", or include \"format\" elements"))
		}
	}

	if imp.BidFloor != nil && *imp.BidFloor < 0 {
		findings = append(findings, violation(join(path, "bidfloor"), "bidfloor must be a non-negative number"))
	}
	if imp.BidFloorCur != nil && !validCurrency(*imp.BidFloorCur) {
		findings = append(findings, violation(join(path, "bidfloorcur"), "%q is not an ISO-4217 currency code", *imp.BidFloorCur))
	}

	return findings
}

func validateDeal(path string, d *openrtb2.Deal) []*errortypes.Finding {
	var findings []*errortypes.Finding

	if d.BidFloor != nil && *d.BidFloor < 0 {
		findings = append(findings, violation(join(path, "bidfloor"), "bidfloor must be a non-negative number"))
	}
	if d.BidFloorCur != nil && !validCurrency(*d.BidFloorCur) {
		findings = append(findings, violation(join(path, "bidfloorcur"), "%q is not an ISO-4217 currency code", *d.BidFloorCur))
	}

	return findings
}
