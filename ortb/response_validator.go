package ortb

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/openrtb2"
	"github.com/prebid/openrtb-codec/util/ptrutil"
	"github.com/prebid/openrtb-codec/util/sliceutil"
)

const defaultCurrency = "USD"

func currencyOrDefault(cur *string) string {
	if cur == nil {
		return defaultCurrency
	}
	return *cur
}

func validateResponse(path string, r *openrtb2.BidResponse) []*errortypes.Finding {
	if r.Cur != nil && !validCurrency(*r.Cur) {
		return []*errortypes.Finding{violation(join(path, "cur"), "%q is not an ISO-4217 currency code", *r.Cur)}
	}
	return nil
}

func validateBid(path string, b *openrtb2.Bid) []*errortypes.Finding {
	if b.Price != nil && *b.Price < 0 {
		return []*errortypes.Finding{violation(join(path, "price"), "price must be a non-negative number")}
	}
	return nil
}

// ValidateResponse checks a bid response against the request it answers. Every
// broken rule is reported as a SemanticViolation warning, with paths relative to
// the response.
func ValidateResponse(req *openrtb2.BidRequest, resp *openrtb2.BidResponse) []*errortypes.Finding {
	if req == nil || resp == nil {
		return nil
	}

	var findings []*errortypes.Finding

	if req.ID != nil && (resp.ID == nil || *resp.ID != *req.ID) {
		findings = append(findings, violation("id", "response id %q does not match request id %q", ptrutil.ValueOrDefault(resp.ID), *req.ID))
	}

	imps := make(map[string]*openrtb2.Imp, len(req.Imp))
	for i := range req.Imp {
		if id := req.Imp[i].ID; id != nil {
			if _, ok := imps[*id]; !ok {
				imps[*id] = &req.Imp[i]
			}
		}
	}

	respCur := currencyOrDefault(resp.Cur)
	if len(req.Cur) > 0 && !sliceutil.Contains(req.Cur, respCur) {
		findings = append(findings, violation("cur", "response currency %q is not one of the request currencies", respCur))
	}

	for s, seatBid := range resp.SeatBid {
		seatPath := fmt.Sprintf("seatbid[%d]", s)
		if seatBid.Seat != nil {
			if len(req.WSeat) > 0 && !sliceutil.Contains(req.WSeat, *seatBid.Seat) {
				findings = append(findings, violation(join(seatPath, "seat"), "seat %q is not in the request wseat allow-list", *seatBid.Seat))
			}
			if sliceutil.Contains(req.BSeat, *seatBid.Seat) {
				findings = append(findings, violation(join(seatPath, "seat"), "seat %q is blocked by the request bseat list", *seatBid.Seat))
			}
		}

		for b := range seatBid.Bid {
			findings = append(findings, validateBidAgainstImp(fmt.Sprintf("%s.bid[%d]", seatPath, b), &seatBid.Bid[b], imps, respCur)...)
		}
	}

	return findings
}

func validateBidAgainstImp(path string, bid *openrtb2.Bid, imps map[string]*openrtb2.Imp, respCur string) []*errortypes.Finding {
	if bid.ImpID == nil {
		return nil
	}
	imp, ok := imps[*bid.ImpID]
	if !ok {
		return []*errortypes.Finding{violation(join(path, "impid"), "bid references imp %q which is not in the request", *bid.ImpID)}
	}

	var findings []*errortypes.Finding

	if imp.PMP != nil && imp.PMP.PrivateAuction != nil && *imp.PMP.PrivateAuction == 1 {
		if bid.DealID == nil {
			findings = append(findings, violation(join(path, "dealid"), "imp %q is a private auction, bids must reference a deal", *bid.ImpID))
		} else if !hasDeal(imp.PMP, *bid.DealID) {
			findings = append(findings, violation(join(path, "dealid"), "deal %q is not offered on imp %q", *bid.DealID, *bid.ImpID))
		}
	}

	if bid.Price != nil && imp.BidFloor != nil && currencyOrDefault(imp.BidFloorCur) == respCur {
		price := decimal.NewFromFloat(*bid.Price)
		floor := decimal.NewFromFloat(*imp.BidFloor)
		if price.LessThan(floor) {
			findings = append(findings, violation(join(path, "price"), "price %s is below the imp floor %s %s", price, floor, respCur))
		}
	}

	return findings
}

func hasDeal(pmp *openrtb2.PMP, id string) bool {
	for _, d := range pmp.Deals {
		if d.ID != nil && *d.ID == id {
			return true
		}
	}
	return false
}
