package errortypes

import "github.com/prebid/openrtb-codec/openrtb2"

// NoBidReason picks the no-bid reason a bidder should answer with when the
// request could not be used because of err.
func NoBidReason(err error) openrtb2.NoBidReason {
	switch ReadCode(err) {
	case ParseErrorCode, MissingRequiredFieldErrorCode, TypeMismatchErrorCode:
		return openrtb2.NoBidReasonInvalidRequest
	case SerializationErrorCode:
		return openrtb2.NoBidReasonTechnicalError
	}
	if agg, ok := err.(AggregateErrors); ok && ContainsError(agg.Errors) {
		return NoBidReason(ErrorOnly(agg.Errors)[0])
	}
	return openrtb2.NoBidReasonUnknownError
}
