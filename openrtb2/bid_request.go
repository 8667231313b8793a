package openrtb2

// 3.2.1 Object: BidRequest
//
// The top-level bid request object contains a globally unique bid request or
// auction ID. This id attribute is required as is at least one impression object.
// Site and App are mutually exclusive.
type BidRequest struct {
	ID     *string
	Imp    []Imp
	Site   *Site
	App    *App
	Device *Device
	User   *User

	// Test indicates test mode, where auctions are not billable. 0 = live, 1 = test.
	Test *int64

	// AT is the auction type. Exchange-specific auction types are 500 and above.
	AT *AuctionType

	// TMax is the maximum time in milliseconds to submit a bid.
	TMax *int64

	// WSeat is an allow-list of buyer seats allowed to bid on this impression.
	WSeat []string
	BSeat []string

	// AllImps is 1 when the exchange can verify that all impressions offered
	// represent all of the impressions available in context. 0 = unknown.
	AllImps *int64

	// Cur is the allowed currencies for bids, as ISO-4217 alpha codes.
	Cur []string

	BCat []string
	BAdv []string
	BApp []string
	Regs *Regs

	Extension
}
