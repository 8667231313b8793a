package openrtb2

// 3.2.17 Object: Pmp
//
// This object is the private marketplace container for direct deals between
// buyers and sellers that may pertain to this impression.
type PMP struct {
	// PrivateAuction is 1 when bids are restricted to the deals specified.
	PrivateAuction *int64
	Deals          []Deal

	Extension
}

// 3.2.18 Object: Deal
type Deal struct {
	ID          *string
	BidFloor    *float64
	BidFloorCur *string
	AT          *AuctionType
	WSeat       []string
	WADomain    []string

	Extension
}
