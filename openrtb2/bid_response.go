package openrtb2

// 4.2.1 Object: BidResponse
//
// This object is the top-level bid response object. The id attribute is a
// reflection of the bid request ID. A response without seat bids is a no-bid,
// and may carry a reason in NBR.
type BidResponse struct {
	ID         *string
	SeatBid    []SeatBid
	BidID      *string
	Cur        *string
	CustomData *string
	NBR        *NoBidReason

	Extension
}

// 4.2.2 Object: SeatBid
type SeatBid struct {
	Bid  []Bid
	Seat *string

	// Group is 1 when impressions must be won or lost as a group.
	Group *int64

	Extension
}

// 4.2.3 Object: Bid
//
// A SeatBid object contains one or more Bid objects, each of which relates to a
// specific impression in the bid request via the ImpID attribute.
type Bid struct {
	ID    *string
	ImpID *string
	Price *float64

	AdID    *string
	NURL    *string
	AdM     *string
	ADomain []string
	Bundle  *string
	IURL    *string
	CID     *string
	CrID    *string
	Cat     []string
	Attr    []CreativeAttribute

	// DealID is required when bidding on a deal from the request's PMP.
	DealID *string
	W      *int64
	H      *int64

	Extension
}
